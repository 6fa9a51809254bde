package auth_test

import (
	"testing"
	"time"

	"todo-list-backend/internal/auth"
	"todo-list-backend/internal/database/models"
	apperrors "todo-list-backend/internal/errors"
	"todo-list-backend/internal/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func testSessionConfig() *auth.SessionConfig {
	return &auth.SessionConfig{
		Secret:     "test-session-secret",
		TTL:        time.Hour,
		CookieName: "sessionid",
	}
}

// SessionServiceTestSuite defines the test suite for SessionService
type SessionServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockSessionRepo *mocks.MockSessionRepositoryInterface
	mockUserRepo    *mocks.MockUserRepositoryInterface
	sessionService  *auth.SessionService
	now             time.Time
	user            *models.User
}

func (suite *SessionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSessionRepo = mocks.NewMockSessionRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)

	var err error
	suite.sessionService, err = auth.NewSessionService(testSessionConfig(), suite.mockSessionRepo, suite.mockUserRepo)
	suite.Require().NoError(err)

	suite.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	suite.sessionService.WithClock(func() time.Time { return suite.now })

	org := models.Organization{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Test Company"}
	suite.user = &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Email:          "simple@email.com",
		OrganizationID: org.ID,
		Organization:   org,
		IsActive:       true,
	}
}

func (suite *SessionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// login opens a session and returns the token plus the stored row
func (suite *SessionServiceTestSuite) login() (string, *models.Session) {
	var stored *models.Session
	suite.mockSessionRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(s *models.Session) error {
			stored = s
			return nil
		}).
		Times(1)
	suite.mockUserRepo.EXPECT().UpdateLastLogin(suite.user.ID, suite.now).Return(nil).Times(1)

	result, err := suite.sessionService.Login(suite.user)
	suite.Require().NoError(err)
	suite.Require().NotNil(stored)

	stored.User = *suite.user
	return result.Token, stored
}

func (suite *SessionServiceTestSuite) TestLogin() {
	token, stored := suite.login()

	assert.NotEmpty(suite.T(), token)
	assert.Equal(suite.T(), suite.user.ID, stored.UserID)
	assert.Equal(suite.T(), suite.now.Add(time.Hour), stored.ExpiresAt)
	suite.Require().NotNil(suite.user.LastLogin)
	assert.Equal(suite.T(), suite.now, *suite.user.LastLogin)

	claims := &auth.SessionClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), stored.ID.String(), claims.ID)
	assert.Equal(suite.T(), suite.user.ID.String(), claims.Subject)
	assert.Equal(suite.T(), suite.user.OrganizationID.String(), claims.OrganizationID)
	assert.Equal(suite.T(), "simple@email.com", claims.Email)
}

func (suite *SessionServiceTestSuite) TestResolve() {
	token, stored := suite.login()
	suite.mockSessionRepo.EXPECT().GetByID(stored.ID).Return(stored, nil).Times(1)

	session, err := suite.sessionService.Resolve(token)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Test Company", session.User.OrganizationName())
}

func (suite *SessionServiceTestSuite) TestResolveExpired() {
	token, _ := suite.login()
	suite.now = suite.now.Add(2 * time.Hour)

	_, err := suite.sessionService.Resolve(token)

	assert.ErrorIs(suite.T(), err, apperrors.ErrSessionExpired)
}

func (suite *SessionServiceTestSuite) TestResolveLoggedOut() {
	token, stored := suite.login()
	suite.mockSessionRepo.EXPECT().Delete(stored.ID).Return(nil).Times(1)
	suite.mockSessionRepo.EXPECT().GetByID(stored.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	suite.Require().NoError(suite.sessionService.Logout(stored.ID))
	_, err := suite.sessionService.Resolve(token)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidSession)
}

func (suite *SessionServiceTestSuite) TestResolveInactiveUser() {
	token, stored := suite.login()
	stored.User.IsActive = false
	suite.mockSessionRepo.EXPECT().GetByID(stored.ID).Return(stored, nil).Times(1)

	_, err := suite.sessionService.Resolve(token)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInactiveUser)
}

func (suite *SessionServiceTestSuite) TestResolveForeignSignature() {
	other, err := auth.NewSessionService(&auth.SessionConfig{
		Secret:     "another-secret",
		TTL:        time.Hour,
		CookieName: "sessionid",
	}, suite.mockSessionRepo, suite.mockUserRepo)
	suite.Require().NoError(err)
	other.WithClock(func() time.Time { return suite.now })

	suite.mockSessionRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	suite.mockUserRepo.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	result, err := other.Login(suite.user)
	suite.Require().NoError(err)

	_, err = suite.sessionService.Resolve(result.Token)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidSession)
}

func (suite *SessionServiceTestSuite) TestResolveGarbage() {
	_, err := suite.sessionService.Resolve("not-a-token")

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidSession)
}

func (suite *SessionServiceTestSuite) TestPurgeExpired() {
	suite.mockSessionRepo.EXPECT().DeleteExpired(suite.now).Return(int64(3), nil).Times(1)

	n, err := suite.sessionService.PurgeExpired()

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), n)
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func TestSessionConfigValidate(t *testing.T) {
	cfg := testSessionConfig()
	require.NoError(t, cfg.Validate())

	cfg.Secret = ""
	assert.Error(t, cfg.Validate())

	cfg = testSessionConfig()
	cfg.TTL = 0
	assert.Error(t, cfg.Validate())

	cfg = testSessionConfig()
	cfg.CookieName = ""
	assert.Error(t, cfg.Validate())
}
