//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"todo-list-backend/internal/database/models"
	"todo-list-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SessionRepositoryTestSuite tests the SessionRepository
type SessionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SessionRepository
	user          *models.User
}

func (suite *SessionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSessionRepository(suite.baseTestSuite.DB)
}

func (suite *SessionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *SessionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	factories := testutils.NewFactorySet()
	db := suite.baseTestSuite.DB

	org := factories.Organization.WithName("Test Company")
	suite.Require().NoError(NewOrganizationRepository(db).Create(org))
	suite.user = factories.User.WithEmail(org, "simple@email.com")
	suite.Require().NoError(NewUserRepository(db).Create(suite.user))
}

func (suite *SessionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *SessionRepositoryTestSuite) TestCreateAndGet() {
	session := &models.Session{UserID: suite.user.ID, ExpiresAt: time.Now().Add(time.Hour)}
	suite.Require().NoError(suite.repo.Create(session))

	got, err := suite.repo.GetByID(session.ID)

	suite.NoError(err)
	suite.Equal("simple@email.com", got.User.Email)
	suite.Equal("Test Company", got.User.Organization.Name)
}

func (suite *SessionRepositoryTestSuite) TestDelete() {
	session := &models.Session{UserID: suite.user.ID, ExpiresAt: time.Now().Add(time.Hour)}
	suite.Require().NoError(suite.repo.Create(session))

	suite.NoError(suite.repo.Delete(session.ID))
	suite.NoError(suite.repo.Delete(uuid.New()))

	_, err := suite.repo.GetByID(session.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *SessionRepositoryTestSuite) TestDeleteExpired() {
	now := time.Now()
	live := &models.Session{UserID: suite.user.ID, ExpiresAt: now.Add(time.Hour)}
	stale := &models.Session{UserID: suite.user.ID, ExpiresAt: now.Add(-time.Hour)}
	suite.Require().NoError(suite.repo.Create(live))
	suite.Require().NoError(suite.repo.Create(stale))

	n, err := suite.repo.DeleteExpired(now)

	suite.NoError(err)
	suite.Equal(int64(1), n)
	_, err = suite.repo.GetByID(live.ID)
	suite.NoError(err)
}

func (suite *SessionRepositoryTestSuite) TestUserDeleteCascades() {
	session := &models.Session{UserID: suite.user.ID, ExpiresAt: time.Now().Add(time.Hour)}
	suite.Require().NoError(suite.repo.Create(session))

	suite.Require().NoError(suite.baseTestSuite.DB.Delete(&models.User{}, "id = ?", suite.user.ID).Error)

	_, err := suite.repo.GetByID(session.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestSessionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SessionRepositoryTestSuite))
}
