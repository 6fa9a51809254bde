package auth_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"todo-list-backend/internal/auth"
	"todo-list-backend/internal/database/models"
	apperrors "todo-list-backend/internal/errors"
	"todo-list-backend/internal/mocks"
	"todo-list-backend/internal/service"
	"todo-list-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AuthHandlerTestSuite defines the test suite for AuthHandler
type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockUsers         *mocks.MockUserServiceInterface
	mockAuthenticator *mocks.MockAuthenticatorInterface
	mockSessions      *mocks.MockSessionServiceInterface
	httpSuite         *testutils.HTTPTestSuite
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUsers = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.mockAuthenticator = mocks.NewMockAuthenticatorInterface(suite.ctrl)
	suite.mockSessions = mocks.NewMockSessionServiceInterface(suite.ctrl)

	handler := auth.NewAuthHandler(suite.mockUsers, suite.mockAuthenticator, suite.mockSessions, testSessionConfig())

	suite.httpSuite = testutils.SetupHTTPTest()
	api := suite.httpSuite.Router.Group("/api")
	api.POST("/register", handler.Register)
	api.POST("/login", handler.Login)
	api.GET("/logout", func(c *gin.Context) {
		if c.GetHeader("X-Test-Session") != "" {
			c.Set(auth.ContextSessionIDKey, uuid.MustParse(c.GetHeader("X-Test-Session")))
		}
		c.Next()
	}, handler.Logout)
}

func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthHandlerTestSuite) registerBody() map[string]string {
	return map[string]string{"email": "simple@email.com", "organization": "Test Company", "password": "foo"}
}

func (suite *AuthHandlerTestSuite) TestRegister() {
	suite.mockUsers.EXPECT().
		Register(&service.RegisterRequest{Email: "simple@email.com", Organization: "Test Company", Password: "foo"}).
		Return(&service.UserResponse{ID: uuid.New(), Email: "simple@email.com", Organization: "Test Company", IsActive: true}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/register", suite.registerBody())

	var body service.UserResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &body)
	assert.Equal(suite.T(), "Test Company", body.Organization)
}

func (suite *AuthHandlerTestSuite) TestRegisterUnknownOrganization() {
	suite.mockUsers.EXPECT().Register(gomock.Any()).Return(nil, apperrors.ErrOrganizationDoesNotExist).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/register", suite.registerBody())

	testutils.AssertValidationError(suite.T(), recorder, "You can not register a user if his organization does not exist")
}

func (suite *AuthHandlerTestSuite) TestRegisterDuplicate() {
	suite.mockUsers.EXPECT().Register(gomock.Any()).Return(nil, apperrors.ErrUserExists).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/register", suite.registerBody())

	testutils.AssertValidationError(suite.T(), recorder, "already exists")
}

func (suite *AuthHandlerTestSuite) TestRegisterMalformedBody() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/register", []string{"nope"})

	testutils.AssertValidationError(suite.T(), recorder, "Invalid request body")
}

func (suite *AuthHandlerTestSuite) TestRegisterStoreFailure() {
	suite.mockUsers.EXPECT().Register(gomock.Any()).Return(nil, errors.New("connection reset")).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/register", suite.registerBody())

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to register user")
}

func (suite *AuthHandlerTestSuite) TestLogin() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "simple@email.com"}
	creds := service.Credentials{Email: "simple@email.com", Organization: "Test Company", Password: "foo"}
	suite.mockAuthenticator.EXPECT().Authenticate(creds).Return(user, nil).Times(1)
	suite.mockSessions.EXPECT().Login(user).Return(&auth.LoginResult{
		Token:     "signed-token",
		SessionID: uuid.New(),
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/login", creds)

	var body auth.LoginResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	assert.Equal(suite.T(), "Success", body.Detail)
	assert.Equal(suite.T(), "signed-token", body.Token)

	cookies := recorder.Result().Cookies()
	suite.Require().Len(cookies, 1)
	assert.Equal(suite.T(), "sessionid", cookies[0].Name)
	assert.Equal(suite.T(), "signed-token", cookies[0].Value)
	assert.True(suite.T(), cookies[0].HttpOnly)
}

func (suite *AuthHandlerTestSuite) TestLoginInvalid() {
	suite.mockAuthenticator.EXPECT().Authenticate(gomock.Any()).Return(nil, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/login",
		map[string]string{"email": "simple@email.com", "organization": "Other Company", "password": "foo"})

	var body auth.DetailResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &body)
	assert.Equal(suite.T(), "Invalid login", body.Detail)
	assert.Empty(suite.T(), recorder.Result().Cookies())
}

func (suite *AuthHandlerTestSuite) TestLoginMissingOrganization() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/login",
		map[string]string{"email": "simple@email.com", "password": "foo"})

	var body auth.DetailResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &body)
	assert.Equal(suite.T(), "Invalid login", body.Detail)
}

func (suite *AuthHandlerTestSuite) TestLogout() {
	sessionID := uuid.New()
	suite.mockSessions.EXPECT().Logout(sessionID).Return(nil).Times(1)

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/logout", nil,
		map[string]string{"X-Test-Session": sessionID.String()})

	var body auth.DetailResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	assert.Equal(suite.T(), "User logged out", body.Detail)

	cookies := recorder.Result().Cookies()
	suite.Require().Len(cookies, 1)
	assert.Equal(suite.T(), "", cookies[0].Value)
	assert.True(suite.T(), cookies[0].MaxAge < 0)
}

func (suite *AuthHandlerTestSuite) TestLogoutWithoutSession() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/logout", nil)

	testutils.AssertForbidden(suite.T(), recorder)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
