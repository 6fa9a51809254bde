package auth

import (
	"errors"
	"net/http"

	apperrors "todo-list-backend/internal/errors"
	"todo-list-backend/internal/logger"
	"todo-list-backend/internal/metrics"
	"todo-list-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Response details of the session endpoints
const (
	LoginSuccessMessage  = "Success"
	InvalidLoginMessage  = "Invalid login"
	LoggedOutMessage     = "User logged out"
	invalidRequestDetail = "Invalid request body"
)

// AuthHandler serves registration, login and logout
type AuthHandler struct {
	users         service.UserServiceInterface
	authenticator service.AuthenticatorInterface
	sessions      SessionServiceInterface
	config        *SessionConfig
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(users service.UserServiceInterface, authenticator service.AuthenticatorInterface, sessions SessionServiceInterface, config *SessionConfig) *AuthHandler {
	return &AuthHandler{
		users:         users,
		authenticator: authenticator,
		sessions:      sessions,
		config:        config,
	}
}

// LoginResponse is returned by a successful login
type LoginResponse struct {
	Detail    string `json:"detail" example:"Success"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// DetailResponse carries a single status message
type DetailResponse struct {
	Detail string `json:"detail" example:"User logged out"`
}

// Register handles POST /api/register
// @Summary Register a user
// @Description Create a user in an existing organization. The (email, organization) pair must be unused.
// @Tags authentication
// @Accept json
// @Produce json
// @Param user body service.RegisterRequest true "Registration data"
// @Success 201 {object} service.UserResponse "User created"
// @Failure 400 {object} map[string]interface{} "validation_error"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RecordRegistration(metrics.ResultRejected)
		c.JSON(http.StatusBadRequest, gin.H{"validation_error": invalidRequestDetail, "details": err.Error()})
		return
	}

	user, err := h.users.Register(&req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			metrics.RecordRegistration(metrics.ResultRejected)
			c.JSON(http.StatusBadRequest, gin.H{"validation_error": apperrors.ValidationMessage(err)})
		case errors.Is(err, apperrors.ErrUserExists):
			metrics.RecordRegistration(metrics.ResultRejected)
			c.JSON(http.StatusBadRequest, gin.H{"validation_error": err.Error()})
		default:
			metrics.RecordRegistration(metrics.ResultError)
			logger.WithContext(c).WithError(err).Error("registration failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user", "details": err.Error()})
		}
		return
	}

	metrics.RecordRegistration(metrics.ResultSuccess)
	logger.WithContext(c).WithField("registered", user.Email).Info("user registered")
	c.JSON(http.StatusCreated, user)
}

// Login handles POST /api/login
// @Summary Log in
// @Description Authenticate with email, organization and password. Sets the session cookie and returns the session token.
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body service.Credentials true "Login credentials"
// @Success 200 {object} LoginResponse "Success"
// @Failure 400 {object} DetailResponse "Invalid login"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var creds service.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		metrics.RecordLogin(metrics.ResultRejected)
		c.JSON(http.StatusBadRequest, DetailResponse{Detail: InvalidLoginMessage})
		return
	}

	user, err := h.authenticator.Authenticate(creds)
	if err != nil {
		metrics.RecordLogin(metrics.ResultError)
		logger.WithContext(c).WithError(err).Error("authentication failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate", "details": err.Error()})
		return
	}
	if user == nil {
		metrics.RecordLogin(metrics.ResultRejected)
		c.JSON(http.StatusBadRequest, DetailResponse{Detail: InvalidLoginMessage})
		return
	}

	result, err := h.sessions.Login(user)
	if err != nil {
		metrics.RecordLogin(metrics.ResultError)
		logger.WithContext(c).WithError(err).Error("failed to open session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in", "details": err.Error()})
		return
	}

	metrics.RecordLogin(metrics.ResultSuccess)
	h.setSessionCookie(c, result.Token, int(h.config.TTL.Seconds()))
	c.JSON(http.StatusOK, LoginResponse{
		Detail:    LoginSuccessMessage,
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.UTC().Format(http.TimeFormat),
	})
}

// Logout handles GET /api/logout
// @Summary Log out
// @Description Delete the current session and clear the session cookie
// @Tags authentication
// @Produce json
// @Success 200 {object} DetailResponse "User logged out"
// @Failure 403 {object} DetailResponse "Authentication credentials were not provided."
// @Security SessionCookie
// @Router /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, ok := GetSessionID(c)
	if !ok {
		deny(c)
		return
	}

	if err := h.sessions.Logout(sessionID); err != nil {
		logger.WithContext(c).WithError(err).Error("logout failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed", "details": err.Error()})
		return
	}

	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, DetailResponse{Detail: LoggedOutMessage})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.config.CookieName, value, maxAge, "/", "", h.config.CookieSecure, true)
}
