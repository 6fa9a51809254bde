package auth

import (
	"net/http"
	"strings"

	"todo-list-backend/internal/database/models"
	apperrors "todo-list-backend/internal/errors"
	"todo-list-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NotAuthenticatedMessage is the body detail of every rejected request
const NotAuthenticatedMessage = "Authentication credentials were not provided."

// Context keys set by RequireAuth
const (
	ContextUserKey           = "user"
	ContextOrganizationIDKey = "organization_id"
	ContextEmailKey          = "email"
	ContextSessionIDKey      = "session_id"
)

// AuthMiddleware gates routes behind a valid session
type AuthMiddleware struct {
	sessions   SessionServiceInterface
	cookieName string
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(sessions SessionServiceInterface, config *SessionConfig) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, cookieName: config.CookieName}
}

// RequireAuth resolves the session from the session cookie, then from a
// Bearer header when the cookie is absent or does not resolve. Anonymous
// callers get 403 whatever the reason.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokens := m.tokensFromRequest(c)
		if len(tokens) == 0 {
			deny(c)
			return
		}

		var (
			session *models.Session
			err     error
		)
		for _, token := range tokens {
			session, err = m.sessions.Resolve(token)
			if err == nil {
				break
			}
		}
		if err != nil {
			entry := logger.WithContext(c).WithError(err)
			if apperrors.IsAuthentication(err) {
				entry.Debug("session rejected")
			} else {
				entry.Warn("session lookup failed")
			}
			deny(c)
			return
		}

		user := session.User
		c.Set(ContextUserKey, &user)
		c.Set(ContextOrganizationIDKey, user.OrganizationID)
		c.Set(ContextEmailKey, user.Email)
		c.Set(ContextSessionIDKey, session.ID)

		c.Next()
	}
}

// tokensFromRequest returns the candidate tokens in precedence order: the
// session cookie first, then the Bearer header.
func (m *AuthMiddleware) tokensFromRequest(c *gin.Context) []string {
	var tokens []string
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie != "" {
		tokens = append(tokens, cookie)
	}

	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		if token = strings.TrimSpace(token); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func deny(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": NotAuthenticatedMessage})
}

// GetUser returns the authenticated user
func GetUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// GetOrganizationID returns the organization of the authenticated user
func GetOrganizationID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ContextOrganizationIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

// GetSessionID returns the session the request was authenticated with
func GetSessionID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ContextSessionIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

// GetUserEmail returns the email of the authenticated user
func GetUserEmail(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextEmailKey)
	if !exists {
		return "", false
	}
	email, ok := value.(string)
	return email, ok
}
