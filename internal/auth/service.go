package auth

import (
	"errors"
	"fmt"
	"time"

	"todo-list-backend/internal/database/models"
	apperrors "todo-list-backend/internal/errors"
	"todo-list-backend/internal/metrics"
	"todo-list-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const tokenIssuer = "todo-list-backend"

// SessionClaims are the claims of a session token. ID (jti) is the session
// row, Subject the user.
type SessionClaims struct {
	OrganizationID string `json:"org"`
	Email          string `json:"email"`
	jwt.RegisteredClaims
}

// LoginResult is what a successful login hands back to the client
type LoginResult struct {
	Token     string    `json:"token"`
	SessionID uuid.UUID `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionService issues, resolves and revokes server-side sessions. The
// client only holds a signed token naming its session row, so deleting the
// row logs the client out even though the token still verifies.
type SessionService struct {
	config   *SessionConfig
	sessions repository.SessionRepositoryInterface
	users    repository.UserRepositoryInterface
	now      func() time.Time
}

// NewSessionService creates a new session service
func NewSessionService(config *SessionConfig, sessions repository.SessionRepositoryInterface, users repository.UserRepositoryInterface) (*SessionService, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session config: %w", err)
	}
	return &SessionService{
		config:   config,
		sessions: sessions,
		users:    users,
		now:      time.Now,
	}, nil
}

// WithClock replaces the time source used for issuing and checking sessions
func (s *SessionService) WithClock(now func() time.Time) *SessionService {
	s.now = now
	return s
}

// Login opens a session for an authenticated user and stamps its last login
func (s *SessionService) Login(user *models.User) (*LoginResult, error) {
	now := s.now()
	session := &models.Session{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    user.ID,
		ExpiresAt: now.Add(s.config.TTL),
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := s.users.UpdateLastLogin(user.ID, now); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}
	user.LastLogin = &now

	token, err := s.sign(session, user, now)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token,
		SessionID: session.ID,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Resolve verifies token and returns its live session with user and
// organization loaded.
func (s *SessionService) Resolve(token string) (*models.Session, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.config.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidSession, err)
	}
	if !parsed.Valid {
		return nil, apperrors.ErrInvalidSession
	}

	sessionID, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, apperrors.ErrInvalidSession
	}

	session, err := s.sessions.GetByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidSession
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if session.UserID.String() != claims.Subject {
		return nil, apperrors.ErrInvalidSession
	}
	if session.Expired(s.now()) {
		return nil, apperrors.ErrSessionExpired
	}
	if !session.User.IsActive {
		return nil, apperrors.ErrInactiveUser
	}

	return session, nil
}

// Logout deletes the session
func (s *SessionService) Logout(sessionID uuid.UUID) error {
	if err := s.sessions.Delete(sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// PurgeExpired removes sessions that can no longer be resolved
func (s *SessionService) PurgeExpired() (int64, error) {
	n, err := s.sessions.DeleteExpired(s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	metrics.SessionsPurged.Add(float64(n))
	return n, nil
}

func (s *SessionService) sign(session *models.Session, user *models.User, now time.Time) (string, error) {
	claims := &SessionClaims{
		OrganizationID: user.OrganizationID.String(),
		Email:          user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID.String(),
			Subject:   user.ID.String(),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}
