package auth

import (
	"todo-list-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/auth_mocks.go -package=mocks

// SessionServiceInterface defines the interface for the session service
type SessionServiceInterface interface {
	Login(user *models.User) (*LoginResult, error)
	Resolve(token string) (*models.Session, error)
	Logout(sessionID uuid.UUID) error
}
