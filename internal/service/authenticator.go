package service

import (
	"errors"
	"fmt"

	"todo-list-backend/internal/database/models"
	"todo-list-backend/internal/repository"

	"gorm.io/gorm"
)

// Credentials identify a user by the (email, organization) pair plus password
type Credentials struct {
	Email        string `json:"email" binding:"required" example:"simple@email.com"`
	Organization string `json:"organization" binding:"required" example:"Test Company"`
	Password     string `json:"password" example:"foo"`
}

// Authenticator checks credentials against the user store
type Authenticator struct {
	repo repository.UserRepositoryInterface
}

// NewAuthenticator creates a new authenticator
func NewAuthenticator(repo repository.UserRepositoryInterface) *Authenticator {
	return &Authenticator{repo: repo}
}

// Authenticate returns the active user matching creds, or nil when the
// credentials do not match anyone. Only store failures are returned as errors.
func (a *Authenticator) Authenticate(creds Credentials) (*models.User, error) {
	email := NormalizeEmail(creds.Email)
	if email == "" || creds.Organization == "" {
		return nil, nil
	}

	user, err := a.repo.GetByEmailAndOrganization(email, creds.Organization)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.IsActive || !user.CheckPassword(creds.Password) {
		return nil, nil
	}
	return user, nil
}
