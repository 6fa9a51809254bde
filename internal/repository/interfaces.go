package repository

import (
	"time"

	"todo-list-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmailAndOrganization(email, organizationName string) (*models.User, error)
	Update(user *models.User) error
	UpdateLastLogin(id uuid.UUID, at time.Time) error
}

// ToDoListRepositoryInterface defines the interface for todo list repository operations.
// Every read and write is confined to the given organization.
type ToDoListRepositoryInterface interface {
	Create(item *models.ToDoList) error
	GetByID(orgID, id uuid.UUID) (*models.ToDoList, error)
	ListByOrganization(orgID uuid.UUID) ([]models.ToDoList, error)
	Update(orgID uuid.UUID, item *models.ToDoList) error
	Delete(orgID, id uuid.UUID) error
}

// SessionRepositoryInterface defines the interface for session repository operations
type SessionRepositoryInterface interface {
	Create(session *models.Session) error
	GetByID(id uuid.UUID) (*models.Session, error)
	Delete(id uuid.UUID) error
	DeleteExpired(now time.Time) (int64, error)
}
