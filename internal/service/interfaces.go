package service

import (
	"todo-list-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	GetByName(name string) (*OrganizationResponse, error)
	GetAll(page, pageSize int) (*OrganizationListResponse, error)
	Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Patch(id uuid.UUID, req *PatchOrganizationRequest) (*OrganizationResponse, error)
	Delete(id uuid.UUID) error
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Register(req *RegisterRequest) (*UserResponse, error)
	CreateUser(email, organizationName, password string) (*models.User, error)
	CreateSuperuser(email, organizationName, password string) (*models.User, error)
	Save(user *models.User) error
}

// AuthenticatorInterface defines the interface for credential checks
type AuthenticatorInterface interface {
	Authenticate(creds Credentials) (*models.User, error)
}

// ToDoListServiceInterface defines the interface for todo list service
type ToDoListServiceInterface interface {
	List(orgID uuid.UUID) ([]ToDoListResponse, error)
	Get(orgID, id uuid.UUID) (*ToDoListResponse, error)
	Create(orgID uuid.UUID, req *CreateToDoListRequest) (*ToDoListResponse, error)
	Update(orgID, id uuid.UUID, req *UpdateToDoListRequest) (*ToDoListResponse, error)
	Patch(orgID, id uuid.UUID, req *PatchToDoListRequest) (*ToDoListResponse, error)
	Delete(orgID, id uuid.UUID) error
}
