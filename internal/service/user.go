package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"todo-list-backend/internal/database/models"
	apperrors "todo-list-backend/internal/errors"
	"todo-list-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles user creation and the organization checks around it
type UserService struct {
	repo       repository.UserRepositoryInterface
	orgRepo    repository.OrganizationRepositoryInterface
	validator  *validator.Validate
	bcryptCost int
}

// NewUserService creates a new user service. bcryptCost 0 selects bcrypt's default.
func NewUserService(repo repository.UserRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface, validator *validator.Validate, bcryptCost int) *UserService {
	return &UserService{
		repo:       repo,
		orgRepo:    orgRepo,
		validator:  validator,
		bcryptCost: bcryptCost,
	}
}

// RegisterRequest represents a self-registration
type RegisterRequest struct {
	Email        string `json:"email" validate:"required,email,max=60" example:"simple@email.com"`
	Organization string `json:"organization" validate:"required,max=100" example:"Test Company"`
	Password     string `json:"password" validate:"max=128" example:"foo"`
}

// UserResponse represents a user as returned by the API
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Organization string    `json:"organization"`
	IsActive     bool      `json:"is_active"`
	IsStaff      bool      `json:"is_staff"`
	IsSuperuser  bool      `json:"is_superuser"`
	DateJoined   string    `json:"date_joined"`
	LastLogin    *string   `json:"last_login"`
}

// NormalizeEmail trims surrounding whitespace and lowercases the domain part.
// The local part is kept as typed.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}

// Register validates req and creates the user it describes
func (s *UserService) Register(req *RegisterRequest) (*UserResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.CreateUser(req.Email, req.Organization, req.Password)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// CreateUser creates an active user of the organization called
// organizationName. The organization must already exist. An empty password
// leaves the account without a usable password.
func (s *UserService) CreateUser(email, organizationName, password string) (*models.User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, apperrors.ErrEmailRequired
	}
	if organizationName == "" {
		return nil, apperrors.ErrOrganizationRequired
	}

	org, err := s.resolveOrganization(organizationName, uuid.Nil, apperrors.ErrOrganizationDoesNotExist)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:          email,
		OrganizationID: org.ID,
		Organization:   *org,
		IsActive:       true,
	}
	if err := user.SetPassword(password, s.bcryptCost); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.repo.Create(user); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, apperrors.ErrUserExists
		case errors.Is(err, gorm.ErrRecordNotFound):
			// organization deleted between lookup and insert
			return nil, apperrors.ErrOrganizationDoesNotExist
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// CreateSuperuser creates a user with staff and superuser rights
func (s *UserService) CreateSuperuser(email, organizationName, password string) (*models.User, error) {
	user, err := s.CreateUser(email, organizationName, password)
	if err != nil {
		return nil, err
	}

	user.IsStaff = true
	user.IsSuperuser = true
	if err := s.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Save persists user after resolving its organization again. The
// organization is looked up by user.Organization.Name when set, otherwise by
// user.OrganizationID.
func (s *UserService) Save(user *models.User) error {
	org, err := s.resolveOrganization(user.Organization.Name, user.OrganizationID, apperrors.ErrUserOrganizationDoesNotExist)
	if err != nil {
		return err
	}

	user.OrganizationID = org.ID
	user.Organization = *org

	if err := s.repo.Update(user); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return apperrors.ErrUserExists
		case errors.Is(err, gorm.ErrRecordNotFound):
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// resolveOrganization is the precondition of every user write: the
// organization is looked up by name when one is given, otherwise by id.
// missing is returned when neither resolves.
func (s *UserService) resolveOrganization(name string, id uuid.UUID, missing error) (*models.Organization, error) {
	var (
		org *models.Organization
		err error
	)
	switch {
	case name != "":
		org, err = s.orgRepo.GetByName(name)
	case id != uuid.Nil:
		org, err = s.orgRepo.GetByID(id)
	default:
		return nil, missing
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, missing
		}
		return nil, fmt.Errorf("failed to resolve organization: %w", err)
	}
	return org, nil
}

// ToUserResponse renders user for the API
func ToUserResponse(user *models.User) *UserResponse {
	resp := &UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		Organization: user.OrganizationName(),
		IsActive:     user.IsActive,
		IsStaff:      user.IsStaff,
		IsSuperuser:  user.IsSuperuser,
		DateJoined:   user.DateJoined.Format(time.RFC3339),
	}
	if user.LastLogin != nil {
		lastLogin := user.LastLogin.Format(time.RFC3339)
		resp.LastLogin = &lastLogin
	}
	return resp
}
