package service

import (
	"errors"
	"fmt"
	"time"

	"todo-list-backend/internal/database/models"
	apperrors "todo-list-backend/internal/errors"
	"todo-list-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo      repository.OrganizationRepositoryInterface
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:      repo,
		validator: validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100" example:"Test Company"`
}

// UpdateOrganizationRequest replaces every writable field of an organization
type UpdateOrganizationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100" example:"Test Company"`
}

// PatchOrganizationRequest changes only the fields that are present
type PatchOrganizationRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=100" example:"Test Company"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// OrganizationListResponse represents a page of organizations
type OrganizationListResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// Create creates a new organization
func (s *OrganizationService) Create(req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	if err := s.ensureNameFree(req.Name, uuid.Nil); err != nil {
		return nil, err
	}

	org := &models.Organization{Name: req.Name}
	if err := s.repo.Create(org); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrOrganizationExists
		}
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return s.toResponse(org), nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return s.toResponse(org), nil
}

// GetByName retrieves an organization by name
func (s *OrganizationService) GetByName(name string) (*OrganizationResponse, error) {
	org, err := s.repo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return s.toResponse(org), nil
}

// GetAll retrieves one page of organizations ordered by name
func (s *OrganizationService) GetAll(page, pageSize int) (*OrganizationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 100
	}
	offset := (page - 1) * pageSize

	orgs, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i := range orgs {
		responses[i] = *s.toResponse(&orgs[i])
	}

	return &OrganizationListResponse{
		Organizations: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// Update renames an organization
func (s *OrganizationService) Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	return s.rename(id, &req.Name)
}

// Patch applies the fields present in req
func (s *OrganizationService) Patch(id uuid.UUID, req *PatchOrganizationRequest) (*OrganizationResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	return s.rename(id, req.Name)
}

// Delete deletes an organization together with its users and todo list entries
func (s *OrganizationService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	return nil
}

func (s *OrganizationService) rename(id uuid.UUID, name *string) (*OrganizationResponse, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	if name == nil || *name == org.Name {
		return s.toResponse(org), nil
	}

	if err := s.ensureNameFree(*name, org.ID); err != nil {
		return nil, err
	}

	org.Name = *name
	if err := s.repo.Update(org); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, apperrors.ErrOrganizationExists
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return s.toResponse(org), nil
}

// ensureNameFree fails with ErrOrganizationExists when another organization
// than self already uses name.
func (s *OrganizationService) ensureNameFree(name string, self uuid.UUID) error {
	existing, err := s.repo.GetByName(name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing organization by name: %w", err)
	}
	if existing != nil && existing.ID != self {
		return apperrors.ErrOrganizationExists
	}
	return nil
}

func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:        org.ID,
		Name:      org.Name,
		CreatedAt: org.CreatedAt.Format(time.RFC3339),
		UpdatedAt: org.UpdatedAt.Format(time.RFC3339),
	}
}
