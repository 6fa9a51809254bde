package service

import (
	"errors"
	"fmt"

	"todo-list-backend/internal/database/models"
	apperrors "todo-list-backend/internal/errors"
	"todo-list-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ToDoListService handles todo list entries on behalf of a caller's organization.
// An entry of another organization behaves exactly like a missing one.
type ToDoListService struct {
	repo      repository.ToDoListRepositoryInterface
	validator *validator.Validate
}

// NewToDoListService creates a new todo list service
func NewToDoListService(repo repository.ToDoListRepositoryInterface, validator *validator.Validate) *ToDoListService {
	return &ToDoListService{
		repo:      repo,
		validator: validator,
	}
}

// CreateToDoListRequest represents the request to add an entry. The owning
// organization always comes from the caller.
type CreateToDoListRequest struct {
	Text       string `json:"text" validate:"required,max=1000" example:"test"`
	IsFinished bool   `json:"is_finished" example:"false"`
}

// UpdateToDoListRequest replaces every writable field of an entry
type UpdateToDoListRequest struct {
	Text       string `json:"text" validate:"required,max=1000" example:"test"`
	IsFinished bool   `json:"is_finished" example:"true"`
}

// PatchToDoListRequest changes only the fields that are present
type PatchToDoListRequest struct {
	Text       *string `json:"text,omitempty" validate:"omitempty,min=1,max=1000"`
	IsFinished *bool   `json:"is_finished,omitempty"`
}

// ToDoListResponse represents an entry. Organization is the owner's name.
type ToDoListResponse struct {
	ID           uuid.UUID `json:"id"`
	Text         string    `json:"text"`
	IsFinished   bool      `json:"is_finished"`
	Organization string    `json:"organization"`
}

// List returns every entry of orgID
func (s *ToDoListService) List(orgID uuid.UUID) ([]ToDoListResponse, error) {
	items, err := s.repo.ListByOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todo lists: %w", err)
	}

	responses := make([]ToDoListResponse, len(items))
	for i := range items {
		responses[i] = *s.toResponse(&items[i])
	}
	return responses, nil
}

// Get retrieves one entry of orgID
func (s *ToDoListService) Get(orgID, id uuid.UUID) (*ToDoListResponse, error) {
	item, err := s.load(orgID, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(item), nil
}

// Create adds an entry owned by orgID
func (s *ToDoListService) Create(orgID uuid.UUID, req *CreateToDoListRequest) (*ToDoListResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	item := &models.ToDoList{
		OrganizationID: orgID,
		Text:           req.Text,
		IsFinished:     req.IsFinished,
	}
	if err := s.repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create todo list: %w", err)
	}
	return s.toResponse(item), nil
}

// Update replaces text and is_finished of an entry of orgID
func (s *ToDoListService) Update(orgID, id uuid.UUID, req *UpdateToDoListRequest) (*ToDoListResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	item, err := s.load(orgID, id)
	if err != nil {
		return nil, err
	}
	item.Text = req.Text
	item.IsFinished = req.IsFinished

	return s.save(orgID, item)
}

// Patch applies the fields present in req to an entry of orgID
func (s *ToDoListService) Patch(orgID, id uuid.UUID, req *PatchToDoListRequest) (*ToDoListResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	item, err := s.load(orgID, id)
	if err != nil {
		return nil, err
	}
	if req.Text != nil {
		item.Text = *req.Text
	}
	if req.IsFinished != nil {
		item.IsFinished = *req.IsFinished
	}

	return s.save(orgID, item)
}

// Delete removes an entry of orgID
func (s *ToDoListService) Delete(orgID, id uuid.UUID) error {
	if err := s.repo.Delete(orgID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrToDoListNotFound
		}
		return fmt.Errorf("failed to delete todo list: %w", err)
	}
	return nil
}

func (s *ToDoListService) load(orgID, id uuid.UUID) (*models.ToDoList, error) {
	item, err := s.repo.GetByID(orgID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrToDoListNotFound
		}
		return nil, fmt.Errorf("failed to get todo list: %w", err)
	}
	return item, nil
}

func (s *ToDoListService) save(orgID uuid.UUID, item *models.ToDoList) (*ToDoListResponse, error) {
	if err := s.repo.Update(orgID, item); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrToDoListNotFound
		}
		return nil, fmt.Errorf("failed to update todo list: %w", err)
	}
	return s.toResponse(item), nil
}

func (s *ToDoListService) toResponse(item *models.ToDoList) *ToDoListResponse {
	return &ToDoListResponse{
		ID:           item.ID,
		Text:         item.Text,
		IsFinished:   item.IsFinished,
		Organization: item.Organization.Name,
	}
}
