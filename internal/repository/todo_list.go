package repository

import (
	"todo-list-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ForOrganization restricts a query on todo_lists to rows owned by orgID.
func ForOrganization(orgID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("todo_lists.organization_id = ?", orgID)
	}
}

// ToDoListRepository handles database operations for todo list entries
type ToDoListRepository struct {
	db *gorm.DB
}

// NewToDoListRepository creates a new todo list repository
func NewToDoListRepository(db *gorm.DB) *ToDoListRepository {
	return &ToDoListRepository{db: db}
}

// Create inserts an entry. The caller sets OrganizationID.
func (r *ToDoListRepository) Create(item *models.ToDoList) error {
	if err := r.db.Omit(clause.Associations).Create(item).Error; err != nil {
		return err
	}
	return r.db.First(&item.Organization, "id = ?", item.OrganizationID).Error
}

// GetByID retrieves an entry of orgID. Entries of other organizations are
// reported as gorm.ErrRecordNotFound.
func (r *ToDoListRepository) GetByID(orgID, id uuid.UUID) (*models.ToDoList, error) {
	var item models.ToDoList
	err := r.db.Scopes(ForOrganization(orgID)).
		Preload("Organization").
		First(&item, "todo_lists.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByOrganization lists every entry of orgID in creation order
func (r *ToDoListRepository) ListByOrganization(orgID uuid.UUID) ([]models.ToDoList, error) {
	items := []models.ToDoList{}
	err := r.db.Scopes(ForOrganization(orgID)).
		Preload("Organization").
		Order("todo_lists.created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Update writes text and is_finished of an entry of orgID. The owning
// organization is never changed.
func (r *ToDoListRepository) Update(orgID uuid.UUID, item *models.ToDoList) error {
	result := r.db.Model(&models.ToDoList{}).
		Scopes(ForOrganization(orgID)).
		Where("todo_lists.id = ?", item.ID).
		Updates(map[string]interface{}{
			"text":        item.Text,
			"is_finished": item.IsFinished,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes an entry of orgID
func (r *ToDoListRepository) Delete(orgID, id uuid.UUID) error {
	result := r.db.Scopes(ForOrganization(orgID)).
		Delete(&models.ToDoList{}, "todo_lists.id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
