package repository

import (
	"time"

	"todo-list-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user in one transaction with a share lock on its
// organization row, so the organization cannot be deleted between the
// existence check and the insert. A missing organization yields
// gorm.ErrRecordNotFound.
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var org models.Organization
		if err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
			First(&org, "id = ?", user.OrganizationID).Error; err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
			return err
		}
		user.Organization = org
		return nil
	})
}

// GetByID retrieves a user by ID along with its organization
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Organization").First(&user, "users.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmailAndOrganization retrieves the user registered with email under the
// organization called organizationName.
func (r *UserRepository) GetByEmailAndOrganization(email, organizationName string) (*models.User, error) {
	var user models.User
	err := r.db.
		Joins("Organization").
		Where("users.email = ?", email).
		Where(`"Organization"."name" = ?`, organizationName).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// userWritableColumns are the columns Update writes. date_joined is never
// rewritten.
var userWritableColumns = []string{
	"email", "organization_id", "password", "is_active", "is_staff", "is_superuser", "last_login", "updated_at",
}

// Update writes the user's columns to its existing row. A user whose row is
// gone yields gorm.ErrRecordNotFound; the row is never recreated.
func (r *UserRepository) Update(user *models.User) error {
	result := r.db.Model(user).
		Omit(clause.Associations).
		Select(userWritableColumns).
		Updates(user)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateLastLogin stamps the user's last_login column
func (r *UserRepository) UpdateLastLogin(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("last_login", at).Error
}
