package repository

import (
	"time"

	"todo-list-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRepository handles database operations for login sessions
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create stores a new session
func (r *SessionRepository) Create(session *models.Session) error {
	return r.db.Omit(clause.Associations).Create(session).Error
}

// GetByID retrieves a session with its user and the user's organization
func (r *SessionRepository) GetByID(id uuid.UUID) (*models.Session, error) {
	var session models.Session
	err := r.db.Preload("User.Organization").First(&session, "sessions.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (r *SessionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Session{}, "id = ?", id).Error
}

// DeleteExpired removes every session that expired before now
func (r *SessionRepository) DeleteExpired(now time.Time) (int64, error) {
	result := r.db.Where("expires_at <= ?", now).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
