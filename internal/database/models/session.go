package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side login. Its ID travels inside the signed session
// token; deleting the row logs the user out.
type Session struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Session
func (Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session is no longer valid at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
