package models

import (
	"github.com/google/uuid"
)

// ToDoList is one line of an organization's todo list.
type ToDoList struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index"`
	Text           string    `json:"text" gorm:"type:text;not null" validate:"required,max=1000"`
	IsFinished     bool      `json:"is_finished" gorm:"not null;default:false"`

	Organization Organization `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ToDoList
func (ToDoList) TableName() string {
	return "todo_lists"
}
