package models

// Organization is a tenant. Users and todo-list entries belong to exactly one
// organization and are removed together with it.
type Organization struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`

	// Relationships
	Users     []User     `json:"users,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	ToDoLists []ToDoList `json:"todo_lists,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
