package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"todo-list-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var seq atomic.Int64

func nextSeq() int64 {
	return seq.Add(1)
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with a unique name
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: fmt.Sprintf("Test Company %d", nextSeq()),
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// DefaultPassword is the raw password set by UserFactory
const DefaultPassword = "foo"

// Create creates an active test User with DefaultPassword. OrganizationID is
// random; use WithOrganization for rows that will be persisted.
func (f *UserFactory) Create() *models.User {
	u := &models.User{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:          fmt.Sprintf("user%d@email.com", nextSeq()),
		OrganizationID: uuid.New(),
		IsActive:       true,
	}
	_ = u.SetPassword(DefaultPassword, bcrypt.MinCost)
	return u
}

// WithOrganization binds the user to org
func (f *UserFactory) WithOrganization(org *models.Organization) *models.User {
	u := f.Create()
	u.OrganizationID = org.ID
	u.Organization = *org
	return u
}

// WithEmail creates a user of org with a custom email
func (f *UserFactory) WithEmail(org *models.Organization, email string) *models.User {
	u := f.WithOrganization(org)
	u.Email = email
	return u
}

// ToDoListFactory provides methods to create test ToDoList data
type ToDoListFactory struct{}

// NewToDoListFactory creates a new ToDoListFactory
func NewToDoListFactory() *ToDoListFactory {
	return &ToDoListFactory{}
}

// Create creates an unfinished todo list entry
func (f *ToDoListFactory) Create() *models.ToDoList {
	return &models.ToDoList{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Text:           fmt.Sprintf("test %d", nextSeq()),
	}
}

// WithOrganization creates an entry owned by org
func (f *ToDoListFactory) WithOrganization(org *models.Organization) *models.ToDoList {
	item := f.Create()
	item.OrganizationID = org.ID
	item.Organization = *org
	return item
}

// WithText creates an entry of org with custom text
func (f *ToDoListFactory) WithText(org *models.Organization, text string) *models.ToDoList {
	item := f.WithOrganization(org)
	item.Text = text
	return item
}

// FactorySet groups all factories for convenient access in tests
type FactorySet struct {
	Organization *OrganizationFactory
	User         *UserFactory
	ToDoList     *ToDoListFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		User:         NewUserFactory(),
		ToDoList:     NewToDoListFactory(),
	}
}
