package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// unusablePassword marks accounts created without a password; it never
// matches a bcrypt comparison.
const unusablePassword = "!"

// User is an account scoped to one organization. The same email may exist
// once per organization.
type User struct {
	BaseModel
	Email          string     `json:"email" gorm:"uniqueIndex:idx_users_email_organization;not null;size:60" validate:"required,max=60"`
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_users_email_organization;index"`
	Password       string     `json:"-" gorm:"not null;size:128"`
	IsActive       bool       `json:"is_active" gorm:"not null;default:true"`
	IsStaff        bool       `json:"is_staff" gorm:"not null;default:false"`
	IsSuperuser    bool       `json:"is_superuser" gorm:"not null;default:false"`
	DateJoined     time.Time  `json:"date_joined" gorm:"autoCreateTime;<-:create"`
	LastLogin      *time.Time `json:"last_login"`

	// Relationships
	Organization Organization `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Sessions     []Session    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// OrganizationName returns the name of the organization the user belongs to.
// It is only populated when the Organization relation has been loaded.
func (u *User) OrganizationName() string {
	return u.Organization.Name
}

// String renders the user as "email - organization".
func (u *User) String() string {
	return u.Email + " - " + u.OrganizationName()
}

// SetPassword hashes and stores raw. An empty password leaves the account
// without a usable password.
func (u *User) SetPassword(raw string, cost int) error {
	if raw == "" {
		u.Password = unusablePassword
		return nil
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), cost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword reports whether raw matches the stored hash.
func (u *User) CheckPassword(raw string) bool {
	if !u.HasUsablePassword() {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(raw)) == nil
}

// HasUsablePassword reports whether the account can log in with a password.
func (u *User) HasUsablePassword() bool {
	return u.Password != "" && !strings.HasPrefix(u.Password, unusablePassword)
}
