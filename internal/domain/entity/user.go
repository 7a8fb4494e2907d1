package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the authentication identity. Application-level data (role,
// assigned stall, status) lives on the linked Profile row.
type User struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Email            string     `gorm:"size:255;unique;not null" json:"email"`
	Password         string     `gorm:"size:255;not null" json:"-"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	Profile *Profile `gorm:"foreignKey:ID;references:ID" json:"profile,omitempty"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// EmailConfirmed reports whether the user has confirmed their email address
func (u *User) EmailConfirmed() bool {
	return u.EmailConfirmedAt != nil
}
