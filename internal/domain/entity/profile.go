package entity

import (
	"time"

	"github.com/akosiano1/itpm-proj/internal/domain/enum"
	"github.com/google/uuid"
)

// Profile is the application identity record linked one-to-one with a User.
// The primary key is the auth identity's id, matching the original schema.
type Profile struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	FullName  string             `gorm:"size:255" json:"full_name"`
	Email     string             `gorm:"size:255;not null" json:"email"`
	Role      enum.Role          `gorm:"size:50" json:"role"`
	Status    enum.AccountStatus `gorm:"size:50;default:'active'" json:"status"`
	StallID   *uuid.UUID         `gorm:"type:uuid;index" json:"stall_id,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`

	Stall *Stall `gorm:"foreignKey:StallID" json:"stall,omitempty"`
}

// TableName returns the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}
