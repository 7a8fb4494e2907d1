package entity

import (
	"time"

	"github.com/akosiano1/itpm-proj/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stall is an independently tracked sales/stock location. Stalls are seeded
// at deployment time; only the status field is mutable through the API.
type Stall struct {
	StallID   uuid.UUID        `gorm:"type:uuid;primary_key;column:stall_id" json:"stall_id"`
	StallName string           `gorm:"size:255;not null;column:stall_name" json:"stall_name"`
	Location  string           `gorm:"size:255" json:"location"`
	Status    enum.StallStatus `gorm:"size:50;default:'active'" json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new stall
func (s *Stall) BeforeCreate(tx *gorm.DB) error {
	if s.StallID == uuid.Nil {
		s.StallID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Stall model
func (Stall) TableName() string {
	return "stalls"
}
