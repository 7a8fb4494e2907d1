package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StallStock tracks the single stock figure (kilograms) for one stall.
// At most one row per stall; a missing row means quantity 0. Quantity is
// only moved by signed delta or reset to zero, never set directly.
type StallStock struct {
	StallStockID uuid.UUID `gorm:"type:uuid;primary_key;column:stallstock_id" json:"stallstock_id"`
	StallID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;column:stall_id" json:"stall_id"`
	Quantity     float64   `gorm:"not null;default:0" json:"quantity"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new stock row
func (s *StallStock) BeforeCreate(tx *gorm.DB) error {
	if s.StallStockID == uuid.Nil {
		s.StallStockID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StallStock model
func (StallStock) TableName() string {
	return "stall_stocks"
}
