package entity

import (
	"time"

	"github.com/akosiano1/itpm-proj/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale is one persisted record of a single menu item sold as part of a
// checkout. Rows are only ever created in batches, one per cart line, all
// sharing the same sale date and payment method; never updated or deleted.
type Sale struct {
	SaleID        uuid.UUID          `gorm:"type:uuid;primary_key;column:sale_id" json:"sale_id"`
	StallID       uuid.UUID          `gorm:"type:uuid;not null;index;column:stall_id" json:"stall_id"`
	UserID        uuid.UUID          `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	SaleDate      string             `gorm:"type:date;not null;index;column:sale_date" json:"sale_date"`
	ProductID     uuid.UUID          `gorm:"type:uuid;not null;column:product_id" json:"product_id"`
	QuantitySold  int                `gorm:"not null;column:quantity_sold" json:"quantity_sold"`
	TotalAmount   float64            `gorm:"not null;column:total_amount" json:"total_amount"`
	PaymentMethod enum.PaymentMethod `gorm:"size:50;not null;column:payment_method" json:"payment_method"`
	CreatedAt     time.Time          `json:"created_at"`

	Stall    *Stall    `gorm:"foreignKey:StallID" json:"stall,omitempty"`
	MenuItem *MenuItem `gorm:"foreignKey:ProductID" json:"menu_item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale row
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.SaleID == uuid.Nil {
		s.SaleID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}
