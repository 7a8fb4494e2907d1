package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuItem is a sellable product. Price is a non-negative decimal in pesos;
// validation happens before any write reaches the repository.
type MenuItem struct {
	ItemID    uuid.UUID `gorm:"type:uuid;primary_key;column:item_id" json:"item_id"`
	ItemName  string    `gorm:"size:255;not null;column:item_name" json:"item_name"`
	Price     float64   `gorm:"not null;default:0" json:"price"`
	ImageURL  *string   `gorm:"size:255;column:image_url" json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new menu item
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ItemID == uuid.Nil {
		m.ItemID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}
