package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense is an append/delete-only cost record. Quantity is free text
// ("20 kilos"); date is a calendar date string (YYYY-MM-DD).
type Expense struct {
	ExpenseID    uuid.UUID `gorm:"type:uuid;primary_key;column:expense_id" json:"expense_id"`
	ExpenseName  string    `gorm:"size:255;not null;column:expense_name" json:"expense_name"`
	Quantity     *string   `gorm:"size:255" json:"quantity,omitempty"`
	Cost         float64   `gorm:"not null;default:0" json:"cost"`
	Date         string    `gorm:"type:date;not null" json:"date"`
	SupplierName *string   `gorm:"size:255;column:supplier_name" json:"supplier_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ExpenseID == uuid.Nil {
		e.ExpenseID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
