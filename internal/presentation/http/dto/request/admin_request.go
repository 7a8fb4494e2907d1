package request

// CreateMenuItemRequest adds a menu item to the catalog
type CreateMenuItemRequest struct {
	ItemName string  `json:"item_name" binding:"required,max=255"`
	Price    float64 `json:"price" binding:"min=0"`
	ImageURL *string `json:"image_url"`
}

// UpdateMenuItemRequest edits a menu item's name, price, or image
type UpdateMenuItemRequest struct {
	ItemName string  `json:"item_name" binding:"required,max=255"`
	Price    float64 `json:"price" binding:"min=0"`
	ImageURL *string `json:"image_url"`
}

// StockDeltaRequest adjusts a stall's stock by a signed amount
type StockDeltaRequest struct {
	Delta float64 `json:"delta" binding:"required"`
}

// StockResetRequest overwrites a stall's stock level
type StockResetRequest struct {
	Quantity float64 `json:"quantity" binding:"min=0"`
}

// CreateExpenseRequest records an expense
type CreateExpenseRequest struct {
	ExpenseName  string  `json:"expense_name" binding:"required,max=255"`
	Quantity     *string `json:"quantity"`
	Cost         float64 `json:"cost" binding:"min=0"`
	Date         string  `json:"date"`
	SupplierName *string `json:"supplier_name"`
}

// CreateStaffRequest provisions a staff account
type CreateStaffRequest struct {
	FullName string `json:"full_name" binding:"required,min=2,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	StallID  string `json:"stall_id" binding:"required,uuid"`
}

// SetStallStatusRequest changes a stall's operational status
type SetStallStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
