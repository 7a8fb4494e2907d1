package request

// AddCartItemRequest adds one unit of a menu item to the cart
type AddCartItemRequest struct {
	ItemID string `json:"item_id" binding:"required,uuid"`
}

// SetCartQuantityRequest replaces a cart line's quantity. Zero or negative
// removes the line.
type SetCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest records the cart as a sale
type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}
