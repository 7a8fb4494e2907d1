package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/akosiano1/itpm-proj/internal/application/service"
	"github.com/akosiano1/itpm-proj/internal/presentation/http/dto/request"
	"github.com/akosiano1/itpm-proj/internal/presentation/http/dto/response"
)

// PosHandler handles the register screen: menu, cart, and checkout
type PosHandler struct {
	posService  *service.PosService
	saleService *service.SaleService
}

// NewPosHandler creates a new point of sale handler
func NewPosHandler(posService *service.PosService, saleService *service.SaleService) *PosHandler {
	return &PosHandler{
		posService:  posService,
		saleService: saleService,
	}
}

// Menu returns the menu grid
func (h *PosHandler) Menu(c *gin.Context) {
	items, err := h.posService.Menu(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu retrieved", items)
}

// GetCart returns the cashier's current cart
func (h *PosHandler) GetCart(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}
	response.OK(c, "Cart retrieved", h.posService.GetCart(*userID))
}

// AddItem puts one unit of a menu item in the cart
func (h *PosHandler) AddItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		response.BadRequest(c, "Invalid item id")
		return
	}

	view, err := h.posService.AddItem(c.Request.Context(), *userID, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item added to cart", view)
}

// SetQuantity replaces a cart line's quantity
func (h *PosHandler) SetQuantity(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	itemID := parseIDParam(c, "item_id")
	if itemID == uuid.Nil {
		response.BadRequest(c, "Invalid item id")
		return
	}

	var req request.SetCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view := h.posService.SetQuantity(*userID, itemID, req.Quantity)
	response.OK(c, "Cart updated", view)
}

// RemoveItem drops a line from the cart
func (h *PosHandler) RemoveItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	itemID := parseIDParam(c, "item_id")
	if itemID == uuid.Nil {
		response.BadRequest(c, "Invalid item id")
		return
	}

	view := h.posService.RemoveItem(*userID, itemID)
	response.OK(c, "Item removed from cart", view)
}

// ClearCart empties the cart without recording a sale
func (h *PosHandler) ClearCart(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	view := h.posService.ClearCart(*userID)
	response.OK(c, "Cart cleared", view)
}

// Checkout records the cart as a sale
func (h *PosHandler) Checkout(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	out, err := h.saleService.Checkout(c.Request.Context(), *userID, &service.CheckoutInput{
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Sale recorded", out)
}

// Transactions lists recent sales for the register's transactions view
func (h *PosHandler) Transactions(c *gin.Context) {
	sales, err := h.saleService.ListTransactions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Transactions retrieved", sales)
}
