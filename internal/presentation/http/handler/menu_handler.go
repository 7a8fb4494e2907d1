package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/akosiano1/itpm-proj/internal/application/service"
	"github.com/akosiano1/itpm-proj/internal/presentation/http/dto/request"
	"github.com/akosiano1/itpm-proj/internal/presentation/http/dto/response"
)

// MenuHandler handles menu item HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// List returns all menu items
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.menuService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu items retrieved", items)
}

// Create adds a menu item
func (h *MenuHandler) Create(c *gin.Context) {
	var req request.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.Create(c.Request.Context(), &service.MenuItemInput{
		ItemName: req.ItemName,
		Price:    req.Price,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Menu item created", item)
}

// Update edits a menu item
func (h *MenuHandler) Update(c *gin.Context) {
	itemID := parseIDParam(c, "item_id")
	if itemID == uuid.Nil {
		response.BadRequest(c, "Invalid item id")
		return
	}

	var req request.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.Update(c.Request.Context(), itemID, &service.MenuItemInput{
		ItemName: req.ItemName,
		Price:    req.Price,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu item updated", item)
}

// Delete removes a menu item
func (h *MenuHandler) Delete(c *gin.Context) {
	itemID := parseIDParam(c, "item_id")
	if itemID == uuid.Nil {
		response.BadRequest(c, "Invalid item id")
		return
	}

	if err := h.menuService.Delete(c.Request.Context(), itemID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
