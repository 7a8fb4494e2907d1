package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/akosiano1/itpm-proj/internal/application/service"
	"github.com/akosiano1/itpm-proj/internal/presentation/http/dto/request"
	"github.com/akosiano1/itpm-proj/internal/presentation/http/dto/response"
)

// StockHandler handles stock HTTP requests
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// List returns the stock reading for every stall
func (h *StockHandler) List(c *gin.Context) {
	levels, err := h.stockService.ListByStall(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock levels retrieved", levels)
}

// Get returns a stall's stock level
func (h *StockHandler) Get(c *gin.Context) {
	stallID := parseIDParam(c, "stall_id")
	if stallID == uuid.Nil {
		response.BadRequest(c, "Invalid stall id")
		return
	}

	level, err := h.stockService.Get(c.Request.Context(), stallID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock level retrieved", level)
}

// ApplyDelta adjusts a stall's stock by a signed amount
func (h *StockHandler) ApplyDelta(c *gin.Context) {
	stallID := parseIDParam(c, "stall_id")
	if stallID == uuid.Nil {
		response.BadRequest(c, "Invalid stall id")
		return
	}

	var req request.StockDeltaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	level, err := h.stockService.ApplyDelta(c.Request.Context(), stallID, req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock adjusted", level)
}

// Reset overwrites a stall's stock level
func (h *StockHandler) Reset(c *gin.Context) {
	stallID := parseIDParam(c, "stall_id")
	if stallID == uuid.Nil {
		response.BadRequest(c, "Invalid stall id")
		return
	}

	var req request.StockResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	level, err := h.stockService.Reset(c.Request.Context(), stallID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock reset", level)
}
