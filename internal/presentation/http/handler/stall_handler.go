package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/akosiano1/itpm-proj/internal/application/service"
	"github.com/akosiano1/itpm-proj/internal/domain/enum"
	"github.com/akosiano1/itpm-proj/internal/presentation/http/dto/request"
	"github.com/akosiano1/itpm-proj/internal/presentation/http/dto/response"
)

// StallHandler handles stall HTTP requests
type StallHandler struct {
	stallService *service.StallService
}

// NewStallHandler creates a new stall handler
func NewStallHandler(stallService *service.StallService) *StallHandler {
	return &StallHandler{stallService: stallService}
}

// List returns all stalls
func (h *StallHandler) List(c *gin.Context) {
	stalls, err := h.stallService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stalls retrieved", stalls)
}

// SetStatus changes a stall's operational status
func (h *StallHandler) SetStatus(c *gin.Context) {
	stallID := parseIDParam(c, "stall_id")
	if stallID == uuid.Nil {
		response.BadRequest(c, "Invalid stall id")
		return
	}

	var req request.SetStallStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	out, err := h.stallService.SetStatus(c.Request.Context(), stallID, enum.StallStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stall status updated", out)
}
