package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/akosiano1/itpm-proj/internal/application/service"
	"github.com/akosiano1/itpm-proj/internal/presentation/http/dto/request"
	"github.com/akosiano1/itpm-proj/internal/presentation/http/dto/response"
)

// StaffHandler handles staff management HTTP requests
type StaffHandler struct {
	staffService *service.StaffService
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// List returns all staff grouped by stall
func (h *StaffHandler) List(c *gin.Context) {
	rosters, err := h.staffService.ListStaff(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Staff retrieved", rosters)
}

// Create provisions a staff account
func (h *StaffHandler) Create(c *gin.Context) {
	var req request.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	stallID, err := uuid.Parse(req.StallID)
	if err != nil {
		response.BadRequest(c, "Invalid stall id")
		return
	}

	profile, err := h.staffService.CreateStaff(c.Request.Context(), &service.CreateStaffInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		StallID:  stallID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Staff account created", profile)
}

// Delete removes a staff account
func (h *StaffHandler) Delete(c *gin.Context) {
	staffID := parseIDParam(c, "staff_id")
	if staffID == uuid.Nil {
		response.BadRequest(c, "Invalid staff id")
		return
	}

	if err := h.staffService.DeleteStaff(c.Request.Context(), staffID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
