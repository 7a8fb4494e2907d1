package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/akosiano1/itpm-proj/internal/application/service"
	"github.com/akosiano1/itpm-proj/internal/presentation/http/dto/request"
	"github.com/akosiano1/itpm-proj/internal/presentation/http/dto/response"
	"github.com/akosiano1/itpm-proj/pkg/pagination"
)

// ExpenseHandler handles expense HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// List returns a page of expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.expenseService.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, "Expenses retrieved", result)
}

// Create records an expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req request.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.expenseService.Create(c.Request.Context(), &service.ExpenseInput{
		ExpenseName:  req.ExpenseName,
		Quantity:     req.Quantity,
		Cost:         req.Cost,
		Date:         req.Date,
		SupplierName: req.SupplierName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Expense recorded", expense)
}

// Delete removes an expense
func (h *ExpenseHandler) Delete(c *gin.Context) {
	expenseID := parseIDParam(c, "expense_id")
	if expenseID == uuid.Nil {
		response.BadRequest(c, "Invalid expense id")
		return
	}

	if err := h.expenseService.Delete(c.Request.Context(), expenseID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
