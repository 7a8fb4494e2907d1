package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akosiano1/itpm-proj/internal/domain/entity"
	"github.com/akosiano1/itpm-proj/internal/domain/repository"
	"github.com/akosiano1/itpm-proj/pkg/apperror"
	"github.com/akosiano1/itpm-proj/pkg/pagination"
)

// ExpenseService handles the expenses ledger
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// ExpenseInput represents the fields for recording an expense
type ExpenseInput struct {
	ExpenseName  string
	Quantity     *string
	Cost         float64
	Date         string
	SupplierName *string
}

// List returns a page of expenses, most recent date first
func (s *ExpenseService) List(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Expense], error) {
	params.Validate()
	expenses, total, err := s.expenseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(expenses, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// Create records an expense. An omitted date defaults to the current
// business date.
func (s *ExpenseService) Create(ctx context.Context, input *ExpenseInput) (*entity.Expense, error) {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.ExpenseName) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "expense_name",
			Message: "Expense name is required",
		})
	}
	if math.IsNaN(input.Cost) || math.IsInf(input.Cost, 0) || input.Cost < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "cost",
			Message: "Cost must be a finite non-negative number",
		})
	}
	date := input.Date
	if date == "" {
		date = today()
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "date",
			Message: "Date must be in YYYY-MM-DD format",
		})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	expense := &entity.Expense{
		ExpenseName:  strings.TrimSpace(input.ExpenseName),
		Quantity:     input.Quantity,
		Cost:         input.Cost,
		Date:         date,
		SupplierName: input.SupplierName,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// Delete removes an expense from the ledger
func (s *ExpenseService) Delete(ctx context.Context, expenseID uuid.UUID) error {
	expense, err := s.expenseRepo.GetByID(ctx, expenseID)
	if err != nil {
		return err
	}
	if expense == nil {
		return apperror.NewNotFoundError("Expense")
	}
	return s.expenseRepo.Delete(ctx, expenseID)
}
