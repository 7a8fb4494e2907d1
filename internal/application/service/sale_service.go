package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/akosiano1/itpm-proj/internal/application/cart"
	"github.com/akosiano1/itpm-proj/internal/domain/entity"
	"github.com/akosiano1/itpm-proj/internal/domain/enum"
	"github.com/akosiano1/itpm-proj/internal/domain/repository"
	"github.com/akosiano1/itpm-proj/pkg/apperror"
)

// recentTransactionsLimit caps the transactions listing on the register.
const recentTransactionsLimit = 50

// SaleService handles point of sale checkout and the transactions listing
type SaleService struct {
	saleRepo    repository.SaleRepository
	profileRepo repository.ProfileRepository
	carts       *cart.Store
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	profileRepo repository.ProfileRepository,
	carts *cart.Store,
) *SaleService {
	return &SaleService{
		saleRepo:    saleRepo,
		profileRepo: profileRepo,
		carts:       carts,
	}
}

// CheckoutInput represents the checkout input
type CheckoutInput struct {
	PaymentMethod string
}

// CheckoutOutput represents the recorded checkout
type CheckoutOutput struct {
	Sales         []entity.Sale `json:"sales"`
	Total         float64       `json:"total"`
	SaleDate      string        `json:"sale_date"`
	PaymentMethod string        `json:"payment_method"`
}

// Checkout records the cashier's cart as one sale row per line. All rows
// share the same business date and payment method. The cart is cleared only
// after the rows are persisted, so a failed checkout leaves it intact.
func (s *SaleService) Checkout(ctx context.Context, userID uuid.UUID, input *CheckoutInput) (*CheckoutOutput, error) {
	method := enum.PaymentMethod(input.PaymentMethod)

	var fieldErrors []apperror.FieldError
	lines, total := s.carts.Snapshot(userID)
	if len(lines) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "cart",
			Message: "Cart is empty",
		})
	}
	if !method.Valid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "payment_method",
			Message: "Payment method must be cash or Gcash",
		})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.StallID == nil {
		return nil, apperror.NewBadRequestError("Cashier has no stall assignment")
	}

	saleDate := today()
	sales := make([]entity.Sale, 0, len(lines))
	for _, line := range lines {
		sales = append(sales, entity.Sale{
			StallID:       *profile.StallID,
			UserID:        userID,
			SaleDate:      saleDate,
			ProductID:     line.ItemID,
			QuantitySold:  line.Quantity,
			TotalAmount:   line.Subtotal(),
			PaymentMethod: method,
		})
	}

	if err := s.saleRepo.CreateBatch(ctx, sales); err != nil {
		return nil, err
	}

	s.carts.Drop(userID)

	return &CheckoutOutput{
		Sales:         sales,
		Total:         total,
		SaleDate:      saleDate,
		PaymentMethod: string(method),
	}, nil
}

// ListTransactions returns recent sales, newest first
func (s *SaleService) ListTransactions(ctx context.Context) ([]entity.Sale, error) {
	return s.saleRepo.List(ctx, recentTransactionsLimit)
}
