package service

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/akosiano1/itpm-proj/internal/domain/repository"
	"github.com/akosiano1/itpm-proj/pkg/apperror"
)

// StockService handles per-stall stock levels
type StockService struct {
	stockRepo repository.StockRepository
	stallRepo repository.StallRepository
}

// NewStockService creates a new stock service
func NewStockService(stockRepo repository.StockRepository, stallRepo repository.StallRepository) *StockService {
	return &StockService{
		stockRepo: stockRepo,
		stallRepo: stallRepo,
	}
}

// StockLevel is a stall's current stock reading
type StockLevel struct {
	StallID  uuid.UUID `json:"stall_id"`
	Quantity float64   `json:"quantity"`
}

// Get returns a stall's stock level. A stall with no stock row reads as
// zero rather than an error.
func (s *StockService) Get(ctx context.Context, stallID uuid.UUID) (*StockLevel, error) {
	stall, err := s.stallRepo.GetByID(ctx, stallID)
	if err != nil {
		return nil, err
	}
	if stall == nil {
		return nil, apperror.NewNotFoundError("Stall")
	}

	stock, err := s.stockRepo.GetByStallID(ctx, stallID)
	if err != nil {
		return nil, err
	}

	level := &StockLevel{StallID: stallID}
	if stock != nil {
		level.Quantity = stock.Quantity
	}
	return level, nil
}

// ListByStall returns the stock reading for every stall
func (s *StockService) ListByStall(ctx context.Context) ([]StallStockSummary, error) {
	stalls, err := s.stallRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stocks, err := s.stockRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return reduceStockByStall(stalls, stocks), nil
}

// ApplyDelta adjusts a stall's stock by delta, clamping the result at zero
func (s *StockService) ApplyDelta(ctx context.Context, stallID uuid.UUID, delta float64) (*StockLevel, error) {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "delta", Message: "Delta must be a finite number"},
		})
	}

	stall, err := s.stallRepo.GetByID(ctx, stallID)
	if err != nil {
		return nil, err
	}
	if stall == nil {
		return nil, apperror.NewNotFoundError("Stall")
	}

	if err := s.stockRepo.ApplyDelta(ctx, stallID, delta); err != nil {
		return nil, err
	}
	return s.Get(ctx, stallID)
}

// Reset overwrites a stall's stock to an exact quantity
func (s *StockService) Reset(ctx context.Context, stallID uuid.UUID, quantity float64) (*StockLevel, error) {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) || quantity < 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "quantity", Message: "Quantity must be a finite non-negative number"},
		})
	}

	stall, err := s.stallRepo.GetByID(ctx, stallID)
	if err != nil {
		return nil, err
	}
	if stall == nil {
		return nil, apperror.NewNotFoundError("Stall")
	}

	if err := s.stockRepo.Set(ctx, stallID, quantity); err != nil {
		return nil, err
	}
	return s.Get(ctx, stallID)
}
