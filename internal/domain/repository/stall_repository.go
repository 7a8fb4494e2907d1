package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/akosiano1/itpm-proj/internal/domain/entity"
	"github.com/akosiano1/itpm-proj/internal/domain/enum"
)

// StallRepository defines the interface for stall operations
type StallRepository interface {
	Create(ctx context.Context, stall *entity.Stall) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Stall, error)
	List(ctx context.Context) ([]entity.Stall, error)
	Update(ctx context.Context, stall *entity.Stall) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.StallStatus) error
	Count(ctx context.Context) (int64, error)
}

// StockRepository defines the interface for per-stall stock operations.
// Each stall has at most one stock row.
type StockRepository interface {
	GetByStallID(ctx context.Context, stallID uuid.UUID) (*entity.StallStock, error)
	List(ctx context.Context) ([]entity.StallStock, error)
	// ApplyDelta adjusts the stall's quantity by delta, clamping the result
	// at zero, creating the row if it does not exist yet.
	ApplyDelta(ctx context.Context, stallID uuid.UUID, delta float64) error
	// Set overwrites the stall's quantity, creating the row if needed.
	Set(ctx context.Context, stallID uuid.UUID, quantity float64) error
}
