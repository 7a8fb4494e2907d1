package repository

import (
	"context"

	"github.com/akosiano1/itpm-proj/internal/domain/entity"
)

// SaleRepository defines the interface for sale operations. Checkout inserts
// one row per cart line, so CreateBatch is the write path.
type SaleRepository interface {
	CreateBatch(ctx context.Context, sales []entity.Sale) error
	// List returns sales with stall and menu item relations preloaded,
	// newest first, capped at limit when limit > 0.
	List(ctx context.Context, limit int) ([]entity.Sale, error)
	// ListSince returns sales on or after the given date (inclusive),
	// relations preloaded.
	ListSince(ctx context.Context, date string) ([]entity.Sale, error)
}
