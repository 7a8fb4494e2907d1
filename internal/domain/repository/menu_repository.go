package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/akosiano1/itpm-proj/internal/domain/entity"
	"github.com/akosiano1/itpm-proj/pkg/pagination"
)

// MenuRepository defines the interface for menu item operations
type MenuRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	List(ctx context.Context) ([]entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExpenseRepository defines the interface for expense operations
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Expense, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	TotalCost(ctx context.Context) (float64, error)
}
