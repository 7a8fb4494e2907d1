package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/akosiano1/itpm-proj/internal/domain/entity"
	domainRepo "github.com/akosiano1/itpm-proj/internal/domain/repository"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

// CreateBatch inserts all rows in a single transaction so a checkout is
// recorded completely or not at all.
func (r *saleRepository) CreateBatch(ctx context.Context, sales []entity.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&sales).Error
}

func (r *saleRepository) List(ctx context.Context, limit int) ([]entity.Sale, error) {
	var sales []entity.Sale
	q := r.db.WithContext(ctx).
		Preload("Stall").Preload("MenuItem").
		Order("sale_date DESC, created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&sales).Error
	return sales, err
}

func (r *saleRepository) ListSince(ctx context.Context, date string) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Stall").Preload("MenuItem").
		Where("sale_date >= ?", date).
		Order("sale_date ASC").
		Find(&sales).Error
	return sales, err
}
