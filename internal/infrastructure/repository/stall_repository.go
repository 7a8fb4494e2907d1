package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/akosiano1/itpm-proj/internal/domain/entity"
	"github.com/akosiano1/itpm-proj/internal/domain/enum"
	domainRepo "github.com/akosiano1/itpm-proj/internal/domain/repository"
)

type stallRepository struct {
	db *gorm.DB
}

// NewStallRepository creates a new stall repository
func NewStallRepository(db *gorm.DB) domainRepo.StallRepository {
	return &stallRepository{db: db}
}

func (r *stallRepository) Create(ctx context.Context, stall *entity.Stall) error {
	return r.db.WithContext(ctx).Create(stall).Error
}

func (r *stallRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Stall, error) {
	var stall entity.Stall
	err := r.db.WithContext(ctx).First(&stall, "stall_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &stall, err
}

func (r *stallRepository) List(ctx context.Context) ([]entity.Stall, error) {
	var stalls []entity.Stall
	err := r.db.WithContext(ctx).Order("stall_name ASC").Find(&stalls).Error
	return stalls, err
}

func (r *stallRepository) Update(ctx context.Context, stall *entity.Stall) error {
	return r.db.WithContext(ctx).Save(stall).Error
}

func (r *stallRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.StallStatus) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Stall{}).
		Where("stall_id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *stallRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Stall{}).Count(&count).Error
	return count, err
}

type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository creates a new stock repository
func NewStockRepository(db *gorm.DB) domainRepo.StockRepository {
	return &stockRepository{db: db}
}

func (r *stockRepository) GetByStallID(ctx context.Context, stallID uuid.UUID) (*entity.StallStock, error) {
	var stock entity.StallStock
	err := r.db.WithContext(ctx).First(&stock, "stall_id = ?", stallID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &stock, err
}

func (r *stockRepository) List(ctx context.Context) ([]entity.StallStock, error) {
	var stocks []entity.StallStock
	err := r.db.WithContext(ctx).Find(&stocks).Error
	return stocks, err
}

// ApplyDelta adjusts the quantity atomically at the database, clamping at
// zero. A missing row counts as quantity zero, so the insert path clamps too.
func (r *stockRepository) ApplyDelta(ctx context.Context, stallID uuid.UUID, delta float64) error {
	initial := delta
	if initial < 0 {
		initial = 0
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "stall_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("GREATEST(stall_stocks.quantity + ?, 0)", delta),
		}),
	}).Create(&entity.StallStock{StallID: stallID, Quantity: initial}).Error
}

func (r *stockRepository) Set(ctx context.Context, stallID uuid.UUID, quantity float64) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "stall_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"quantity": quantity}),
	}).Create(&entity.StallStock{StallID: stallID, Quantity: quantity}).Error
}
