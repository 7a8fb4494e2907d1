package service

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/akosiano1/itpm-proj/internal/domain/entity"
	"github.com/akosiano1/itpm-proj/internal/domain/repository"
	"github.com/akosiano1/itpm-proj/pkg/apperror"
)

// MenuService handles the menu item catalog
type MenuService struct {
	menuRepo repository.MenuRepository
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo repository.MenuRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// MenuItemInput represents menu item fields for create and update
type MenuItemInput struct {
	ItemName string
	Price    float64
	ImageURL *string
}

func validateMenuItemInput(input *MenuItemInput) error {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.ItemName) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "item_name",
			Message: "Item name is required",
		})
	}
	if math.IsNaN(input.Price) || math.IsInf(input.Price, 0) || input.Price < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "price",
			Message: "Price must be a finite non-negative number",
		})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// List returns all menu items
func (s *MenuService) List(ctx context.Context) ([]entity.MenuItem, error) {
	return s.menuRepo.List(ctx)
}

// Create adds a new menu item
func (s *MenuService) Create(ctx context.Context, input *MenuItemInput) (*entity.MenuItem, error) {
	if err := validateMenuItemInput(input); err != nil {
		return nil, err
	}

	item := &entity.MenuItem{
		ItemName: strings.TrimSpace(input.ItemName),
		Price:    input.Price,
		ImageURL: input.ImageURL,
	}
	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update replaces a menu item's name, price, and image
func (s *MenuService) Update(ctx context.Context, itemID uuid.UUID, input *MenuItemInput) (*entity.MenuItem, error) {
	if err := validateMenuItemInput(input); err != nil {
		return nil, err
	}

	item, err := s.menuRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	item.ItemName = strings.TrimSpace(input.ItemName)
	item.Price = input.Price
	if input.ImageURL != nil {
		item.ImageURL = input.ImageURL
	}

	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes a menu item from the catalog
func (s *MenuService) Delete(ctx context.Context, itemID uuid.UUID) error {
	item, err := s.menuRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}
	return s.menuRepo.Delete(ctx, itemID)
}
