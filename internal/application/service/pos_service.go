package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/akosiano1/itpm-proj/internal/application/cart"
	"github.com/akosiano1/itpm-proj/internal/domain/entity"
	"github.com/akosiano1/itpm-proj/internal/domain/repository"
	"github.com/akosiano1/itpm-proj/pkg/apperror"
)

// PosService drives the register screen: the menu and the cashier's cart
type PosService struct {
	menuRepo repository.MenuRepository
	carts    *cart.Store
}

// NewPosService creates a new point of sale service
func NewPosService(menuRepo repository.MenuRepository, carts *cart.Store) *PosService {
	return &PosService{
		menuRepo: menuRepo,
		carts:    carts,
	}
}

// CartView is the cart as shown on the register
type CartView struct {
	Lines []cart.Line `json:"lines"`
	Total float64     `json:"total"`
}

// Menu returns the full menu for the register grid
func (s *PosService) Menu(ctx context.Context) ([]entity.MenuItem, error) {
	return s.menuRepo.List(ctx)
}

// GetCart returns the cashier's current cart
func (s *PosService) GetCart(userID uuid.UUID) *CartView {
	lines, total := s.carts.Snapshot(userID)
	return &CartView{Lines: lines, Total: total}
}

// AddItem puts one unit of a menu item in the cart. The item's name and
// price are captured at add time, so a later price edit does not reprice an
// open cart.
func (s *PosService) AddItem(ctx context.Context, userID, itemID uuid.UUID) (*CartView, error) {
	item, err := s.menuRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	s.carts.Mutate(userID, func(c *cart.Cart) {
		c.Add(item.ItemID, item.ItemName, item.Price)
	})
	return s.GetCart(userID), nil
}

// SetQuantity replaces a line's quantity; zero or less removes the line
func (s *PosService) SetQuantity(userID, itemID uuid.UUID, quantity int) *CartView {
	s.carts.Mutate(userID, func(c *cart.Cart) {
		c.SetQuantity(itemID, quantity)
	})
	return s.GetCart(userID)
}

// RemoveItem drops a line from the cart
func (s *PosService) RemoveItem(userID, itemID uuid.UUID) *CartView {
	s.carts.Mutate(userID, func(c *cart.Cart) {
		c.Remove(itemID)
	})
	return s.GetCart(userID)
}

// ClearCart empties the cart without recording anything
func (s *PosService) ClearCart(userID uuid.UUID) *CartView {
	s.carts.Drop(userID)
	return s.GetCart(userID)
}
