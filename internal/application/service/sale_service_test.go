package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/akosiano1/itpm-proj/internal/application/cart"
	"github.com/akosiano1/itpm-proj/internal/domain/entity"
	"github.com/akosiano1/itpm-proj/pkg/apperror"
)

type fakeSaleRepo struct {
	batches [][]entity.Sale
	fail    error
}

func (f *fakeSaleRepo) CreateBatch(_ context.Context, sales []entity.Sale) error {
	if f.fail != nil {
		return f.fail
	}
	f.batches = append(f.batches, sales)
	return nil
}

func (f *fakeSaleRepo) List(_ context.Context, _ int) ([]entity.Sale, error) {
	return nil, nil
}

func (f *fakeSaleRepo) ListSince(_ context.Context, _ string) ([]entity.Sale, error) {
	return nil, nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*entity.Profile
}

func (f *fakeProfileRepo) Create(_ context.Context, p *entity.Profile) error { return nil }
func (f *fakeProfileRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	return f.profiles[id], nil
}
func (f *fakeProfileRepo) Update(_ context.Context, p *entity.Profile) error { return nil }
func (f *fakeProfileRepo) Delete(_ context.Context, id uuid.UUID) error      { return nil }
func (f *fakeProfileRepo) List(_ context.Context) ([]entity.Profile, error)  { return nil, nil }
func (f *fakeProfileRepo) ListByRole(_ context.Context, _ string) ([]entity.Profile, error) {
	return nil, nil
}

func newCheckoutFixture(t *testing.T) (*SaleService, *fakeSaleRepo, *cart.Store, uuid.UUID) {
	t.Helper()

	userID := uuid.New()
	stallID := uuid.New()
	saleRepo := &fakeSaleRepo{}
	profileRepo := &fakeProfileRepo{
		profiles: map[uuid.UUID]*entity.Profile{
			userID: {ID: userID, StallID: &stallID},
		},
	}
	carts := cart.NewStore(cart.StoreConfig{
		EntryTTL:        time.Hour,
		CleanupInterval: time.Hour,
	})
	return NewSaleService(saleRepo, profileRepo, carts), saleRepo, carts, userID
}

func TestCheckoutRecordsOneRowPerLine(t *testing.T) {
	svc, saleRepo, carts, userID := newCheckoutFixture(t)

	wings := uuid.New()
	rice := uuid.New()
	carts.Mutate(userID, func(c *cart.Cart) {
		c.Add(wings, "Wings", 120)
		c.Add(wings, "Wings", 120)
		c.Add(rice, "Rice", 15)
	})

	out, err := svc.Checkout(context.Background(), userID, &CheckoutInput{PaymentMethod: "cash"})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if len(saleRepo.batches) != 1 {
		t.Fatalf("got %d batches, want 1", len(saleRepo.batches))
	}
	rows := saleRepo.batches[0]
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	// All rows share one business date and payment method.
	for _, row := range rows {
		if row.SaleDate != rows[0].SaleDate {
			t.Errorf("row dates differ: %s vs %s", row.SaleDate, rows[0].SaleDate)
		}
		if row.PaymentMethod != "cash" {
			t.Errorf("payment method = %s, want cash", row.PaymentMethod)
		}
		if row.UserID != userID {
			t.Errorf("row user = %s, want %s", row.UserID, userID)
		}
	}

	if rows[0].ProductID != wings || rows[0].QuantitySold != 2 || rows[0].TotalAmount != 240 {
		t.Errorf("first row = %+v, want Wings x2 = 240", rows[0])
	}
	if out.Total != 255 {
		t.Errorf("checkout total = %v, want 255", out.Total)
	}

	// A successful checkout clears the cart.
	if lines, _ := carts.Snapshot(userID); len(lines) != 0 {
		t.Errorf("cart has %d lines after checkout, want 0", len(lines))
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, saleRepo, _, userID := newCheckoutFixture(t)

	_, err := svc.Checkout(context.Background(), userID, &CheckoutInput{PaymentMethod: "cash"})
	if err == nil {
		t.Fatal("expected error for empty cart")
	}
	appErr := apperror.GetAppError(err)
	if len(appErr.Errors) != 1 || appErr.Errors[0].Field != "cart" {
		t.Errorf("unexpected field errors: %+v", appErr.Errors)
	}
	if len(saleRepo.batches) != 0 {
		t.Error("nothing should be written for an empty cart")
	}
}

func TestCheckoutInvalidPaymentMethod(t *testing.T) {
	svc, saleRepo, carts, userID := newCheckoutFixture(t)
	carts.Mutate(userID, func(c *cart.Cart) {
		c.Add(uuid.New(), "Wings", 120)
	})

	for _, method := range []string{"", "card", "gcash", "Cash"} {
		_, err := svc.Checkout(context.Background(), userID, &CheckoutInput{PaymentMethod: method})
		if err == nil {
			t.Errorf("method %q: expected validation error", method)
		}
	}
	if len(saleRepo.batches) != 0 {
		t.Error("nothing should be written for an invalid payment method")
	}

	// The failed attempts leave the cart intact.
	if lines, _ := carts.Snapshot(userID); len(lines) != 1 {
		t.Errorf("cart has %d lines, want 1", len(lines))
	}
}

func TestCheckoutGcashCasing(t *testing.T) {
	svc, saleRepo, carts, userID := newCheckoutFixture(t)
	carts.Mutate(userID, func(c *cart.Cart) {
		c.Add(uuid.New(), "Wings", 120)
	})

	out, err := svc.Checkout(context.Background(), userID, &CheckoutInput{PaymentMethod: "Gcash"})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if out.PaymentMethod != "Gcash" {
		t.Errorf("payment method = %s, want Gcash", out.PaymentMethod)
	}
	if saleRepo.batches[0][0].PaymentMethod != "Gcash" {
		t.Errorf("persisted method = %s, want Gcash", saleRepo.batches[0][0].PaymentMethod)
	}
}

func TestCheckoutPersistFailureKeepsCart(t *testing.T) {
	svc, saleRepo, carts, userID := newCheckoutFixture(t)
	saleRepo.fail = errors.New("connection reset")

	carts.Mutate(userID, func(c *cart.Cart) {
		c.Add(uuid.New(), "Wings", 120)
	})

	_, err := svc.Checkout(context.Background(), userID, &CheckoutInput{PaymentMethod: "cash"})
	if err == nil {
		t.Fatal("expected persistence error")
	}

	if lines, _ := carts.Snapshot(userID); len(lines) != 1 {
		t.Errorf("cart has %d lines after failed checkout, want 1", len(lines))
	}
}

func TestCheckoutNoStallAssignment(t *testing.T) {
	svc, saleRepo, carts, _ := newCheckoutFixture(t)

	orphan := uuid.New()
	carts.Mutate(orphan, func(c *cart.Cart) {
		c.Add(uuid.New(), "Wings", 120)
	})

	_, err := svc.Checkout(context.Background(), orphan, &CheckoutInput{PaymentMethod: "cash"})
	if err == nil {
		t.Fatal("expected error for cashier without a stall")
	}
	if len(saleRepo.batches) != 0 {
		t.Error("nothing should be written without a stall assignment")
	}
}
