package cart

import (
	"testing"

	"github.com/google/uuid"
)

func TestAddNewAndRepeat(t *testing.T) {
	c := New()
	wings := uuid.New()
	rice := uuid.New()

	c.Add(wings, "Wings", 120)
	c.Add(rice, "Rice", 15)
	c.Add(wings, "Wings", 120)

	lines := c.Lines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	// Repeat adds bump quantity without reordering.
	if lines[0].ItemName != "Wings" || lines[0].Quantity != 2 {
		t.Errorf("first line = %s x%d, want Wings x2", lines[0].ItemName, lines[0].Quantity)
	}
	if lines[1].ItemName != "Rice" || lines[1].Quantity != 1 {
		t.Errorf("second line = %s x%d, want Rice x1", lines[1].ItemName, lines[1].Quantity)
	}
	if got := c.Total(); got != 255 {
		t.Errorf("total = %v, want 255", got)
	}
}

func TestSetQuantity(t *testing.T) {
	c := New()
	id := uuid.New()
	c.Add(id, "Wings", 120)

	c.SetQuantity(id, 5)
	if got := c.Total(); got != 600 {
		t.Errorf("total after set = %v, want 600", got)
	}

	// Zero and below removes the line.
	c.SetQuantity(id, 0)
	if !c.Empty() {
		t.Error("cart should be empty after setting quantity to 0")
	}

	c.Add(id, "Wings", 120)
	c.SetQuantity(id, -3)
	if !c.Empty() {
		t.Error("cart should be empty after setting negative quantity")
	}
}

func TestSetQuantityAbsentItem(t *testing.T) {
	c := New()
	c.Add(uuid.New(), "Wings", 120)
	c.SetQuantity(uuid.New(), 4)
	if c.Len() != 1 {
		t.Errorf("got %d lines, want 1", c.Len())
	}
}

func TestRemove(t *testing.T) {
	c := New()
	wings := uuid.New()
	rice := uuid.New()
	drink := uuid.New()
	c.Add(wings, "Wings", 120)
	c.Add(rice, "Rice", 15)
	c.Add(drink, "Drink", 25)

	c.Remove(rice)
	lines := c.Lines()
	if len(lines) != 2 || lines[0].ItemID != wings || lines[1].ItemID != drink {
		t.Errorf("unexpected lines after remove: %+v", lines)
	}

	// Removing an absent item is a no-op.
	c.Remove(uuid.New())
	if c.Len() != 2 {
		t.Errorf("got %d lines, want 2", c.Len())
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(uuid.New(), "Wings", 120)
	c.Clear()
	if !c.Empty() || c.Total() != 0 {
		t.Error("cleared cart should be empty with zero total")
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	c := New()
	id := uuid.New()
	c.Add(id, "Wings", 120)

	lines := c.Lines()
	lines[0].Quantity = 99

	if got := c.Lines()[0].Quantity; got != 1 {
		t.Errorf("cart line mutated through returned slice: quantity = %d", got)
	}
}
