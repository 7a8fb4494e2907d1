// Package cart implements the in-memory order cart used by the point of
// sale. A cart holds at most one line per menu item, in the order the items
// were first added.
package cart

import (
	"github.com/google/uuid"
)

// Line is a single cart entry for a menu item.
type Line struct {
	ItemID   uuid.UUID `json:"item_id"`
	ItemName string    `json:"item_name"`
	Price    float64   `json:"price"`
	Quantity int       `json:"quantity"`
}

// Subtotal returns price times quantity for the line.
func (l Line) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Cart is an ordered collection of lines, unique by item id. It is not safe
// for concurrent use; the Store serializes access per user.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add increments the quantity of an existing line, or appends a new line
// with quantity one. Insertion order is preserved either way.
func (c *Cart) Add(itemID uuid.UUID, itemName string, price float64) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{
		ItemID:   itemID,
		ItemName: itemName,
		Price:    price,
		Quantity: 1,
	})
}

// Remove drops the line for the given item. Removing an absent item is a
// no-op.
func (c *Cart) Remove(itemID uuid.UUID) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces a line's quantity. A quantity of zero or less removes
// the line. Setting quantity on an absent item is a no-op.
func (c *Cart) SetQuantity(itemID uuid.UUID, quantity int) {
	if quantity <= 0 {
		c.Remove(itemID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total returns the sum of line subtotals.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Clear removes all lines.
func (c *Cart) Clear() {
	c.lines = nil
}
