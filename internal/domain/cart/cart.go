package cart

import "github.com/Spok95/uniformhub/internal/domain/catalog"

// Cart aggregates order lines for one sale. It is not safe for concurrent use;
// the owning workspace serializes callers.
type Cart struct {
	lines []Line
}

func New() *Cart { return &Cart{} }

func (c *Cart) index(id string) int {
	for i := range c.lines {
		if c.lines[i].Item.ID == id {
			return i
		}
	}
	return -1
}

// Add puts one unit of item into the cart, never exceeding its stock.
// A zero-stock item is rejected without inserting a line.
func (c *Cart) Add(item catalog.Item) Outcome {
	if i := c.index(item.ID); i >= 0 {
		l := &c.lines[i]
		if l.Quantity >= l.Item.Stock {
			l.Quantity = l.Item.Stock
			return Clamped
		}
		l.Quantity++
		return Incremented
	}
	if item.Stock <= 0 {
		return Rejected
	}
	c.lines = append(c.lines, Line{Item: item, Quantity: 1})
	return Added
}

// Remove deletes the line for id and reports whether one existed.
func (c *Cart) Remove(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.lines = append(c.lines[:i:i], c.lines[i+1:]...)
	return true
}

// UpdateQuantity sets the line quantity to min(qty, stock); qty <= 0 removes the line.
func (c *Cart) UpdateQuantity(id string, qty int) Outcome {
	if qty <= 0 {
		if c.Remove(id) {
			return Removed
		}
		return Noop
	}
	i := c.index(id)
	if i < 0 {
		return Noop
	}
	l := &c.lines[i]
	if qty > l.Item.Stock {
		l.Quantity = l.Item.Stock
		return Clamped
	}
	l.Quantity = qty
	return Updated
}

func (c *Cart) Clear() { c.lines = nil }

// Lines returns a copy in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int { return len(c.lines) }

func (c *Cart) Empty() bool { return len(c.lines) == 0 }

// Quantity returns 0 when id is not in the cart.
func (c *Cart) Quantity(id string) int {
	if i := c.index(id); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// Units is the total number of pieces across all lines.
func (c *Cart) Units() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, l := range c.lines {
		sum += l.Amount()
	}
	return sum
}

func (c *Cart) Tax() float64 { return c.Subtotal() * TaxRate }

func (c *Cart) Total() float64 {
	sub := c.Subtotal()
	return sub + sub*TaxRate
}

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

func (c *Cart) Totals() Totals {
	sub := c.Subtotal()
	tax := sub * TaxRate
	return Totals{Subtotal: sub, Tax: tax, Total: sub + tax}
}
