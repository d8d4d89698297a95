// Package cart holds the transient line-item state of one register session.
// A cart is never persisted — it is materialized into a sale snapshot only at
// checkout.
package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Item is one cart line. ID is a surrogate line id, distinct from ProductID:
// the same product never appears on two lines.
type Item struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	Name        string
	UnitPrice   decimal.Decimal
	Quantity    int
	DiscountPct decimal.Decimal // per-line discount, 0–100
	TaxRatePct  decimal.Decimal // per-line tax rate, >= 0
}

// gross returns UnitPrice × Quantity.
func (it Item) gross() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// discount returns the line discount amount.
func (it Item) discount() decimal.Decimal {
	return it.gross().Mul(it.DiscountPct).Div(hundred)
}

// tax is charged on the post-discount line amount.
func (it Item) tax() decimal.Decimal {
	return it.gross().Sub(it.discount()).Mul(it.TaxRatePct).Div(hundred)
}

// Cart is an ordered sequence of items (insertion order, not significant to
// totals) plus an optional associated customer. It is owned exclusively by
// one POS session; it is not safe for concurrent mutation.
type Cart struct {
	items      []Item
	customerID *uuid.UUID
}

// New returns an empty cart.
func New() *Cart { return &Cart{} }

// AddItem inserts it as a new line, or merges into an existing line with the
// same product id. On merge only quantity accumulates — the existing line's
// price, discount and tax rate win over the incoming values. Returns the id
// of the affected line.
func (c *Cart) AddItem(it Item) uuid.UUID {
	for i := range c.items {
		if c.items[i].ProductID == it.ProductID {
			c.items[i].Quantity += it.Quantity
			return c.items[i].ID
		}
	}
	it.ID = uuid.New()
	c.items = append(c.items, it)
	return it.ID
}

// UpdateQuantity sets the quantity of line id exactly. A quantity of zero or
// below removes the line: no zero-or-negative-quantity lines persist.
func (c *Cart) UpdateQuantity(id uuid.UUID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(id)
		return
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes line id. No-op when the id is not present.
func (c *Cart) RemoveItem(id uuid.UUID) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateDiscount sets the per-line discount percent of line id.
// No-op when the id is not present.
func (c *Cart) UpdateDiscount(id uuid.UUID, pct decimal.Decimal) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].DiscountPct = pct
			return
		}
	}
}

// SetCustomer associates the cart with a customer. Pure assignment — the id
// is not validated against the customer directory here.
func (c *Cart) SetCustomer(id *uuid.UUID) { c.customerID = id }

// CustomerID returns the associated customer, nil when none.
func (c *Cart) CustomerID() *uuid.UUID { return c.customerID }

// Clear empties the items and drops the customer association.
func (c *Cart) Clear() {
	c.items = nil
	c.customerID = nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// Len returns the number of lines.
func (c *Cart) Len() int { return len(c.items) }

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Subtotal is Σ(price × quantity) over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.items {
		sum = sum.Add(it.gross())
	}
	return sum
}

// DiscountAmount is the per-line discount sum. Discounts are computed line by
// line, so a mixed-discount cart is not equivalent to one blended rate on the
// subtotal.
func (c *Cart) DiscountAmount() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.items {
		sum = sum.Add(it.discount())
	}
	return sum
}

// TaxAmount sums per-line tax, each charged on the post-discount line amount.
func (c *Cart) TaxAmount() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.items {
		sum = sum.Add(it.tax())
	}
	return sum
}

// Total is subtotal − total discount + total tax.
func (c *Cart) Total() decimal.Decimal {
	return c.Subtotal().Sub(c.DiscountAmount()).Add(c.TaxAmount())
}
