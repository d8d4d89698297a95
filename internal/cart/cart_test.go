package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func line(productID uuid.UUID, price string, qty int, discountPct, taxPct string) Item {
	return Item{
		ProductID:   productID,
		Name:        "Paracetamol 500mg",
		UnitPrice:   dec(price),
		Quantity:    qty,
		DiscountPct: dec(discountPct),
		TaxRatePct:  dec(taxPct),
	}
}

func TestAddItem_MergesSameProduct(t *testing.T) {
	c := New()
	pid := uuid.New()

	id1 := c.AddItem(line(pid, "10.00", 1, "0", "0"))
	id2 := c.AddItem(line(pid, "10.00", 1, "0", "0"))

	require.Equal(t, 1, c.Len(), "same product twice must yield one line")
	assert.Equal(t, id1, id2)
	assert.Equal(t, 2, c.Items()[0].Quantity)
}

func TestAddItem_MergeKeepsExistingPricing(t *testing.T) {
	c := New()
	pid := uuid.New()

	c.AddItem(line(pid, "10.00", 1, "5", "21"))
	// Incoming pricing fields are ignored on merge — first write wins.
	c.AddItem(line(pid, "99.00", 3, "50", "0"))

	require.Equal(t, 1, c.Len())
	it := c.Items()[0]
	assert.Equal(t, 4, it.Quantity)
	assert.True(t, it.UnitPrice.Equal(dec("10.00")))
	assert.True(t, it.DiscountPct.Equal(dec("5")))
	assert.True(t, it.TaxRatePct.Equal(dec("21")))
}

func TestAddItem_DistinctProductsKeepInsertionOrder(t *testing.T) {
	c := New()
	p1, p2 := uuid.New(), uuid.New()
	c.AddItem(line(p1, "1.00", 1, "0", "0"))
	c.AddItem(line(p2, "2.00", 1, "0", "0"))

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, p1, items[0].ProductID)
	assert.Equal(t, p2, items[1].ProductID)
	assert.NotEqual(t, items[0].ID, items[1].ID)
}

func TestUpdateQuantity(t *testing.T) {
	c := New()
	id := c.AddItem(line(uuid.New(), "10.00", 2, "0", "0"))

	c.UpdateQuantity(id, 5)
	assert.Equal(t, 5, c.Items()[0].Quantity)

	// Zero or negative removes the line entirely.
	c.UpdateQuantity(id, 0)
	assert.True(t, c.IsEmpty())

	id = c.AddItem(line(uuid.New(), "10.00", 2, "0", "0"))
	c.UpdateQuantity(id, -3)
	assert.True(t, c.IsEmpty())
}

func TestRemoveAndDiscount_UnknownIDIsNoop(t *testing.T) {
	c := New()
	c.AddItem(line(uuid.New(), "10.00", 1, "0", "0"))

	c.RemoveItem(uuid.New())
	c.UpdateDiscount(uuid.New(), dec("50"))
	c.UpdateQuantity(uuid.New(), 9)

	require.Equal(t, 1, c.Len())
	assert.True(t, c.Items()[0].DiscountPct.IsZero())
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestClear(t *testing.T) {
	c := New()
	c.AddItem(line(uuid.New(), "10.00", 1, "0", "0"))
	cust := uuid.New()
	c.SetCustomer(&cust)

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Nil(t, c.CustomerID())
}

func TestDerivedTotals(t *testing.T) {
	c := New()
	// 2 × 50.00, 10% line discount, 5% tax on the post-discount amount.
	c.AddItem(line(uuid.New(), "50.00", 2, "10", "5"))
	// 3 × 20.00, no discount, 21% tax.
	c.AddItem(line(uuid.New(), "20.00", 3, "0", "21"))

	assert.True(t, c.Subtotal().Equal(dec("160.00")), "subtotal %s", c.Subtotal())
	assert.True(t, c.DiscountAmount().Equal(dec("10.00")), "discount %s", c.DiscountAmount())
	// tax = (100-10)*5% + 60*21% = 4.50 + 12.60
	assert.True(t, c.TaxAmount().Equal(dec("17.10")), "tax %s", c.TaxAmount())
	assert.True(t, c.Total().Equal(dec("167.10")), "total %s", c.Total())
}

// Per-line discounts are not a blended rate on the subtotal.
func TestDiscountIsPerLineNotBlended(t *testing.T) {
	c := New()
	c.AddItem(line(uuid.New(), "100.00", 1, "50", "0"))
	c.AddItem(line(uuid.New(), "10.00", 1, "0", "0"))

	assert.True(t, c.DiscountAmount().Equal(dec("50.00")))
	assert.True(t, c.Total().Equal(dec("60.00")))
}

func TestStore(t *testing.T) {
	s := NewStore()
	op := uuid.New()

	c := s.Get(op)
	c.AddItem(line(uuid.New(), "10.00", 1, "0", "0"))

	// Same operator gets the same cart back.
	assert.Equal(t, 1, s.Get(op).Len())
	// A different operator gets an isolated cart.
	assert.True(t, s.Get(uuid.New()).IsEmpty())

	s.Drop(op)
	assert.True(t, s.Get(op).IsEmpty())
}
