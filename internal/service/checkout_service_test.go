package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/cart"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/dto"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/model"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/pricing"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/repository"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubSaleRepo is an in-memory SaleRepository for testing.
type stubSaleRepo struct {
	sales   map[uuid.UUID]*model.Sale
	failing bool
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{sales: make(map[uuid.UUID]*model.Sale)}
}

func (r *stubSaleRepo) Create(_ context.Context, _ *gorm.DB, s *model.Sale) error {
	if r.failing {
		return errors.New("connection refused")
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.sales[s.ID] = s
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return s, nil
}

func (r *stubSaleRepo) List(_ context.Context, _ dto.SaleFilter) ([]model.Sale, int64, error) {
	return nil, 0, nil
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

// stubProductRepo keeps a mutable stock map so tests can assert decrements.
type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newStubProductRepo(products ...*model.Product) *stubProductRepo {
	r := &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
	for _, p := range products {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.products[p.ID] = p
	}
	return r
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	p.ID = uuid.New()
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (r *stubProductRepo) FindByBarcode(_ context.Context, barcode string) (*model.Product, error) {
	for _, p := range r.products {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubProductRepo) List(_ context.Context, _ dto.ProductFilter) ([]model.Product, int64, error) {
	return nil, 0, nil
}

func (r *stubProductRepo) Update(_ context.Context, _ *model.Product) error { return nil }
func (r *stubProductRepo) SoftDelete(_ context.Context, _ uuid.UUID) error  { return nil }
func (r *stubProductRepo) Reactivate(_ context.Context, _ uuid.UUID) error  { return nil }

func (r *stubProductRepo) DecrementStockTx(_ *gorm.DB, id uuid.UUID, qty int) error {
	p, ok := r.products[id]
	if !ok {
		return errors.New("not found")
	}
	if p.StockQty < qty {
		return repository.ErrInsufficientStock
	}
	p.StockQty -= qty
	return nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// stubCustomerRepo tracks point burns for assertion.
type stubCustomerRepo struct {
	customers map[uuid.UUID]*model.Customer
}

func newStubCustomerRepo(customers ...*model.Customer) *stubCustomerRepo {
	r := &stubCustomerRepo{customers: make(map[uuid.UUID]*model.Customer)}
	for _, c := range customers {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		r.customers[c.ID] = c
	}
	return r
}

func (r *stubCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	c.ID = uuid.New()
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return c, nil
}

func (r *stubCustomerRepo) List(_ context.Context, _ dto.CustomerFilter) ([]model.Customer, int64, error) {
	return nil, 0, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, _ *model.Customer) error { return nil }
func (r *stubCustomerRepo) SoftDelete(_ context.Context, _ uuid.UUID) error   { return nil }

func (r *stubCustomerRepo) AddPoints(_ context.Context, id uuid.UUID, points int64) error {
	c, ok := r.customers[id]
	if !ok {
		return errors.New("not found")
	}
	c.LoyaltyPoints += points
	return nil
}

func (r *stubCustomerRepo) DeductPointsTx(_ *gorm.DB, id uuid.UUID, points int64) error {
	c, ok := r.customers[id]
	if !ok {
		return errors.New("not found")
	}
	if c.LoyaltyPoints < points {
		return repository.ErrInsufficientPoints
	}
	c.LoyaltyPoints -= points
	return nil
}

var _ repository.CustomerRepository = (*stubCustomerRepo)(nil)

// ── Fixtures ──────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func paracetamol() *model.Product {
	return &model.Product{
		ID:         uuid.New(),
		Barcode:    "779123456001",
		Name:       "Paracetamol 500mg x16",
		Category:   "analgesics",
		SellPrice:  dec("50"),
		TaxRatePct: dec("5"),
		StockQty:   100,
		IsActive:   true,
	}
}

type checkoutFixture struct {
	carts     *cart.Store
	sales     *stubSaleRepo
	products  *stubProductRepo
	customers *stubCustomerRepo
	svc       service.CheckoutService
	operator  uuid.UUID
}

func newCheckoutFixture(t *testing.T, products ...*model.Product) *checkoutFixture {
	t.Helper()
	f := &checkoutFixture{
		carts:     cart.NewStore(),
		sales:     newStubSaleRepo(),
		products:  newStubProductRepo(products...),
		customers: newStubCustomerRepo(),
		operator:  uuid.New(),
	}
	f.svc = service.NewCheckoutService(f.carts, f.sales, f.products, f.customers, nil, dec("5"), dec("10"))
	return f
}

func (f *checkoutFixture) addLine(p *model.Product, qty int) {
	f.carts.Get(f.operator).AddItem(cart.Item{
		ProductID:  p.ID,
		Name:       p.Name,
		UnitPrice:  p.SellPrice,
		Quantity:   qty,
		TaxRatePct: p.TaxRatePct,
	})
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCheckout_EmptyCartRejected(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.svc.Checkout(context.Background(), f.operator, dto.CheckoutRequest{
		AmountTendered: dec("100"),
		PaymentMethod:  "cash",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
	assert.Empty(t, f.sales.sales)
}

func TestCheckout_SuccessPersistsSaleAndClearsCart(t *testing.T) {
	p := paracetamol()
	f := newCheckoutFixture(t, p)
	f.addLine(p, 2) // subtotal 100, tax 5% on 100 -> total 105

	resp, err := f.svc.Checkout(context.Background(), f.operator, dto.CheckoutRequest{
		AmountTendered: dec("110"),
		PaymentMethod:  "cash",
	})
	require.NoError(t, err)

	assert.True(t, dec("100").Equal(resp.Subtotal))
	assert.True(t, dec("105").Equal(resp.Total))
	assert.True(t, dec("5").Equal(resp.Change))
	assert.True(t, strings.HasPrefix(resp.InvoiceNo, "INV-"))

	// One sale persisted with a full item snapshot
	require.Len(t, f.sales.sales, 1)
	saleID := uuid.MustParse(resp.SaleID)
	sale := f.sales.sales[saleID]
	require.Len(t, sale.Items, 1)
	assert.Equal(t, p.Name, sale.Items[0].ProductName)
	assert.Equal(t, 2, sale.Items[0].Quantity)

	// Stock decremented, register reset for the next customer
	assert.Equal(t, 98, p.StockQty)
	assert.True(t, f.carts.Get(f.operator).IsEmpty())
}

func TestCheckout_InsufficientPaymentLeavesCartUntouched(t *testing.T) {
	p := paracetamol()
	f := newCheckoutFixture(t, p)
	f.addLine(p, 2)

	before := f.carts.Get(f.operator).Items()

	_, err := f.svc.Checkout(context.Background(), f.operator, dto.CheckoutRequest{
		AmountTendered: dec("50"), // total due is 105
		PaymentMethod:  "cash",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tendered")

	after := f.carts.Get(f.operator).Items()
	require.Len(t, after, len(before))
	assert.Equal(t, before[0].ID, after[0].ID)
	assert.Equal(t, before[0].Quantity, after[0].Quantity)
	assert.Equal(t, 100, p.StockQty)
	assert.Empty(t, f.sales.sales)
}

func TestCheckout_PersistenceFailurePreservesCart(t *testing.T) {
	p := paracetamol()
	f := newCheckoutFixture(t, p)
	f.addLine(p, 1)
	f.sales.failing = true

	_, err := f.svc.Checkout(context.Background(), f.operator, dto.CheckoutRequest{
		AmountTendered: dec("100"),
		PaymentMethod:  "cash",
	})
	require.Error(t, err)

	// Explicit retry path: cart still holds the line
	c := f.carts.Get(f.operator)
	assert.False(t, c.IsEmpty())
	assert.Equal(t, 1, c.Len())
}

func TestCheckout_InsufficientStockAborts(t *testing.T) {
	p := paracetamol()
	p.StockQty = 1
	f := newCheckoutFixture(t, p)
	f.addLine(p, 3)

	_, err := f.svc.Checkout(context.Background(), f.operator, dto.CheckoutRequest{
		AmountTendered: dec("500"),
		PaymentMethod:  "cash",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrInsufficientStock)
	assert.False(t, f.carts.Get(f.operator).IsEmpty())
}

func TestCheckout_PointsRedemption(t *testing.T) {
	p := paracetamol()
	f := newCheckoutFixture(t, p)
	cust := &model.Customer{Name: "Walk-in Regular", LoyaltyPoints: 500, IsActive: true}
	require.NoError(t, f.customers.Create(context.Background(), cust))

	f.addLine(p, 2) // subtotal 100
	f.carts.Get(f.operator).SetCustomer(&cust.ID)

	// 200 points * 0.10 = 20 off. Discount 20, taxable 80, tax 4, total 84.
	resp, err := f.svc.Checkout(context.Background(), f.operator, dto.CheckoutRequest{
		PointsToRedeem: 200,
		AmountTendered: dec("84"),
		PaymentMethod:  "cash",
	})
	require.NoError(t, err)
	assert.True(t, dec("20").Equal(resp.Discount))
	assert.True(t, dec("84").Equal(resp.Total))

	// Burn is part of the sale transaction
	assert.Equal(t, int64(300), f.customers.customers[cust.ID].LoyaltyPoints)
}

func TestCheckout_PointsBeyondCapRejected(t *testing.T) {
	p := paracetamol()
	f := newCheckoutFixture(t, p)
	cust := &model.Customer{Name: "Walk-in Regular", LoyaltyPoints: 5000, IsActive: true}
	require.NoError(t, f.customers.Create(context.Background(), cust))

	f.addLine(p, 2) // subtotal 100 -> cap is floor(100/0.10) = 1000
	f.carts.Get(f.operator).SetCustomer(&cust.ID)

	_, err := f.svc.Checkout(context.Background(), f.operator, dto.CheckoutRequest{
		PointsToRedeem: 1001,
		AmountTendered: dec("500"),
		PaymentMethod:  "cash",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum is 1000")
	assert.Equal(t, int64(5000), f.customers.customers[cust.ID].LoyaltyPoints)
	assert.False(t, f.carts.Get(f.operator).IsEmpty())
}

func TestCheckout_PointsWithoutCustomerRejected(t *testing.T) {
	p := paracetamol()
	f := newCheckoutFixture(t, p)
	f.addLine(p, 1)

	_, err := f.svc.Checkout(context.Background(), f.operator, dto.CheckoutRequest{
		PointsToRedeem: 10,
		AmountTendered: dec("100"),
		PaymentMethod:  "cash",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no customer")
}

func TestCheckout_SnapshotSurvivesCatalogEdits(t *testing.T) {
	p := paracetamol()
	f := newCheckoutFixture(t, p)
	f.addLine(p, 2)

	resp, err := f.svc.Checkout(context.Background(), f.operator, dto.CheckoutRequest{
		AmountTendered: dec("200"),
		PaymentMethod:  "card",
	})
	require.NoError(t, err)

	// Catalog changes after the sale must not leak into the invoice.
	p.SellPrice = dec("75")
	p.Name = "Paracetamol 500mg x24"

	sale := f.sales.sales[uuid.MustParse(resp.SaleID)]
	assert.Equal(t, "Paracetamol 500mg x16", sale.Items[0].ProductName)
	assert.True(t, dec("50").Equal(sale.Items[0].UnitPrice))
	assert.True(t, dec("100").Equal(sale.Subtotal))
}

func TestCheckout_TotalsRecomputableFromSnapshot(t *testing.T) {
	p := paracetamol()
	f := newCheckoutFixture(t, p)
	cust := &model.Customer{Name: "Walk-in Regular", LoyaltyPoints: 500, IsActive: true}
	require.NoError(t, f.customers.Create(context.Background(), cust))

	c := f.carts.Get(f.operator)
	c.AddItem(cart.Item{
		ProductID:   p.ID,
		Name:        p.Name,
		UnitPrice:   p.SellPrice,
		Quantity:    2,
		DiscountPct: dec("10"),
		TaxRatePct:  p.TaxRatePct,
	})
	c.SetCustomer(&cust.ID)

	resp, err := f.svc.Checkout(context.Background(), f.operator, dto.CheckoutRequest{
		DiscountPct:    dec("5"),
		PointsToRedeem: 50,
		AmountTendered: dec("90"),
		PaymentMethod:  "cash",
	})
	require.NoError(t, err)

	// Rebuild the pricing inputs purely from the persisted sale: running the
	// snapshot back through the calculator must reproduce the stored totals,
	// even though the cart is gone and the catalog may have moved on.
	sale := f.sales.sales[uuid.MustParse(resp.SaleID)]
	subtotal := decimal.Zero
	lineDiscount := decimal.Zero
	for _, it := range sale.Items {
		gross := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		subtotal = subtotal.Add(gross)
		lineDiscount = lineDiscount.Add(gross.Mul(it.DiscountPct).Div(decimal.NewFromInt(100)))
	}
	recomputed := pricing.Calculate(pricing.Inputs{
		Subtotal:       subtotal,
		LineDiscount:   lineDiscount,
		DiscountPct:    sale.DiscountPct,
		PointsRedeemed: sale.PointsRedeemed,
		TaxRatePct:     dec("5"),
		AmountTendered: sale.AmountTendered,
	})

	assert.True(t, sale.Subtotal.Equal(recomputed.Subtotal), "subtotal %s != %s", sale.Subtotal, recomputed.Subtotal)
	assert.True(t, sale.Discount.Equal(recomputed.Discount), "discount %s != %s", sale.Discount, recomputed.Discount)
	assert.True(t, sale.Tax.Equal(recomputed.Tax), "tax %s != %s", sale.Tax, recomputed.Tax)
	assert.True(t, sale.Total.Equal(recomputed.Total), "total %s != %s", sale.Total, recomputed.Total)
	assert.True(t, sale.Change.Equal(recomputed.Change), "change %s != %s", sale.Change, recomputed.Change)

	// Sanity-pin the concrete vector: 100 gross, 10 line + 5 pct + 5 points
	// discount, 5% tax on 80.
	assert.True(t, dec("20").Equal(sale.Discount))
	assert.True(t, dec("84").Equal(sale.Total))
	assert.True(t, dec("6").Equal(sale.Change))
}

func TestCheckout_InvoiceNumbersAreUnique(t *testing.T) {
	p := paracetamol()
	f := newCheckoutFixture(t, p)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		f.addLine(p, 1)
		resp, err := f.svc.Checkout(context.Background(), f.operator, dto.CheckoutRequest{
			AmountTendered: dec("100"),
			PaymentMethod:  "cash",
		})
		require.NoError(t, err)
		assert.False(t, seen[resp.InvoiceNo], "duplicate invoice %s", resp.InvoiceNo)
		seen[resp.InvoiceNo] = true
	}
}
