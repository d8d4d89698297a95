package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/cart"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/dto"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/model"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/pricing"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/repository"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CheckoutService turns the operator's live cart plus the ephemeral pricing
// context of one attempt into a persisted, immutable sale.
type CheckoutService interface {
	Checkout(ctx context.Context, operatorID uuid.UUID, req dto.CheckoutRequest) (*dto.CheckoutResponse, error)
}

type checkoutService struct {
	carts      *cart.Store
	sales      repository.SaleRepository
	products   repository.ProductRepository
	customers  repository.CustomerRepository
	dispatcher *worker.Dispatcher
	taxRate    decimal.Decimal
	earnRate   decimal.Decimal
}

func NewCheckoutService(
	carts *cart.Store,
	sales repository.SaleRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	dispatcher *worker.Dispatcher,
	taxRate decimal.Decimal,
	earnRate decimal.Decimal,
) CheckoutService {
	return &checkoutService{
		carts:      carts,
		sales:      sales,
		products:   products,
		customers:  customers,
		dispatcher: dispatcher,
		taxRate:    taxRate,
		earnRate:   earnRate,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// Checkout flow:
//  1. Validate preconditions: non-empty cart, redemption within bounds,
//     tendered >= final total. Any refusal leaves the cart untouched so the
//     operator can correct and retry.
//  2. Compute the totals once through the pricing engine.
//  3. BEGIN TX: create sale + item snapshot, decrement stock, burn redeemed
//     points. COMMIT.
//  4. Clear the cart, enqueue async loyalty accrual.
//
// A persistence failure is surfaced as a recoverable error with the cart
// preserved; the operator re-invokes checkout explicitly, there is no
// implicit retry.
func (s *checkoutService) Checkout(ctx context.Context, operatorID uuid.UUID, req dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	c := s.carts.Get(operatorID)
	if c.IsEmpty() {
		return nil, errors.New("cart is empty")
	}

	subtotal := c.Subtotal()

	var customer *model.Customer
	if id := c.CustomerID(); id != nil {
		cust, err := s.customers.FindByID(ctx, *id)
		if err != nil {
			return nil, errors.New("customer not found")
		}
		customer = cust
	}

	if req.PointsToRedeem > 0 {
		if customer == nil {
			return nil, errors.New("no customer attached to redeem points for")
		}
		maxPts := pricing.MaxRedeemablePoints(subtotal, customer.LoyaltyPoints)
		if req.PointsToRedeem > maxPts {
			return nil, fmt.Errorf("cannot redeem %d points: maximum is %d", req.PointsToRedeem, maxPts)
		}
	}

	b := pricing.Calculate(pricing.Inputs{
		Subtotal:       subtotal,
		LineDiscount:   c.DiscountAmount(),
		DiscountPct:    req.DiscountPct,
		PointsRedeemed: req.PointsToRedeem,
		TaxRatePct:     s.taxRate,
		AmountTendered: req.AmountTendered,
	})

	if req.AmountTendered.LessThan(b.Total) {
		return nil, errors.New("amount tendered is less than the total due")
	}

	// Snapshot the cart lines before touching anything: later catalog edits
	// must not change this invoice.
	items := c.Items()
	sale := model.Sale{
		InvoiceNo:      newInvoiceNo(),
		UserID:         operatorID,
		CustomerID:     c.CustomerID(),
		Subtotal:       subtotal,
		DiscountPct:    req.DiscountPct,
		PointsRedeemed: req.PointsToRedeem,
		Discount:       b.Discount,
		Tax:            b.Tax,
		Total:          b.Total,
		AmountTendered: req.AmountTendered,
		Change:         b.Change,
		PaymentMethod:  req.PaymentMethod,
	}
	for _, it := range items {
		sale.Items = append(sale.Items, model.SaleItem{
			ProductID:   it.ProductID,
			ProductName: it.Name,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			DiscountPct: it.DiscountPct,
			TaxRatePct:  it.TaxRatePct,
			Subtotal:    it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))),
		})
	}

	txErr := runTx(ctx, s.sales.DB(), func(tx *gorm.DB) error {
		if err := s.sales.Create(ctx, tx, &sale); err != nil {
			return err
		}
		for _, it := range items {
			if err := s.products.DecrementStockTx(tx, it.ProductID, it.Quantity); err != nil {
				return fmt.Errorf("decrementing stock of %s: %w", it.Name, err)
			}
		}
		if req.PointsToRedeem > 0 {
			if err := s.customers.DeductPointsTx(tx, customer.ID, req.PointsToRedeem); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		// Cart stays intact for an explicit retry.
		return nil, txErr
	}

	// Async loyalty accrual — best effort, fire & forget.
	if customer != nil && s.dispatcher != nil && s.earnRate.Sign() > 0 {
		earned := b.Total.Div(s.earnRate).Floor().IntPart()
		if earned > 0 {
			payload := worker.LoyaltyJob{
				CustomerID: customer.ID.String(),
				SaleID:     sale.ID.String(),
				Points:     earned,
			}
			if err := s.dispatcher.EnqueueLoyalty(ctx, payload); err != nil {
				log.Warn().Err(err).Str("sale_id", sale.ID.String()).Msg("failed to enqueue loyalty accrual")
			}
		}
	}

	// Reset the register state; the product catalog view is untouched so the
	// operator keeps ringing up customers.
	c.Clear()

	return &dto.CheckoutResponse{
		SaleID:         sale.ID.String(),
		InvoiceNo:      sale.InvoiceNo,
		Subtotal:       sale.Subtotal.Round(2),
		Discount:       sale.Discount.Round(2),
		Tax:            sale.Tax.Round(2),
		Total:          sale.Total.Round(2),
		Change:         sale.Change.Round(2),
		PointsRedeemed: sale.PointsRedeemed,
		PaymentMethod:  sale.PaymentMethod,
		CreatedAt:      sale.CreatedAt.Format(time.RFC3339),
	}, nil
}

// newInvoiceNo generates a timestamp-derived unique token, e.g.
// INV-20260831142501-9F3A2C1B.
func newInvoiceNo() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("INV-%s-%s", time.Now().Format("20060102150405"), suffix)
}
