// Package pricing turns a cart subtotal plus the transaction-level inputs of
// one checkout attempt into a finalized totals breakdown. It is pure
// arithmetic over in-memory values: no I/O, no shared state.
package pricing

import "github.com/shopspring/decimal"

// PointValue is the fixed monetary value of one loyalty point.
var PointValue = decimal.RequireFromString("0.10")

var hundred = decimal.NewFromInt(100)

// Inputs are the ephemeral values of a single checkout attempt. They are not
// part of the cart and are discarded once the attempt completes or is
// abandoned.
type Inputs struct {
	Subtotal decimal.Decimal
	// LineDiscount is the cart aggregate's per-line discount total. It is
	// additive with the transaction-level mechanisms below and is folded in
	// here exactly once, so every surface shows the same combined figure.
	LineDiscount   decimal.Decimal
	DiscountPct    decimal.Decimal // transaction-level, 0–100
	PointsRedeemed int64
	TaxRatePct     decimal.Decimal // store-wide rate
	AmountTendered decimal.Decimal
}

// Breakdown is the finalized result. Values are exact decimals; rounding
// happens only at the presentation boundary so no error compounds across
// subtotal, discount, tax and total.
type Breakdown struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal // percent discount + point redemption, computed once
	Taxable  decimal.Decimal // floored at zero
	Tax      decimal.Decimal
	Total    decimal.Decimal
	Change   decimal.Decimal
}

// MaxRedeemablePoints bounds a redemption by both the customer's balance and
// the value of the cart itself, so points alone can never push the payable
// amount negative.
func MaxRedeemablePoints(subtotal decimal.Decimal, available int64) int64 {
	if available <= 0 || subtotal.Sign() <= 0 {
		return 0
	}
	byCart := subtotal.Div(PointValue).Floor().IntPart()
	if available < byCart {
		return available
	}
	return byCart
}

// Calculate produces the totals breakdown:
//
//	discount = lineDiscount + subtotal × pct/100 + points × PointValue
//	taxable  = max(0, subtotal − discount)
//	tax      = taxable × rate/100
//	total    = subtotal − discount + tax
//	change   = max(0, tendered − total)
//
// The taxable amount is floored at zero so an over-discounted cart cannot
// invert the sign of the tax. Validating that the redemption stays within
// MaxRedeemablePoints is the caller's responsibility.
func Calculate(in Inputs) Breakdown {
	pctDiscount := in.Subtotal.Mul(in.DiscountPct).Div(hundred)
	pointDiscount := decimal.NewFromInt(in.PointsRedeemed).Mul(PointValue)
	discount := in.LineDiscount.Add(pctDiscount).Add(pointDiscount)

	taxable := in.Subtotal.Sub(discount)
	if taxable.Sign() < 0 {
		taxable = decimal.Zero
	}
	tax := taxable.Mul(in.TaxRatePct).Div(hundred)
	total := in.Subtotal.Sub(discount).Add(tax)

	change := in.AmountTendered.Sub(total)
	if change.Sign() < 0 {
		change = decimal.Zero
	}

	return Breakdown{
		Subtotal: in.Subtotal,
		Discount: discount,
		Taxable:  taxable,
		Tax:      tax,
		Total:    total,
		Change:   change,
	}
}
