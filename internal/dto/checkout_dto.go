package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CheckoutRequest carries the ephemeral pricing context of one checkout
// attempt. None of it is stored on the cart.
type CheckoutRequest struct {
	DiscountPct    decimal.Decimal `json:"discount_pct"     validate:"min=0,max=100"`
	PointsToRedeem int64           `json:"points_to_redeem" validate:"min=0"`
	AmountTendered decimal.Decimal `json:"amount_tendered"  validate:"required"`
	PaymentMethod  string          `json:"payment_method"   validate:"required,oneof=cash card mobile"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CheckoutResponse struct {
	SaleID         string          `json:"sale_id"`
	InvoiceNo      string          `json:"invoice_no"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Discount       decimal.Decimal `json:"discount"`
	Tax            decimal.Decimal `json:"tax"`
	Total          decimal.Decimal `json:"total"`
	Change         decimal.Decimal `json:"change"`
	PointsRedeemed int64           `json:"points_redeemed"`
	PaymentMethod  string          `json:"payment_method"`
	CreatedAt      string          `json:"created_at"`
}
