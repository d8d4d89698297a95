package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// SaleFilter is bound from the query string of GET /v1/sales.
type SaleFilter struct {
	Date   string `form:"date"` // YYYY-MM-DD; empty = today
	UserID string `form:"user_id" validate:"omitempty,uuid"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type SaleListResponse struct {
	Data  []SaleResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
	TaxRatePct  decimal.Decimal `json:"tax_rate_pct"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type SaleResponse struct {
	ID             string             `json:"id"`
	InvoiceNo      string             `json:"invoice_no"`
	UserID         string             `json:"user_id"`
	OperatorName   string             `json:"operator_name,omitempty"`
	CustomerID     *string            `json:"customer_id"`
	Items          []SaleItemResponse `json:"items"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	Discount       decimal.Decimal    `json:"discount"`
	Tax            decimal.Decimal    `json:"tax"`
	Total          decimal.Decimal    `json:"total"`
	AmountTendered decimal.Decimal    `json:"amount_tendered"`
	Change         decimal.Decimal    `json:"change"`
	PointsRedeemed int64              `json:"points_redeemed"`
	PaymentMethod  string             `json:"payment_method"`
	CreatedAt      string             `json:"created_at"`
}
