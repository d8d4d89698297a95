package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"   validate:"required,min=1"`
}

// UpdateQuantityRequest carries the exact new quantity. Zero or negative is
// accepted and removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type UpdateDiscountRequest struct {
	DiscountPct decimal.Decimal `json:"discount_pct" validate:"min=0,max=100"`
}

// SetCustomerRequest with a nil customer_id detaches the customer.
type SetCustomerRequest struct {
	CustomerID *string `json:"customer_id" validate:"omitempty,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CartItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
	TaxRatePct  decimal.Decimal `json:"tax_rate_pct"`
}

// CartResponse totals are rounded to 2 decimals here, at the presentation
// boundary — the cart itself carries exact values.
type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	CustomerID *string            `json:"customer_id"`
	Subtotal   decimal.Decimal    `json:"subtotal"`
	Discount   decimal.Decimal    `json:"discount"`
	Tax        decimal.Decimal    `json:"tax"`
	Total      decimal.Decimal    `json:"total"`
}
