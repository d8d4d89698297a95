package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// ProductFilter is bound from the query string of GET /v1/products.
type ProductFilter struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Barcode     string          `json:"barcode"      validate:"required,min=1"`
	Name        string          `json:"name"         validate:"required,min=1,max=200"`
	Description *string         `json:"description"`
	Category    string          `json:"category"     validate:"required,min=1"`
	CostPrice   decimal.Decimal `json:"cost_price"   validate:"min=0"`
	SellPrice   decimal.Decimal `json:"sell_price"   validate:"min=0"`
	DiscountPct decimal.Decimal `json:"discount_pct" validate:"min=0,max=100"`
	TaxRatePct  decimal.Decimal `json:"tax_rate_pct" validate:"min=0"`
	StockQty    int             `json:"stock_qty"    validate:"min=0"`
	MinStock    int             `json:"min_stock"    validate:"min=0"`
	BatchNo     *string         `json:"batch_no"`
	ExpiryDate  *string         `json:"expiry_date"  validate:"omitempty,datetime=2006-01-02"`
}

type UpdateProductRequest struct {
	Name        string           `json:"name"         validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Category    string           `json:"category"     validate:"omitempty,min=1"`
	CostPrice   *decimal.Decimal `json:"cost_price"`
	SellPrice   *decimal.Decimal `json:"sell_price"`
	DiscountPct *decimal.Decimal `json:"discount_pct"`
	TaxRatePct  *decimal.Decimal `json:"tax_rate_pct"`
	StockQty    *int             `json:"stock_qty"`
	MinStock    *int             `json:"min_stock"`
	BatchNo     *string          `json:"batch_no"`
	ExpiryDate  *string          `json:"expiry_date"  validate:"omitempty,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID          string          `json:"id"`
	Barcode     string          `json:"barcode"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Category    string          `json:"category"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	SellPrice   decimal.Decimal `json:"sell_price"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
	TaxRatePct  decimal.Decimal `json:"tax_rate_pct"`
	StockQty    int             `json:"stock_qty"`
	MinStock    int             `json:"min_stock"`
	BatchNo     *string         `json:"batch_no"`
	ExpiryDate  *string         `json:"expiry_date"`
	IsActive    bool            `json:"is_active"`
}

// PriceCheckResponse is the public, cacheable price lookup payload.
type PriceCheckResponse struct {
	Name       string          `json:"name"`
	SellPrice  decimal.Decimal `json:"sell_price"`
	TaxRatePct decimal.Decimal `json:"tax_rate_pct"`
	InStock    bool            `json:"in_stock"`
	Category   string          `json:"category"`
}
