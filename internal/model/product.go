package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. SellPrice, DiscountPct and TaxRatePct are the
// defaults a new cart line is populated with on add-to-cart; the cart does
// not re-fetch them once the line exists.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Barcode     string    `gorm:"uniqueIndex;not null"`
	Name        string    `gorm:"index;not null"`
	Description *string
	Category    string          `gorm:"not null"`
	CostPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SellPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DiscountPct decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	TaxRatePct  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	StockQty    int             `gorm:"not null;default:0"`
	MinStock    int             `gorm:"not null;default:5"`
	// BatchNo and ExpiryDate carry pharmacy lot tracking
	BatchNo    *string
	ExpiryDate *time.Time
	IsActive   bool `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
