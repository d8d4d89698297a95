package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is the persisted record of one completed checkout. Its items are a
// snapshot of the cart at the moment of sale — later catalog edits must not
// retroactively change historical invoices.
// PaymentMethod: "cash" | "card" | "mobile"
type Sale struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InvoiceNo string    `gorm:"uniqueIndex;not null"`
	// UserID is the operator who rang up the sale
	UserID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index"`

	Subtotal decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// DiscountPct is the transaction-level percent; Discount is the combined
	// monetary figure (percent + point redemption), computed once at checkout
	DiscountPct    decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	PointsRedeemed int64           `gorm:"not null;default:0"`
	Discount       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Tax            decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Total          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	AmountTendered decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Change         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	PaymentMethod string `gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time

	Items    []SaleItem `gorm:"foreignKey:SaleID"`
	User     *User      `gorm:"foreignKey:UserID"`
	Customer *Customer  `gorm:"foreignKey:CustomerID"`
}

// SaleItem is one snapshotted cart line. ProductName and the pricing fields
// are copied, not joined, so the invoice survives product edits and deletes.
type SaleItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DiscountPct decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	TaxRatePct  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	// Subtotal = UnitPrice × Quantity, before discounts
	Subtotal decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}
