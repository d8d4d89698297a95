package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer carries the loyalty balance redeemed and accrued at checkout.
// LoyaltyPoints never goes negative: deduction is guarded in the checkout
// transaction, accrual happens asynchronously after the sale commits.
type Customer struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"index;not null"`
	Phone         *string   `gorm:"uniqueIndex"`
	Email         *string
	LoyaltyPoints int64 `gorm:"not null;default:0"`
	IsActive      bool  `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
