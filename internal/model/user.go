package model

import (
	"time"

	"github.com/google/uuid"
)

// User stores system operators with role-based access.
// Role holds one of the rbac.Role values:
// "super_admin" | "admin" | "manager" | "pharmacist" | "cashier"
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	FullName     string    `gorm:"not null"`
	Email        *string
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(20);not null"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
