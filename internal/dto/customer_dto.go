package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateCustomerRequest struct {
	Name  string  `json:"name"  validate:"required,min=1,max=150"`
	Phone *string `json:"phone" validate:"omitempty,min=5,max=30"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type UpdateCustomerRequest struct {
	Name  string  `json:"name"  validate:"omitempty,min=1,max=150"`
	Phone *string `json:"phone" validate:"omitempty,min=5,max=30"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CustomerResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	LoyaltyPoints int64   `json:"loyalty_points"`
	IsActive      bool    `json:"is_active"`
}

type CustomerListResponse struct {
	Data  []CustomerResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// CustomerFilter is bound from the query string of GET /v1/customers.
type CustomerFilter struct {
	Search string `form:"search"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}
