package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateUserRequest struct {
	Username string  `json:"username"  validate:"required,min=1,max=150"`
	FullName string  `json:"full_name" validate:"required,min=2,max=100"`
	Email    *string `json:"email"     validate:"omitempty,email"`
	Password string  `json:"password"  validate:"required,min=8"`
	Role     string  `json:"role"      validate:"required,oneof=super_admin admin manager pharmacist cashier"`
}

type UpdateUserRequest struct {
	FullName string  `json:"full_name" validate:"omitempty,min=2,max=100"`
	Email    *string `json:"email"     validate:"omitempty,email"`
	Role     string  `json:"role"      validate:"omitempty,oneof=super_admin admin manager pharmacist cashier"`
	Password string  `json:"password"  validate:"omitempty,min=8"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UserResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	FullName string  `json:"full_name"`
	Email    *string `json:"email"`
	Role     string  `json:"role"`
	IsActive bool    `json:"is_active"`
}

// RoleResponse describes one assignable role for role pickers. The list a
// caller receives is derived from the role hierarchy, never the full
// enumeration.
type RoleResponse struct {
	Role        string `json:"role"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
