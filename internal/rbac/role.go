// Package rbac implements the role-based access control model: a static
// permission catalog per role, a strict role hierarchy for user management,
// and the read-only guard the HTTP layer gates routes with.
package rbac

// Role is one of the five fixed operator classes.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RolePharmacist Role = "pharmacist"
	RoleCashier    Role = "cashier"
)

// roleRank orders roles for hierarchy comparisons only. It carries no
// permission semantics — the catalog in permission.go does that.
var roleRank = map[Role]int{
	RoleSuperAdmin: 5,
	RoleAdmin:      4,
	RoleManager:    3,
	RolePharmacist: 2,
	RoleCashier:    1,
}

// RoleInfo is display metadata for role pickers and audit logs.
// It has no authorization meaning.
type RoleInfo struct {
	Name        string
	Description string
}

var roleInfo = map[Role]RoleInfo{
	RoleSuperAdmin: {Name: "Super Admin", Description: "Full system access, including other admin accounts"},
	RoleAdmin:      {Name: "Admin", Description: "Store administration and staff management"},
	RoleManager:    {Name: "Manager", Description: "Catalog, purchasing and reporting"},
	RolePharmacist: {Name: "Pharmacist", Description: "Dispensing and customer records"},
	RoleCashier:    {Name: "Cashier", Description: "Register sales only"},
}

// AllRoles returns every role ordered by descending rank.
func AllRoles() []Role {
	return []Role{RoleSuperAdmin, RoleAdmin, RoleManager, RolePharmacist, RoleCashier}
}

// ParseRole maps a stored role string onto the closed Role set.
// Unknown strings report ok=false; callers fall back to least privilege.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	_, ok := roleRank[r]
	return r, ok
}

// Valid reports whether r is one of the five defined roles.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// Rank returns the hierarchy rank (5 = super_admin … 1 = cashier).
// Unknown roles rank 0, below every real role.
func (r Role) Rank() int { return roleRank[r] }

// Info returns the display metadata for r.
func (r Role) Info() RoleInfo { return roleInfo[r] }
