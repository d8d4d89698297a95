package rbac

// Permission is an atomic, named authorizable action. Permissions are defined
// once here and never instantiated per user.
type Permission string

const (
	PermViewDashboard   Permission = "view_dashboard"
	PermCreateSale      Permission = "create_sale"
	PermViewSales       Permission = "view_sales"
	PermViewProducts    Permission = "view_products"
	PermManageProducts  Permission = "manage_products"
	PermViewCustomers   Permission = "view_customers"
	PermManageCustomers Permission = "manage_customers"
	PermViewSuppliers   Permission = "view_suppliers"
	PermManageSuppliers Permission = "manage_suppliers"
	PermViewPurchases   Permission = "view_purchases"
	PermManagePurchases Permission = "manage_purchases"
	PermViewReports     Permission = "view_reports"
	PermManageUsers     Permission = "manage_users"
	PermManageRoles     Permission = "manage_roles"
	PermManageSettings  Permission = "manage_settings"
)

// rolePermissions is the static catalog. Exhaustive over the five roles;
// an unrecognized role simply misses the map and resolves to no rights.
var rolePermissions = map[Role][]Permission{
	RoleSuperAdmin: {
		PermViewDashboard, PermCreateSale, PermViewSales,
		PermViewProducts, PermManageProducts,
		PermViewCustomers, PermManageCustomers,
		PermViewSuppliers, PermManageSuppliers,
		PermViewPurchases, PermManagePurchases,
		PermViewReports, PermManageUsers, PermManageRoles, PermManageSettings,
	},
	RoleAdmin: {
		PermViewDashboard, PermCreateSale, PermViewSales,
		PermViewProducts, PermManageProducts,
		PermViewCustomers, PermManageCustomers,
		PermViewSuppliers, PermManageSuppliers,
		PermViewPurchases, PermManagePurchases,
		PermViewReports, PermManageUsers, PermManageRoles, PermManageSettings,
	},
	RoleManager: {
		PermViewDashboard, PermViewSales,
		PermViewProducts, PermManageProducts,
		PermViewCustomers, PermManageCustomers,
		PermViewSuppliers, PermManageSuppliers,
		PermViewPurchases, PermManagePurchases,
		PermViewReports,
	},
	RolePharmacist: {
		PermViewDashboard, PermCreateSale, PermViewSales,
		PermViewProducts,
		PermViewCustomers, PermManageCustomers,
	},
	RoleCashier: {
		PermCreateSale, PermViewSales,
		PermViewProducts, PermViewCustomers,
	},
}

// permissionIndex is built once for O(1) membership checks.
var permissionIndex = func() map[Role]map[Permission]bool {
	idx := make(map[Role]map[Permission]bool, len(rolePermissions))
	for role, perms := range rolePermissions {
		set := make(map[Permission]bool, len(perms))
		for _, p := range perms {
			set[p] = true
		}
		idx[role] = set
	}
	return idx
}()

// RolePermissions returns the total permission set of a role. The returned
// slice is a copy. Unknown roles yield an empty set, never an error.
func RolePermissions(role Role) []Permission {
	perms := rolePermissions[role]
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// HasPermission reports whether role holds the given permission.
func HasPermission(role Role, p Permission) bool {
	return permissionIndex[role][p]
}

// HasAnyPermission reports whether role holds at least one of perms.
// False for an empty list.
func HasAnyPermission(role Role, perms ...Permission) bool {
	for _, p := range perms {
		if HasPermission(role, p) {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether role holds every one of perms.
// Vacuously true for an empty list.
func HasAllPermissions(role Role, perms ...Permission) bool {
	for _, p := range perms {
		if !HasPermission(role, p) {
			return false
		}
	}
	return true
}
