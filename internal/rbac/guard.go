package rbac

// Guard answers permission queries for one resolved caller. It is a pure
// read path over the static catalog: no mutable state, safe to share and to
// call concurrently from any number of request handlers.
//
// Resolution is fail-closed: no authenticated user, an inactive account or a
// role string outside the closed set all resolve to cashier, the lowest
// privilege role. Callers must deny by default and allow only when a
// predicate returns true.
type Guard struct {
	role Role
}

// GuardFor resolves the effective role of an authenticated user.
func GuardFor(role Role, active bool) Guard {
	if !active || !role.Valid() {
		return Guard{role: RoleCashier}
	}
	return Guard{role: role}
}

// NoUser is the guard for unauthenticated callers.
func NoUser() Guard { return Guard{role: RoleCashier} }

// Role returns the effective role the guard resolved.
func (g Guard) Role() Role { return g.role }

// Can reports whether the caller holds p.
func (g Guard) Can(p Permission) bool { return HasPermission(g.role, p) }

// CanAny reports whether the caller holds at least one of perms.
func (g Guard) CanAny(perms ...Permission) bool { return HasAnyPermission(g.role, perms...) }

// CanAll reports whether the caller holds every one of perms.
func (g Guard) CanAll(perms ...Permission) bool { return HasAllPermissions(g.role, perms...) }
