package rbac

// CanManageRole reports whether manager may create, edit or assign accounts
// holding target:
//   - super_admin manages every role, including admin and other super_admin
//     accounts.
//   - admin manages every role EXCEPT super_admin and admin — no lateral or
//     upward control, which is what blocks privilege escalation.
//   - every other role manages no one.
func CanManageRole(manager, target Role) bool {
	if !manager.Valid() || !target.Valid() {
		return false
	}
	switch manager {
	case RoleSuperAdmin:
		return true
	case RoleAdmin:
		return target != RoleSuperAdmin && target != RoleAdmin
	default:
		return false
	}
}

// CanCreateUserWithRole reports whether creator may create a new account
// holding newRole.
func CanCreateUserWithRole(creator, newRole Role) bool {
	return CanManageRole(creator, newRole)
}

// CanChangeUserRole reports whether manager may move a user from current to
// proposed. Both sides are checked independently: touching a role you cannot
// manage and granting a role you cannot assign are each sufficient to refuse.
func CanChangeUserRole(manager, current, proposed Role) bool {
	return CanManageRole(manager, current) && CanManageRole(manager, proposed)
}

// AssignableRoles is the sole source of truth for what a role picker may
// offer. Returned in descending rank order; empty for roles with no
// management rights. UI and API must never fall back to AllRoles here.
func AssignableRoles(role Role) []Role {
	var out []Role
	for _, r := range AllRoles() {
		if CanManageRole(role, r) {
			out = append(out, r)
		}
	}
	return out
}
