package domain

import "strings"

// Role is a team member's permission level inside a tenant.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
	RoleOwner  Role = "owner"
)

// Rank orders roles viewer < editor < admin < owner. Unknown roles rank 0.
func (r Role) Rank() int {
	switch r {
	case RoleViewer:
		return 1
	case RoleEditor:
		return 2
	case RoleAdmin:
		return 3
	case RoleOwner:
		return 4
	default:
		return 0
	}
}

// Authorize reports whether r is allowed to do what required is allowed to do.
func (r Role) Authorize(required Role) bool {
	return r.Rank() > 0 && r.Rank() >= required.Rank()
}

// ParseRole validates a role name.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if r.Rank() == 0 {
		return "", ErrRoleInvalid
	}

	return r, nil
}
