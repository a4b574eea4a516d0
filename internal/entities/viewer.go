package entities

import "strings"

// Viewer is the externally supplied viewing context: who is looking at the
// worklist and from which branch. BranchID may be empty for admins viewing
// everything.
type Viewer struct {
	Role     Role
	BranchID string
	Name     string
}

func (v Viewer) IsAdmin() bool {
	return v.Role == RoleAdmin
}

// CanOperate reports whether the viewer may drive inquiry transitions.
func (v Viewer) CanOperate() bool {
	return v.Role == RoleAdmin || v.Role == RoleOperator
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
	RoleBranch   Role = "branch"
)

func (r Role) String() string {
	return string(r)
}

// ParseRole normalizes the free-form role strings the surrounding
// application supplies ("Admin", "admin", "Operator", ...). Anything
// unrecognized is a plain branch user.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin
	case "operator":
		return RoleOperator
	default:
		return RoleBranch
	}
}
