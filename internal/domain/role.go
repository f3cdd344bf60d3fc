package domain

import "strings"

// Role is the normalized (lower-case) role of an identity.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"

	// RoleUnknown means the identity has no role assignment.
	RoleUnknown Role = "unknown"
	// RoleError means the role could not be resolved; never treat it as authorized.
	RoleError Role = "error"
)

// ParseRole normalizes stored or user supplied role names ("Manager", " admin ").
// Anything that is not an assignable role becomes RoleUnknown.
func ParseRole(s string) Role {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return r
	default:
		return RoleUnknown
	}
}

func (r Role) String() string {
	return string(r)
}

// Assignable reports whether r can be stored on a user role entry.
func (r Role) Assignable() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleEmployee
}

// CanDecide reports whether r may approve or reject leave requests.
func (r Role) CanDecide() bool {
	return r == RoleAdmin || r == RoleManager
}

// Display returns the capitalized form used in audit details ("Manager").
func (r Role) Display() string {
	if r == "" {
		return ""
	}
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}

// SplitList splits a comma separated cell ("SL, VAC,PL") into trimmed, non-empty items.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

type EnforceRequest struct {
	Role     Role   `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
