package access

import "go-leave/internal/rbac"

// AllowedLeaveType is a leave type definition as offered to one requester.
type AllowedLeaveType struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	MaxDays          int    `json:"max_days"`
	RequiresApproval bool   `json:"requires_approval"`
	Department       string `json:"department"`
}

type RoleResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type PermissionsResponse struct {
	Email       string            `json:"email"`
	Role        string            `json:"role"`
	Permissions []rbac.Permission `json:"permissions"`
}
