package userrole

type UpsertUserRoleRequest struct {
	Email             string `json:"email" binding:"required,email"`
	Role              string `json:"role" binding:"required,oneof=Admin Manager Employee admin manager employee"`
	FullName          string `json:"full_name"`
	ManagerEmail      string `json:"manager_email" binding:"omitempty,email"`
	Department        string `json:"department"`
	AllowedLeaveTypes string `json:"allowed_leave_types"`
}

type UserRoleResponse struct {
	Email             string   `json:"email"`
	Role              string   `json:"role"`
	FullName          string   `json:"full_name,omitempty"`
	ManagerEmail      string   `json:"manager_email,omitempty"`
	Department        string   `json:"department"`
	AllowedLeaveTypes []string `json:"allowed_leave_types"`
	UpdatedAt         string   `json:"updated_at,omitempty"`
}
