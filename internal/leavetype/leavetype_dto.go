package leavetype

type UpsertLeaveTypeRequest struct {
	ID               string   `json:"id" binding:"required,max=20"`
	Name             string   `json:"name" binding:"required,max=100"`
	Description      string   `json:"description"`
	MaxDays          int      `json:"max_days" binding:"required,gt=0"`
	RequiresApproval *bool    `json:"requires_approval"`
	ApplicableRoles  []string `json:"applicable_roles" binding:"dive,oneof=Admin Manager Employee admin manager employee"`
}

type LeaveTypeResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	MaxDays          int      `json:"max_days"`
	RequiresApproval bool     `json:"requires_approval"`
	ApplicableRoles  []string `json:"applicable_roles"`
}
