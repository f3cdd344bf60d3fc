package leavetype

import (
	"time"

	"go-leave/internal/domain"
)

// LeaveType is static reference data managed by admins.
type LeaveType struct {
	ID               string `gorm:"type:varchar(20);primaryKey" json:"id"`
	Name             string `gorm:"type:varchar(100);not null;uniqueIndex:uq_leave_types_name" json:"name"`
	Description      string `gorm:"type:text" json:"description"`
	MaxDays          int    `gorm:"type:int;not null" json:"max_days"`
	RequiresApproval bool   `gorm:"not null;default:true" json:"requires_approval"`
	ApplicableRoles  string `gorm:"type:text" json:"applicable_roles"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (LeaveType) TableName() string {
	return "leave_types"
}

// Valid reports whether the definition has the fields a request form needs.
func (t LeaveType) Valid() bool {
	return t.ID != "" && t.Name != "" && t.MaxDays > 0
}

func (t LeaveType) AppliesTo(role domain.Role) bool {
	for _, r := range domain.SplitList(t.ApplicableRoles) {
		if domain.ParseRole(r) == role && role.Assignable() {
			return true
		}
	}
	return false
}
