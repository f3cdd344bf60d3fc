package userrole

import (
	"strings"
	"time"

	"go-leave/internal/domain"
)

// AllLeaveTypes in AllowedLeaveTypes grants every leave type.
const AllLeaveTypes = "ALL"

// UserRole assigns a role, manager and leave type allowance to an email.
// Rows are overwritten by admins, never deleted.
type UserRole struct {
	Email             string `gorm:"type:varchar(255);primaryKey"`
	Role              string `gorm:"type:varchar(20);not null"`
	FullName          string `gorm:"type:varchar(255)"`
	ManagerEmail      string `gorm:"type:varchar(255);index:idx_user_roles_manager"`
	Department        string `gorm:"type:varchar(100)"`
	AllowedLeaveTypes string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserRole) TableName() string {
	return "user_roles"
}

func (u UserRole) NormalizedRole() domain.Role {
	return domain.ParseRole(u.Role)
}

func (u UserRole) AllowedLeaveTypeIDs() []string {
	return domain.SplitList(u.AllowedLeaveTypes)
}

// AllowsLeaveType reports whether id is explicitly allowed, or allowed through the ALL sentinel.
func (u UserRole) AllowsLeaveType(id string) bool {
	for _, allowed := range u.AllowedLeaveTypeIDs() {
		if strings.EqualFold(allowed, AllLeaveTypes) || allowed == id {
			return true
		}
	}
	return false
}

// DisplayName is the name written onto leave requests.
func (u UserRole) DisplayName() string {
	if name := strings.TrimSpace(u.FullName); name != "" {
		return name
	}
	return u.Email
}
