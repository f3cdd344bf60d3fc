package leave

import (
	"time"
)

const (
	StatusPending  = "Pending"
	StatusInReview = "In Review"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Statuses lists every status a request can hold, in workflow order.
var Statuses = []string{StatusPending, StatusInReview, StatusApproved, StatusRejected}

const dateLayout = "2006-01-02"

// LeaveRequest is one employee's request for a date range. Rows are never deleted.
type LeaveRequest struct {
	ID            string `gorm:"type:varchar(40);primaryKey"`
	EmployeeEmail string `gorm:"type:varchar(255);not null;index:idx_leave_requests_employee_dates"`
	EmployeeName  string `gorm:"type:varchar(255)"`
	ManagerEmail  string `gorm:"type:varchar(255);not null;index:idx_leave_requests_manager_status"`
	LeaveType     string `gorm:"type:varchar(100);not null"`

	StartDate time.Time `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	Reason    string    `gorm:"type:text;not null"`

	SubmittedAt    time.Time `gorm:"not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:'Pending';index:idx_leave_requests_manager_status"`
	ManagerComment string    `gorm:"type:text"`
	DecidedAt      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// Decidable reports whether a manager or admin may still change the status.
func (l LeaveRequest) Decidable() bool {
	return l.Status == StatusPending || l.Status == StatusInReview
}

// TotalDays counts both ends of the range.
func (l LeaveRequest) TotalDays() int {
	return daysInclusive(l.StartDate, l.EndDate)
}

func IsValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

func daysInclusive(start, end time.Time) int {
	hours := end.Sub(start).Hours()
	days := int(hours / 24)
	if float64(days*24) < hours {
		days++
	}
	return days + 1
}
