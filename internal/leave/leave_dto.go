package leave

// SubmitLeaveRequest fields are checked by the service, in a fixed order,
// so no binding rules are declared here.
type SubmitLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

type DecideLeaveRequest struct {
	Decision string `json:"decision"`
	Comment  string `json:"comment"`
}

type SubmitResult struct {
	Success bool          `json:"success"`
	LeaveID string        `json:"leave_id"`
	Message string        `json:"message"`
	Request LeaveResponse `json:"request"`
}

type DecisionResult struct {
	Success bool   `json:"success"`
	LeaveID string `json:"leave_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type LeaveResponse struct {
	ID             string  `json:"id"`
	EmployeeEmail  string  `json:"employee_email"`
	EmployeeName   string  `json:"employee_name"`
	ManagerEmail   string  `json:"manager_email"`
	LeaveType      string  `json:"leave_type"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	TotalDays      int     `json:"total_days"`
	Reason         string  `json:"reason"`
	SubmittedAt    string  `json:"submitted_at"`
	Status         string  `json:"status"`
	ManagerComment string  `json:"manager_comment"`
	DecidedAt      *string `json:"decided_at,omitempty"`
}
