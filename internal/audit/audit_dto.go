package audit

type EntryResponse struct {
	ID             string  `json:"id"`
	Timestamp      string  `json:"timestamp"`
	Action         string  `json:"action"`
	ActorEmail     string  `json:"actor_email"`
	Details        string  `json:"details"`
	RelatedLeaveID *string `json:"related_leave_id,omitempty"`
}
