package events

import "time"

const (
	LeaveNotificationRequestedTopic = "leave.notification.requested.v1"
	LeaveNotificationRequestedType  = "leave_notification_requested"
)

// LeaveNotificationRequestedEvent asks the mail consumer to deliver one email.
type LeaveNotificationRequestedEvent struct {
	EventType      string    `json:"event_type"`
	NotificationID string    `json:"notification_id"`
	RequestID      string    `json:"request_id,omitempty"`
	Recipient      string    `json:"recipient"`
	Subject        string    `json:"subject"`
	HTMLBody       string    `json:"html_body"`
	OccurredAt     time.Time `json:"occurred_at"`
}
