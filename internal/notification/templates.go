package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

const displayDateLayout = "January 2, 2006"

var leaveUpdateTemplate = template.Must(template.New("leave_update").Parse(`
<h2>Leave Request Update</h2>
<p>Leave request {{.LeaveID}} has been <strong>{{.Status}}</strong>.</p>
<h3>Details:</h3>
<ul>
  <li>Leave Type: {{.LeaveType}}</li>
  <li>Start Date: {{.StartDate}}</li>
  <li>End Date: {{.EndDate}}</li>
  <li>Status: {{.Status}}</li>
</ul>
`))

// LeaveUpdate is the data shown in a status change email.
type LeaveUpdate struct {
	LeaveID   string
	Status    string
	LeaveType string
	StartDate time.Time
	EndDate   time.Time
}

// Message is one composed email.
type Message struct {
	Recipient string
	Subject   string
	HTMLBody  string
}

func RenderLeaveUpdate(u LeaveUpdate) (string, error) {
	var buf bytes.Buffer
	err := leaveUpdateTemplate.Execute(&buf, map[string]string{
		"LeaveID":   u.LeaveID,
		"Status":    u.Status,
		"LeaveType": u.LeaveType,
		"StartDate": u.StartDate.Format(displayDateLayout),
		"EndDate":   u.EndDate.Format(displayDateLayout),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ComposeLeaveUpdate builds the employee email and, while the request is
// still pending, the manager's review request.
func ComposeLeaveUpdate(u LeaveUpdate, employeeEmail, managerEmail string, pending bool) ([]Message, error) {
	body, err := RenderLeaveUpdate(u)
	if err != nil {
		return nil, err
	}

	msgs := []Message{{
		Recipient: employeeEmail,
		Subject:   fmt.Sprintf("Leave Request %s - %s", u.Status, u.LeaveID),
		HTMLBody:  body,
	}}
	if pending {
		msgs = append(msgs, Message{
			Recipient: managerEmail,
			Subject:   fmt.Sprintf("New Leave Request to Review - %s", u.LeaveID),
			HTMLBody:  body,
		})
	}
	return msgs, nil
}
