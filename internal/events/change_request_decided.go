package events

import "time"

const (
	ChangeRequestDecidedTopic     = "hr.timecard.change_request.decided.v1"
	EventTypeChangeRequestDecided = "change_request_decided"
)

type ChangeRequestDecidedEvent struct {
	EventType       string     `json:"event_type"`
	RequestID       string     `json:"request_id,omitempty"`
	ChangeRequestID string     `json:"change_request_id"`
	ClockRecordID   string     `json:"clock_record_id"`
	CompanyID       string     `json:"company_id"`
	EmployeeID      string     `json:"employee_id"`
	Status          string     `json:"status"`
	ClockInTime     *time.Time `json:"clock_in_time,omitempty"`
	ClockOutTime    *time.Time `json:"clock_out_time,omitempty"`
	DecidedBy       string     `json:"decided_by"`
	OccurredAt      time.Time  `json:"occurred_at"`
}
