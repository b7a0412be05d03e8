package events

import "time"

const (
	TimeOffDecidedTopic     = "hr.time_off.decided.v1"
	EventTypeTimeOffDecided = "time_off_decided"
)

type TimeOffDecidedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	TimeOffID  string    `json:"time_off_id"`
	CompanyID  string    `json:"company_id"`
	EmployeeID string    `json:"employee_id"`
	Policy     string    `json:"policy"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Status     string    `json:"status"`
	DecidedBy  string    `json:"decided_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
