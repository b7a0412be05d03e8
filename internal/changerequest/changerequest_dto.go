package changerequest

import "time"

type CreateChangeRequestRequest struct {
	ClockRecordID string     `json:"clock_record_id" binding:"required,uuid"`
	Note          string     `json:"note" binding:"required"`
	ClockInTime   *time.Time `json:"clock_in_time"`
	ClockOutTime  *time.Time `json:"clock_out_time"`
}

type DecideChangeRequestRequest struct {
	Status          string     `json:"status" binding:"required,oneof=approved rejected"`
	NewClockInTime  *time.Time `json:"new_clock_in_time"`
	NewClockOutTime *time.Time `json:"new_clock_out_time"`
}

type ChangeRequestResponse struct {
	ID            string     `json:"id"`
	ClockRecordID string     `json:"clock_record_id"`
	EmployeeID    string     `json:"employee_id"`
	EmployeeName  string     `json:"employee_name,omitempty"`
	PhoneNumber   string     `json:"phone_number,omitempty"`
	Email         string     `json:"email,omitempty"`
	RequestedAt   time.Time  `json:"requested_at"`
	ClockInTime   time.Time  `json:"clock_in_time"`
	ClockOutTime  time.Time  `json:"clock_out_time"`
	Note          string     `json:"note"`
	Status        string     `json:"status"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
}
