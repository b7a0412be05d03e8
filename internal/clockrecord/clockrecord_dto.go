package clockrecord

import "time"

type PunchRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	PIN        string `json:"pin" binding:"required"`
}

type ClockRecordResponse struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employee_id"`
	ClockInTime     time.Time  `json:"clock_in_time"`
	ClockOutTime    *time.Time `json:"clock_out_time,omitempty"`
	DurationMinutes string     `json:"duration_minutes,omitempty"`
	Status          string     `json:"status"`
}

type ActiveClockResponse struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	Name        string    `json:"name"`
	Position    string    `json:"position"`
	ClockInTime time.Time `json:"clock_in_time"`
}

type TimecardResponse struct {
	ID           string     `json:"id"`
	ClockInTime  time.Time  `json:"clock_in_time"`
	ClockOutTime *time.Time `json:"clock_out_time,omitempty"`
	Hours        string     `json:"hours"`
}

type DayResponse struct {
	Date       string             `json:"date"`
	TotalHours string             `json:"total_hours"`
	Timecards  []TimecardResponse `json:"timecards"`
}

type CurrentWeekResponse struct {
	WeekStart          string        `json:"week_start"`
	WeekEnd            string        `json:"week_end"`
	TotalHoursThisWeek string        `json:"total_hours_this_week"`
	TotalPayThisWeek   string        `json:"total_pay_this_week"`
	Days               []DayResponse `json:"days"`
}

type PayWeekResponse struct {
	WeekStart  string `json:"week_start"`
	Period     string `json:"period"`
	TotalHours string `json:"total_hours"`
	TotalPay   string `json:"total_pay"`
}
