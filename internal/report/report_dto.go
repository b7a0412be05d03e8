package report

type Query struct {
	From   string `form:"from"`
	To     string `form:"to"`
	Format string `form:"format"`
}

type ChangeRequestRow struct {
	EmployeeName string `json:"employee_name"`
	Email        string `json:"email"`
	RequestedAt  string `json:"requested_at"`
	ClockInTime  string `json:"clock_in_time"`
	ClockOutTime string `json:"clock_out_time"`
	Note         string `json:"note"`
	Status       string `json:"status"`
}

type AttendanceRow struct {
	EmployeeName  string `json:"employee_name"`
	ClockInTime   string `json:"clock_in_time"`
	ClockOutTime  string `json:"clock_out_time"`
	DurationHours string `json:"duration_hours"`
	Status        string `json:"status"`
}

type TimeOffRow struct {
	EmployeeName string `json:"employee_name"`
	Policy       string `json:"policy"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
}
