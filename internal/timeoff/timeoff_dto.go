package timeoff

type CreateTimeOffRequest struct {
	Policy    string `json:"policy" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=APPROVED REJECTED CANCELLED"`
}

type TimeOffResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     string  `json:"employee_name,omitempty"`
	EmployeePosition string  `json:"employee_position,omitempty"`
	Policy           string  `json:"policy"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	TotalDays        int     `json:"total_days"`
	Reason           string  `json:"reason,omitempty"`
	Status           string  `json:"status"`
	DecidedAt        *string `json:"decided_at,omitempty"`
}
