package timeoff

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

type TimeOff struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index:idx_time_offs_company_status"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_time_offs_employee_dates"`

	Policy    string    `gorm:"type:varchar(50);not null"`
	StartDate time.Time `gorm:"type:date;not null;index:idx_time_offs_employee_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_time_offs_employee_dates"`
	TotalDays int       `gorm:"type:int;not null;default:1"`
	Reason    string    `gorm:"type:text"`

	Status    string     `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_time_offs_company_status"`
	DecidedBy *uuid.UUID `gorm:"type:uuid"`
	DecidedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListRow is a request joined with the requesting employee.
type ListRow struct {
	TimeOff
	EmployeeName     string
	EmployeePosition string
}
