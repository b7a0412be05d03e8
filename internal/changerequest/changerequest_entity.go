package changerequest

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type ChangeRequest struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	EmployeeID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClockRecordID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_change_requests_pending_record,where:status = 'pending'"`
	Note          string     `gorm:"type:text;not null"`
	ClockInTime   time.Time  `gorm:"not null"`
	ClockOutTime  time.Time  `gorm:"not null"`
	Status        string     `gorm:"type:varchar(20);not null;index"`
	DecidedBy     *uuid.UUID `gorm:"type:uuid"`
	DecidedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ListRow is a change request joined with its requester.
type ListRow struct {
	ChangeRequest
	EmployeeName  string
	EmployeePhone string
	EmployeeEmail string
}
