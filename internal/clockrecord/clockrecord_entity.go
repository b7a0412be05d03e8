package clockrecord

import (
	"time"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/payweek"

	"github.com/google/uuid"
)

const (
	StatusClockedIn  = "clocked-in"
	StatusClockedOut = "clocked-out"
)

type ClockRecord struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	EmployeeID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_clock_records_employee_clock_in,priority:1;uniqueIndex:uq_clock_records_active_employee,where:status = 'clocked-in'"`
	ClockInTime     time.Time  `gorm:"not null;index:idx_clock_records_employee_clock_in,priority:2"`
	ClockOutTime    *time.Time
	DurationSeconds *int64     `gorm:"type:bigint"`
	Status          string     `gorm:"type:varchar(20);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Close ends the shift at out and stores its length in whole seconds.
func (r *ClockRecord) Close(out time.Time) {
	out = out.UTC()
	seconds := payweek.DurationSeconds(r.ClockInTime, out)
	r.ClockOutTime = &out
	r.DurationSeconds = &seconds
	r.Status = StatusClockedOut
}

// Amend replaces both punches, as done when a change request is approved.
func (r *ClockRecord) Amend(in, out time.Time) {
	r.ClockInTime = in.UTC()
	r.Close(out)
}

// ActiveRow is a clocked-in record joined with the employee it belongs to.
type ActiveRow struct {
	ID          uuid.UUID
	EmployeeID  uuid.UUID
	Name        string
	Position    string
	ClockInTime time.Time
}

func toEngineRecords(rows []ClockRecord) []payweek.Record {
	out := make([]payweek.Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, payweek.Record{
			ID:              r.ID.String(),
			ClockIn:         r.ClockInTime,
			ClockOut:        r.ClockOutTime,
			DurationSeconds: r.DurationSeconds,
		})
	}
	return out
}
