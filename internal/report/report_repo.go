package report

import (
	"context"
	"time"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/tenant"

	"gorm.io/gorm"
)

type ChangeRequestRecord struct {
	EmployeeName  string
	EmployeeEmail string
	CreatedAt     time.Time
	ClockInTime   time.Time
	ClockOutTime  time.Time
	Note          string
	Status        string
}

type AttendanceRecord struct {
	EmployeeName    string
	ClockInTime     time.Time
	ClockOutTime    *time.Time
	DurationSeconds *int64
	Status          string
}

type TimeOffRecord struct {
	EmployeeName string
	Policy       string
	StartDate    time.Time
	EndDate      time.Time
	Reason       string
	Status       string
}

// Range is a half-open [From, To) window; zero values leave a side open.
type Range struct {
	From time.Time
	To   time.Time
}

//go:generate mockgen -destination=mock/report_repo_mock.go -package=mock . Repository
type Repository interface {
	ChangeRequests(ctx context.Context, companyID string, rng Range) ([]ChangeRequestRecord, error)
	Attendance(ctx context.Context, companyID string, rng Range) ([]AttendanceRecord, error)
	TimeOff(ctx context.Context, companyID string, rng Range) ([]TimeOffRecord, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func withRange(column string, rng Range) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !rng.From.IsZero() {
			db = db.Where(column+" >= ?", rng.From)
		}
		if !rng.To.IsZero() {
			db = db.Where(column+" < ?", rng.To)
		}
		return db
	}
}

func (r *repository) ChangeRequests(ctx context.Context, companyID string, rng Range) ([]ChangeRequestRecord, error) {
	var rows []ChangeRequestRecord
	err := r.db.WithContext(ctx).
		Table("change_requests AS cr").
		Select("e.name AS employee_name, e.email AS employee_email, cr.created_at, cr.clock_in_time, cr.clock_out_time, cr.note, cr.status").
		Joins("JOIN employees e ON e.id = cr.employee_id").
		Scopes(tenant.ScopeAs("cr", companyID)).
		Scopes(withRange("cr.created_at", rng)).
		Order("cr.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) Attendance(ctx context.Context, companyID string, rng Range) ([]AttendanceRecord, error) {
	var rows []AttendanceRecord
	err := r.db.WithContext(ctx).
		Table("clock_records AS c").
		Select("e.name AS employee_name, c.clock_in_time, c.clock_out_time, c.duration_seconds, c.status").
		Joins("JOIN employees e ON e.id = c.employee_id").
		Scopes(tenant.ScopeAs("c", companyID)).
		Scopes(withRange("c.clock_in_time", rng)).
		Order("c.clock_in_time DESC").
		Scan(&rows).Error
	return rows, err
}

// TimeOff returns requests overlapping the range.
func (r *repository) TimeOff(ctx context.Context, companyID string, rng Range) ([]TimeOffRecord, error) {
	q := r.db.WithContext(ctx).
		Table("time_offs AS t").
		Select("e.name AS employee_name, t.policy, t.start_date, t.end_date, t.reason, t.status").
		Joins("JOIN employees e ON e.id = t.employee_id").
		Scopes(tenant.ScopeAs("t", companyID))
	if !rng.From.IsZero() {
		q = q.Where("t.end_date >= ?", rng.From)
	}
	if !rng.To.IsZero() {
		q = q.Where("t.start_date < ?", rng.To)
	}

	var rows []TimeOffRecord
	err := q.Order("t.start_date DESC").Scan(&rows).Error
	return rows, err
}
