package clockrecord

import (
	"context"
	"time"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -destination=mock/clockrecord_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, rec *ClockRecord) error
	Update(ctx context.Context, rec *ClockRecord) error
	FindActive(ctx context.Context, companyID, employeeID string) (*ClockRecord, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*ClockRecord, error)
	ListByEmployee(ctx context.Context, companyID, employeeID string) ([]ClockRecord, error)
	ListByEmployeeBetween(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]ClockRecord, error)
	ListActive(ctx context.Context, companyID string) ([]ActiveRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, rec *ClockRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) Update(ctx context.Context, rec *ClockRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// FindActive locks the open record so a concurrent clock-out waits.
func (r *repository) FindActive(ctx context.Context, companyID, employeeID string) (*ClockRecord, error) {
	var rec ClockRecord
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ? AND status = ?", employeeID, StatusClockedIn).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*ClockRecord, error) {
	var rec ClockRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&rec, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) ListByEmployee(ctx context.Context, companyID, employeeID string) ([]ClockRecord, error) {
	var rows []ClockRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("clock_in_time ASC").
		Find(&rows).Error
	return rows, err
}

// ListByEmployeeBetween returns records with clock-in in [from, to).
func (r *repository) ListByEmployeeBetween(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]ClockRecord, error) {
	var rows []ClockRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("clock_in_time >= ? AND clock_in_time < ?", from, to).
		Order("clock_in_time ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListActive(ctx context.Context, companyID string) ([]ActiveRow, error) {
	var rows []ActiveRow
	err := r.db.WithContext(ctx).
		Table("clock_records AS cr").
		Select("cr.id, cr.employee_id, e.name, e.position, cr.clock_in_time").
		Joins("JOIN employees e ON e.id = cr.employee_id AND e.deleted_at IS NULL").
		Scopes(tenant.ScopeAs("cr", companyID)).
		Where("cr.status = ?", StatusClockedIn).
		Order("cr.clock_in_time ASC").
		Scan(&rows).Error
	return rows, err
}
