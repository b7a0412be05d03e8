package timeoff

import (
	"context"
	"time"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -destination=mock/timeoff_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, t *TimeOff) error
	Update(ctx context.Context, t *TimeOff) error
	FindForUpdate(ctx context.Context, companyID, id string) (*TimeOff, error)
	ListByEmployee(ctx context.Context, companyID, employeeID string) ([]TimeOff, error)
	ListPending(ctx context.Context, companyID string) ([]ListRow, error)
	HasOverlappingPeriod(ctx context.Context, companyID, employeeID string, startDate, endDate time.Time) (bool, error)
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

func (r *repository) Create(ctx context.Context, t *TimeOff) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) Update(ctx context.Context, t *TimeOff) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) FindForUpdate(ctx context.Context, companyID, id string) (*TimeOff, error) {
	var t TimeOff
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) ListByEmployee(ctx context.Context, companyID, employeeID string) ([]TimeOff, error) {
	var rows []TimeOff
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListPending(ctx context.Context, companyID string) ([]ListRow, error) {
	var rows []ListRow
	err := r.db.WithContext(ctx).
		Table("time_offs AS t").
		Select("t.*, e.name AS employee_name, e.position AS employee_position").
		Joins("JOIN employees e ON e.id = t.employee_id").
		Scopes(tenant.ScopeAs("t", companyID)).
		Where("t.status = ?", StatusPending).
		Order("t.start_date DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) HasOverlappingPeriod(ctx context.Context, companyID, employeeID string, startDate, endDate time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&TimeOff{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("status <> ?", StatusCancelled).
		Where("start_date <= ? AND end_date >= ?", endDate, startDate).
		Count(&count).Error
	return count > 0, err
}
