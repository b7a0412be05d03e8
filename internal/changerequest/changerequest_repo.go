package changerequest

import (
	"context"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -destination=mock/changerequest_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, cr *ChangeRequest) error
	Update(ctx context.Context, cr *ChangeRequest) error
	FindForUpdate(ctx context.Context, companyID, id string) (*ChangeRequest, error)
	HasPending(ctx context.Context, clockRecordID string) (bool, error)
	List(ctx context.Context, companyID, status string) ([]ListRow, error)
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

func (r *repository) Create(ctx context.Context, cr *ChangeRequest) error {
	return r.db.WithContext(ctx).Create(cr).Error
}

func (r *repository) Update(ctx context.Context, cr *ChangeRequest) error {
	return r.db.WithContext(ctx).Save(cr).Error
}

func (r *repository) FindForUpdate(ctx context.Context, companyID, id string) (*ChangeRequest, error) {
	var cr ChangeRequest
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&cr, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cr, nil
}

func (r *repository) HasPending(ctx context.Context, clockRecordID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ChangeRequest{}).
		Where("clock_record_id = ? AND status = ?", clockRecordID, StatusPending).
		Count(&count).Error
	return count > 0, err
}

// List returns the company's requests, newest first. An empty status
// returns every status.
func (r *repository) List(ctx context.Context, companyID, status string) ([]ListRow, error) {
	var rows []ListRow
	q := r.db.WithContext(ctx).
		Table("change_requests AS cr").
		Select("cr.*, e.name AS employee_name, e.phone_number AS employee_phone, e.email AS employee_email").
		Joins("JOIN employees e ON e.id = cr.employee_id").
		Scopes(tenant.ScopeAs("cr", companyID))
	if status != "" {
		q = q.Where("cr.status = ?", status)
	}
	err := q.Order("cr.created_at DESC").Scan(&rows).Error
	return rows, err
}
