package announcement

import (
	"context"
	"time"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/announcement_repo_mock.go -package=mock . Repository
type Repository interface {
	Create(ctx context.Context, a *Announcement) error
	List(ctx context.Context, companyID string, from *time.Time) ([]Announcement, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// List returns announcements by event date ascending, optionally from a day on.
func (r *repository) List(ctx context.Context, companyID string, from *time.Time) ([]Announcement, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if from != nil {
		q = q.Where("event_date >= ?", *from)
	}

	var rows []Announcement
	err := q.Order("event_date ASC, created_at ASC").Find(&rows).Error
	return rows, err
}
