package employee

import (
	"context"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/employee_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Employee, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	FindDuplicate(ctx context.Context, email, phone, sin, passport string) (*Employee, error)
	FindDirectory(ctx context.Context, companyID string) ([]DirectoryEntry, error)
	Update(ctx context.Context, empl *Employee) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("employee_number ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var empl Employee
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&empl).Error; err != nil {
		return nil, err
	}
	return &empl, nil
}

// FindDuplicate returns the first employee sharing any of the identity
// fields, or gorm.ErrRecordNotFound.
func (r *repository) FindDuplicate(ctx context.Context, email, phone, sin, passport string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Where("email = ? OR phone_number = ? OR sin_number = ? OR passport_number = ?", email, phone, sin, passport).
		First(&empl).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindDirectory(ctx context.Context, companyID string) ([]DirectoryEntry, error) {
	var entries []DirectoryEntry
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(companyID)).
		Select("name", "position", "phone_number").
		Order("name ASC").
		Scan(&entries).Error
	return entries, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}
