package company

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company is the tenant. Its admin credentials live on the same row; the
// admin logs in with Username and receives a tenant token.
type Company struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string         `gorm:"type:varchar(150);not null"`
	Address       string         `gorm:"type:varchar(255);not null"`
	Phone         string         `gorm:"type:varchar(30);not null"`
	Email         string         `gorm:"type:varchar(255);not null;index"`
	AdminName     string         `gorm:"type:varchar(150);not null"`
	AdminPosition string         `gorm:"type:varchar(100);not null"`
	AdminEmail    string         `gorm:"type:varchar(255);not null"`
	AdminPhone    string         `gorm:"type:varchar(30);not null"`
	Username      string         `gorm:"type:varchar(100);not null;uniqueIndex:uq_companies_username"`
	Password      string         `gorm:"type:varchar(255);not null"`
	BusinessType  string         `gorm:"type:varchar(100)"`
	Plan          string         `gorm:"type:varchar(50)"`
	Verified      bool           `gorm:"not null;default:false"`
	CreatedAt     time.Time      `gorm:"not null;default:now()"`
	UpdatedAt     time.Time      `gorm:"not null;default:now()"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Company) TableName() string {
	return "companies"
}
