package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Employee struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID         uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:uq_employee_number,priority:1"`
	EmployeeNumber    string          `gorm:"type:varchar(20);not null;uniqueIndex:uq_employee_number,priority:2"`
	Name              string          `gorm:"type:varchar(150);not null"`
	Address           string          `gorm:"type:varchar(255);not null"`
	Email             string          `gorm:"type:varchar(150);not null;uniqueIndex:uq_employee_email"`
	PhoneNumber       string          `gorm:"type:varchar(30);not null;index"`
	Sex               string          `gorm:"type:varchar(20);not null"`
	DOB               time.Time       `gorm:"type:date;not null"`
	PermitType        string          `gorm:"type:varchar(50);not null"`
	SINNumber         string          `gorm:"column:sin_number;type:varchar(30);not null;index"`
	PassportNumber    string          `gorm:"type:varchar(30);not null;index"`
	PIN               string          `gorm:"column:pin;not null"`
	Position          string          `gorm:"type:varchar(100);not null"`
	Password          string          `gorm:"not null"`
	PayRate           decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	PushPlayerID      string          `gorm:"type:varchar(100)"`
	PassportFront     string          `gorm:"type:varchar(255)"`
	PassportBack      string          `gorm:"type:varchar(255)"`
	DirectDepositForm string          `gorm:"type:varchar(255)"`
	StudyOrWorkPermit string          `gorm:"type:varchar(255)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// DirectoryEntry is the colleague view shared with other employees.
type DirectoryEntry struct {
	Name        string `json:"name"`
	Position    string `json:"position"`
	PhoneNumber string `json:"phone_number"`
}

const (
	DocPassportFront     = "passport_front"
	DocPassportBack      = "passport_back"
	DocDirectDepositForm = "direct_deposit_form"
	DocStudyOrWorkPermit = "study_or_work_permit"
)

// DocumentKinds lists the files required at onboarding, in form order.
var DocumentKinds = []string{
	DocPassportFront,
	DocPassportBack,
	DocDirectDepositForm,
	DocStudyOrWorkPermit,
}

func (e *Employee) documentKey(kind string) string {
	switch kind {
	case DocPassportFront:
		return e.PassportFront
	case DocPassportBack:
		return e.PassportBack
	case DocDirectDepositForm:
		return e.DirectDepositForm
	case DocStudyOrWorkPermit:
		return e.StudyOrWorkPermit
	}
	return ""
}

func (e *Employee) setDocumentKey(kind, key string) {
	switch kind {
	case DocPassportFront:
		e.PassportFront = key
	case DocPassportBack:
		e.PassportBack = key
	case DocDirectDepositForm:
		e.DirectDepositForm = key
	case DocStudyOrWorkPermit:
		e.StudyOrWorkPermit = key
	}
}
