package employee

import (
	"io"
	"time"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/auth"
)

type CreateEmployeeRequest struct {
	Name           string `form:"name" binding:"required"`
	Address        string `form:"address" binding:"required"`
	Email          string `form:"email" binding:"required,email"`
	PhoneNumber    string `form:"phone_number" binding:"required"`
	Sex            string `form:"sex" binding:"required"`
	DOB            string `form:"dob" binding:"required,datetime=2006-01-02"`
	PermitType     string `form:"permit_type" binding:"required"`
	SINNumber      string `form:"sin_number" binding:"required"`
	PassportNumber string `form:"passport_number" binding:"required"`
	PIN            string `form:"pin" binding:"required,numeric,min=4,max=6"`
	Position       string `form:"position" binding:"required"`
	Password       string `form:"password" binding:"required,min=6"`
	PayRate        string `form:"pay_rate" binding:"required,numeric"`
}

// DocumentUpload is one onboarding file taken from the multipart form.
type DocumentUpload struct {
	Kind     string
	Filename string
	Content  io.Reader
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Address      string `json:"address"`
	PhoneNumber  string `json:"phone_number"`
	Position     string `json:"position"`
	PushPlayerID string `json:"push_player_id"`
}

type EmployeeResponse struct {
	ID             string    `json:"id"`
	CompanyID      string    `json:"company_id"`
	EmployeeNumber string    `json:"employee_number"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phone_number"`
	Address        string    `json:"address"`
	Position       string    `json:"position"`
	PayRate        string    `json:"pay_rate,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type ProfileResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phone_number"`
	Address        string `json:"address"`
	Sex            string `json:"sex"`
	DOB            string `json:"dob"`
	PermitType     string `json:"permit_type"`
	Position       string `json:"position"`
	PayRate        string `json:"pay_rate"`
	PushPlayerID   string `json:"push_player_id,omitempty"`
	CompanyID      string `json:"company_id"`
	CompanyName    string `json:"company_name"`
	CompanyAddress string `json:"company_address"`
}

// DuplicateDetails is attached to the conflict error when onboarding hits
// an employee that already exists.
type DuplicateDetails struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phone_number"`
	SINNumber      string `json:"sin_number"`
	PassportNumber string `json:"passport_number"`
}

type LoginResponse struct {
	Token    auth.Token      `json:"token"`
	Employee ProfileResponse `json:"employee"`
}
