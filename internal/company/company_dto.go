package company

import (
	"time"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/auth"
)

type RegisterCompanyRequest struct {
	CompanyName    string `json:"company_name" binding:"required,max=150"`
	CompanyAddress string `json:"company_address" binding:"required,max=255"`
	CompanyPhone   string `json:"company_phone" binding:"required,max=30"`
	CompanyEmail   string `json:"company_email" binding:"required,email"`
	AdminName      string `json:"admin_name" binding:"required,max=150"`
	AdminPosition  string `json:"admin_position" binding:"required,max=100"`
	AdminEmail     string `json:"admin_email" binding:"required,email"`
	AdminPhone     string `json:"admin_phone" binding:"required,max=30"`
	Username       string `json:"username" binding:"required,min=3,max=100"`
	Password       string `json:"password" binding:"required,min=6"`
	BusinessType   string `json:"business_type" binding:"required,max=100"`
	Plan           string `json:"plan" binding:"required,max=50"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type UpdateCompanyRequest struct {
	CompanyAddress string `json:"company_address" binding:"omitempty,max=255"`
	CompanyPhone   string `json:"company_phone" binding:"omitempty,max=30"`
	CompanyEmail   string `json:"company_email" binding:"omitempty,email"`
	AdminName      string `json:"admin_name" binding:"omitempty,max=150"`
	AdminPosition  string `json:"admin_position" binding:"omitempty,max=100"`
	AdminEmail     string `json:"admin_email" binding:"omitempty,email"`
	AdminPhone     string `json:"admin_phone" binding:"omitempty,max=30"`
}

type CompanyResponse struct {
	ID             string    `json:"id"`
	CompanyName    string    `json:"company_name"`
	CompanyAddress string    `json:"company_address"`
	CompanyPhone   string    `json:"company_phone"`
	CompanyEmail   string    `json:"company_email"`
	AdminName      string    `json:"admin_name"`
	AdminPosition  string    `json:"admin_position"`
	AdminEmail     string    `json:"admin_email"`
	AdminPhone     string    `json:"admin_phone"`
	Username       string    `json:"username"`
	BusinessType   string    `json:"business_type"`
	Plan           string    `json:"plan"`
	Role           string    `json:"role"`
	Verified       bool      `json:"verified"`
	CreatedAt      time.Time `json:"created_at"`
}

type LoginResponse struct {
	Token   auth.Token      `json:"token"`
	Company CompanyResponse `json:"company"`
}
