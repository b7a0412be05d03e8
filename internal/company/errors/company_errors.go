package companyerrors

import (
	"net/http"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)

	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"Username is already taken",
		http.StatusConflict,
	)

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)

	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid username or password",
		http.StatusUnauthorized,
	)

	ErrWrongOldPassword = apperror.New(
		apperror.CodeInvalidInput,
		"Old password is incorrect",
		http.StatusBadRequest,
	)

	ErrCompanyNotVerified = apperror.New(
		apperror.CodeForbidden,
		"Company account is not verified yet",
		http.StatusForbidden,
	)
)
