package announcementerrors

import (
	"net/http"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/apperror"
)

var (
	ErrInvalidEventDate = apperror.New(
		apperror.CodeInvalidInput,
		"event_date must be YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
)
