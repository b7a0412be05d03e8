package timeofferrors

import (
	"net/http"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrTimeOffOverlap = apperror.New(
		apperror.CodeConflict,
		"time off already requested in an overlapping period",
		http.StatusConflict,
	)
	ErrTimeOffNotFound = apperror.New(
		apperror.CodeNotFound,
		"time off request not found",
		http.StatusNotFound,
	)
	ErrInvalidTimeOffID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid time off id",
		http.StatusBadRequest,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid time off status transition",
		http.StatusBadRequest,
	)
)
