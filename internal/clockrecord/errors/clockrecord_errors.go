package clockrecorderrors

import (
	"net/http"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeOrPIN = apperror.New(
		apperror.CodeForbidden,
		"Invalid employee ID or PIN",
		http.StatusForbidden,
	)
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeConflict,
		"Employee is already clocked in",
		http.StatusConflict,
	)
	ErrNotClockedIn = apperror.New(
		apperror.CodeInvalidInput,
		"Employee is not clocked in",
		http.StatusBadRequest,
	)
	ErrClockRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Clock record not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidWeek = apperror.New(
		apperror.CodeInvalidInput,
		"Week must be a Monday in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrNoTimecardsForWeek = apperror.New(
		apperror.CodeNotFound,
		"No timecards recorded for this week",
		http.StatusNotFound,
	)
)
