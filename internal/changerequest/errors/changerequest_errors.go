package changerequesterrors

import (
	"net/http"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/apperror"
)

var (
	ErrChangeRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Change request not found",
		http.StatusNotFound,
	)
	ErrInvalidChangeRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid change request ID",
		http.StatusBadRequest,
	)
	ErrTimecardNotFound = apperror.New(
		apperror.CodeNotFound,
		"Timecard not found",
		http.StatusNotFound,
	)
	ErrPendingRequestExists = apperror.New(
		apperror.CodeConflict,
		"A pending change request already exists for this timecard",
		http.StatusConflict,
	)
	ErrAlreadyDecided = apperror.New(
		apperror.CodeInvalidState,
		"Change request has already been decided",
		http.StatusBadRequest,
	)
	ErrClockOutRequired = apperror.New(
		apperror.CodeInvalidInput,
		"clock_out_time is required for a timecard that is still open",
		http.StatusBadRequest,
	)
	ErrInvalidTimeRange = apperror.New(
		apperror.CodeInvalidInput,
		"Clock-out time must be after clock-in time",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of pending, approved, rejected",
		http.StatusBadRequest,
	)
)
