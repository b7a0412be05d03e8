package notificationerrors

import (
	"net/http"

	"github.com/SimantDhakalGeorgian/shifty-pro-api/internal/shared/apperror"
)

var (
	ErrNotConfigured = apperror.New(
		apperror.CodeServiceUnavailable,
		"push notifications are not configured",
		http.StatusServiceUnavailable,
	)
	ErrDeliveryFailed = apperror.New(
		apperror.CodeServiceUnavailable,
		"failed to send notification",
		http.StatusServiceUnavailable,
	)
	ErrNoRecipients = apperror.New(
		apperror.CodeInvalidInput,
		"at least one player id is required",
		http.StatusBadRequest,
	)
)
