package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"

	// Request shape, checked before any service runs
	CodeValidationError = "VALIDATION_ERROR"
	CodeInvalidBody     = "INVALID_BODY"

	// Kiosk and API throttling; PROCESSING means the same Idempotency-Key is in flight
	CodeRateLimited = "RATE_LIMITED"
	CodeProcessing  = "PROCESSING"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
