package i18n

// Translation keys for user-facing messages.
const (
	// ErrKeyInvalidRequestBody is used when the request body cannot be parsed.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError is used for unexpected server errors.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound is used when a resource does not exist.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded is used when the rate limit is hit.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyTimeout is used when request processing times out.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyValidationWorker is used when worker registration input is invalid.
	ErrKeyValidationWorker = "error.validation.worker"
	// ErrKeyValidationEvent is used when event creation input is invalid.
	ErrKeyValidationEvent = "error.validation.event"
	// ErrKeyValidationCheckIn is used when check-in input is invalid.
	ErrKeyValidationCheckIn = "error.validation.checkin"
	// ErrKeyAlreadyCheckedIn is used when a worker re-checks-in to an event.
	ErrKeyAlreadyCheckedIn = "error.already_checked_in"
	// ErrKeyEventClosed is used when an event is outside its check-in window.
	ErrKeyEventClosed = "error.event_closed"
)
