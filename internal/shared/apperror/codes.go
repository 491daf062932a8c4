package apperror

const (
	// Raised locally, before any call to the HR API
	CodeInvalidInput = "INVALID_INPUT"
	CodeInvalidState = "INVALID_STATE"
	CodeRateLimited  = "RATE_LIMITED"

	// Reported by the HR API
	CodeNotFound = "NOT_FOUND"
	CodeConflict = "CONFLICT"

	// Transport or unexpected failures (5xx)
	CodeInternalError   = "INTERNAL_ERROR"
	CodeUpstreamFailure = "UPSTREAM_FAILURE"
)
