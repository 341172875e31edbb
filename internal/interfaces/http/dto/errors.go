package dto

import (
	"net/http"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
)

// Codes produced by the HTTP layer itself
const (
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "RATE_LIMITED"
	// ErrCodeRequestTooLarge is used when the body exceeds the configured limit
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
	// ErrCodeForbidden is used when a route is closed in this environment
	ErrCodeForbidden = "FORBIDDEN"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	shared.CodeInvalidParameter:   http.StatusBadRequest,
	shared.CodeUnauthorized:       http.StatusUnauthorized,
	shared.CodeInvalidCredentials: http.StatusUnauthorized,
	shared.CodeNotFound:           http.StatusNotFound,
	// duplicate designation names are reported as a bad request
	shared.CodeAlreadyExists: http.StatusBadRequest,
	shared.CodeStoreFailure:  http.StatusInternalServerError,
	shared.CodeInternal:      http.StatusInternalServerError,

	ErrCodeRateLimited:     http.StatusTooManyRequests,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,
	ErrCodeForbidden:       http.StatusForbidden,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
