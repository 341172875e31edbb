package shared

import (
	"errors"
	"fmt"
)

// Error codes shared by every resource. The HTTP layer maps each code to a status.
const (
	CodeInvalidParameter   = "INVALID_PARAMETER"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeNotFound           = "NOT_FOUND"
	CodeAlreadyExists      = "ALREADY_EXISTS"
	CodeStoreFailure       = "STORE_FAILURE"
	CodeInternal           = "INTERNAL_ERROR"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Received echoes the offending input back to the caller for validation errors.
	Received any `json:"received,omitempty"`
	// Op names the failing store operation, e.g. "records.find".
	Op    string `json:"-"`
	Cause error  `json:"-"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Cause != nil {
		if e.Op != "" {
			return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Cause)
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a DomainError with the same code.
// errors.Is(err, shared.ErrNotFound) matches any not-found error regardless of message.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewInvalidParameter creates a validation error carrying the received value
func NewInvalidParameter(message string, received any) *DomainError {
	return &DomainError{
		Code:     CodeInvalidParameter,
		Message:  message,
		Received: received,
	}
}

// NewNotFound creates a not-found error with a resource specific message
func NewNotFound(message string) *DomainError {
	return NewDomainError(CodeNotFound, message)
}

// NewAlreadyExists creates a uniqueness conflict error
func NewAlreadyExists(message string) *DomainError {
	return NewDomainError(CodeAlreadyExists, message)
}

// NewStoreFailure wraps a persistence error
func NewStoreFailure(op string, cause error) *DomainError {
	return &DomainError{
		Code:    CodeStoreFailure,
		Message: "Database operation failed",
		Op:      op,
		Cause:   cause,
	}
}

// NewInternalError wraps an unexpected error
func NewInternalError(cause error) *DomainError {
	return &DomainError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Cause:   cause,
	}
}

// Common domain errors
var (
	ErrNotFound           = NewDomainError(CodeNotFound, "Resource not found")
	ErrAlreadyExists      = NewDomainError(CodeAlreadyExists, "Resource already exists")
	ErrInvalidParameter   = NewDomainError(CodeInvalidParameter, "Invalid parameter")
	ErrUnauthorized       = NewDomainError(CodeUnauthorized, "Not authorized to perform this action")
	ErrInvalidCredentials = NewDomainError(CodeInvalidCredentials, "Invalid credentials")
	ErrStoreFailure       = NewDomainError(CodeStoreFailure, "Database operation failed")
	ErrInternal           = NewDomainError(CodeInternal, "Internal server error")
)

// AsDomainError extracts a DomainError from an error chain
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
