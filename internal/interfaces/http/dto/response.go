package dto

// ErrorResponse is the body of every failed request. Received echoes the
// offending input of a validation error. Error carries the cause of a 5xx
// outside production.
type ErrorResponse struct {
	Message  string `json:"message"`
	Code     string `json:"code"`
	Received any    `json:"received,omitempty"`
	Error    string `json:"error,omitempty"`
}

// MessageResponse is the body of operations that only confirm
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message}
}
