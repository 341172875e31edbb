package handler

import "github.com/praveenjayakumarramesh/st-joseph-church/internal/interfaces/http/dto"

// ErrorResponse is the body of a failed request
//
//	@Description	Error body. received echoes invalid input, error is set outside production
type ErrorResponse = dto.ErrorResponse

// MessageResponse confirms an operation
type MessageResponse = dto.MessageResponse

// YearsResponse is the body of the years endpoints
type YearsResponse []int

// FunctionsResponse is the body of the functions endpoints
type FunctionsResponse []string
