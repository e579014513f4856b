// Package response provides standardized HTTP response builders for the travel affiliate API.
// It centralizes response formatting to ensure consistency across all endpoints.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeValidationError    = "validation_error"
	CodeServiceUnavailable = "service_unavailable"
	CodeUpstreamError      = "upstream_error"
	CodeTimeout            = "timeout"
	CodeNotFound           = "not_found"
	CodeInternalError      = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgChatDisabled       = "The travel assistant is not available right now"
	MsgAllModelsFailed    = "The travel assistant could not answer, please try again"
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgNotFound           = "Resource not found"
	MsgInternalError      = "An unexpected error occurred"
)

// JSON writes a JSON response with the given status code and data.
func JSON(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}
