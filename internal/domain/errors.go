package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the chat proxy and request handling.
// Transport lookups never fail and have no error values.
var (
	// ErrInvalidRequest indicates the caller sent an unusable request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUpstreamTimeout indicates the chat upstream did not answer in time.
	ErrUpstreamTimeout = errors.New("upstream timeout")

	// ErrModelUnavailable indicates the upstream does not serve the requested model.
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrAllModelsFailed indicates every model in the fallback chain failed.
	ErrAllModelsFailed = errors.New("all models failed")

	// ErrChatDisabled indicates the chat proxy has no upstream credentials configured.
	ErrChatDisabled = errors.New("chat disabled")
)

// UpstreamError describes a failed call to the chat upstream for one model.
type UpstreamError struct {
	// Model is the model that was requested
	Model string

	// StatusCode is the HTTP status returned by the upstream (0 for transport errors)
	StatusCode int

	// Err is the underlying error
	Err error

	// Retryable indicates the same model may succeed on another attempt
	Retryable bool
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("upstream model %s: status %d: %v", e.Model, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("upstream model %s: %v", e.Model, e.Err)
}

// Unwrap returns the underlying error.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError creates a non-retryable upstream error.
func NewUpstreamError(model string, statusCode int, err error) *UpstreamError {
	return &UpstreamError{
		Model:      model,
		StatusCode: statusCode,
		Err:        err,
		Retryable:  false,
	}
}

// NewRetryableUpstreamError creates an upstream error that may succeed on retry.
func NewRetryableUpstreamError(model string, statusCode int, err error) *UpstreamError {
	return &UpstreamError{
		Model:      model,
		StatusCode: statusCode,
		Err:        err,
		Retryable:  true,
	}
}

// NewUpstreamTimeoutError creates a retryable error wrapping ErrUpstreamTimeout.
func NewUpstreamTimeoutError(model string) *UpstreamError {
	return NewRetryableUpstreamError(model, 0, ErrUpstreamTimeout)
}

// NewModelUnavailableError creates a non-retryable error wrapping ErrModelUnavailable.
func NewModelUnavailableError(model string, statusCode int) *UpstreamError {
	return NewUpstreamError(model, statusCode, ErrModelUnavailable)
}

// ValidationError is a field-level validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap makes every ValidationError match ErrInvalidRequest.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ValidationErrors collects every field-level failure of one request.
type ValidationErrors struct {
	Errors []*ValidationError
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}

// Unwrap makes ValidationErrors match ErrInvalidRequest.
func (v *ValidationErrors) Unwrap() error {
	return ErrInvalidRequest
}

// Add records a failure for field.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, NewValidationError(field, message))
}

// HasErrors returns true if any failure was recorded.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// Fields maps each failing field to its message.
func (v *ValidationErrors) Fields() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// IsInvalidRequest reports whether err is (or wraps) ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsAllModelsFailed reports whether err is (or wraps) ErrAllModelsFailed.
func IsAllModelsFailed(err error) bool {
	return errors.Is(err, ErrAllModelsFailed)
}

// IsUpstreamTimeout reports whether err is (or wraps) ErrUpstreamTimeout.
func IsUpstreamTimeout(err error) bool {
	return errors.Is(err, ErrUpstreamTimeout)
}

// IsRetryable reports whether err carries an UpstreamError marked retryable.
func IsRetryable(err error) bool {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Retryable
	}
	return false
}
