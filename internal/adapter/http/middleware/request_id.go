// Package middleware provides HTTP middleware for cross-cutting concerns.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader is the HTTP header name for request ID.
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"

	// maxRequestIDLength bounds client-supplied IDs before they reach the logs.
	maxRequestIDLength = 128
)

// RequestID returns middleware that propagates the client's X-Request-ID or
// generates a UUID, storing it in the context and the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Request().Header.Get(RequestIDHeader)
			if reqID == "" || len(reqID) > maxRequestIDLength {
				reqID = uuid.NewString()
			}

			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(RequestIDHeader, reqID)

			return next(c)
		}
	}
}

// GetRequestID retrieves the request ID from the echo context.
// Returns an empty string if no request ID is set.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDKey).(string); ok {
		return id
	}
	return ""
}
