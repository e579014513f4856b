package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/siam-trails/travel-affiliate-service/internal/infrastructure/logger"
)

// RequestLogger returns middleware that logs each completed request.
// Requests to skipPaths (e.g. health checks) are served but not logged.
func RequestLogger(log *logger.Logger, skipPaths ...string) echo.MiddlewareFunc {
	skip := make(map[string]bool, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				// Let Echo's error handler write the response so the status is final
				c.Error(err)
			}

			req := c.Request()
			if skip[req.URL.Path] {
				return nil
			}

			res := c.Response()
			reqLog := log.WithRequestID(GetRequestID(c))

			var event *zerolog.Event
			switch status := res.Status; {
			case status >= 500:
				event = reqLog.Error()
			case status >= 400:
				event = reqLog.Warn()
			default:
				event = reqLog.Info()
			}

			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("route", c.Path()).
				Str("query", req.URL.RawQuery).
				Int("status", res.Status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return nil
		}
	}
}
