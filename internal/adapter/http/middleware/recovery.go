package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/siam-trails/travel-affiliate-service/internal/adapter/http/response"
	"github.com/siam-trails/travel-affiliate-service/internal/infrastructure/logger"
)

// RecoveryConfig controls panic recovery behavior.
type RecoveryConfig struct {
	// DisablePrintStack omits the stack trace from the panic log entry
	DisablePrintStack bool
}

// DefaultRecoveryConfig returns the default recovery configuration.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{
		DisablePrintStack: false,
	}
}

// Recover returns middleware that turns handler panics into 500 responses.
func Recover(log *logger.Logger) echo.MiddlewareFunc {
	return RecoverWithConfig(log, DefaultRecoveryConfig())
}

// RecoverWithConfig returns recovery middleware with custom configuration.
func RecoverWithConfig(log *logger.Logger, config RecoveryConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				var panicMsg string
				if e, ok := r.(error); ok {
					panicMsg = e.Error()
				} else {
					panicMsg = fmt.Sprintf("%v", r)
				}

				event := log.WithRequestID(GetRequestID(c)).Error().
					Str("panic", panicMsg).
					Str("path", c.Request().URL.Path)
				if !config.DisablePrintStack {
					event = event.Str("stack", string(debug.Stack()))
				}
				event.Msg("Panic recovered")

				if !c.Response().Committed {
					err = response.InternalServerError(c)
				}
			}()

			return next(c)
		}
	}
}
