package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/siam-trails/travel-affiliate-service/internal/infrastructure/logger"
)

// Config selects the optional parts of the middleware stack.
type Config struct {
	// AllowedOrigins enables CORS for these origins; nil disables CORS handling
	AllowedOrigins []string

	// SkipLogPaths are request paths that are not logged
	SkipLogPaths []string

	Recovery RecoveryConfig
}

// Setup registers all middleware on the Echo instance in the correct order:
//  1. RequestID, so every later log line carries it
//  2. RequestLogger
//  3. Recover, innermost, so a panic still produces a logged 500
//  4. CORS, when origins are configured
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log *logger.Logger, cfg Config) {
	for _, m := range Chain(log, cfg) {
		e.Use(m)
	}
}

// Chain returns the middleware stack as a slice for use with route groups.
func Chain(log *logger.Logger, cfg Config) []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log, cfg.SkipLogPaths...),
		RecoverWithConfig(log, cfg.Recovery),
	}
	if cfg.AllowedOrigins != nil {
		chain = append(chain, CORS(cfg.AllowedOrigins))
	}
	return chain
}
