package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/cors"
)

// CORS returns middleware that lets the single-page app on allowedOrigins call the API.
// An empty list, or "*", allows any origin.
func CORS(allowedOrigins []string) echo.MiddlewareFunc {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})

	return echo.WrapMiddleware(c.Handler)
}
