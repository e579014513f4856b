package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all API routes.
// The chat endpoint is always mounted; without upstream credentials it answers 503.
func RegisterRoutes(e *echo.Echo, th *TransportHandler, ch *ChatHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", th.Health)

	api := e.Group("/api/v1", middleware...)

	transport := api.Group("/transport")
	transport.GET("/search", th.SearchTransportGet)
	transport.POST("/search", th.SearchTransport)
	transport.GET("/popular/:code", th.PopularRoutes)
	transport.GET("/routes", th.Routes)

	api.POST("/chat", ch.Chat)
}
