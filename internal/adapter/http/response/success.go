package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// SearchResult writes a 200 OK response with a transport search result.
func SearchResult(c echo.Context, result interface{}) error {
	return c.JSON(http.StatusOK, result)
}
