package http

import (
	"github.com/labstack/echo/v4"

	"github.com/siam-trails/travel-affiliate-service/internal/adapter/http/response"
	"github.com/siam-trails/travel-affiliate-service/internal/usecase"
)

// TransportHandler handles HTTP requests for transport endpoints.
type TransportHandler struct {
	useCase usecase.TransportSearchUseCase
}

// NewTransportHandler creates a new TransportHandler with the given use case.
func NewTransportHandler(uc usecase.TransportSearchUseCase) *TransportHandler {
	return &TransportHandler{
		useCase: uc,
	}
}

// SearchTransportGet handles GET /api/v1/transport/search
//
// @Summary Search transport schedules
// @Description Returns schedules for a route and a partner search link. Unknown routes return an empty list.
// @Tags transport
// @Produce json
// @Param from query string false "Origin code" example(BKK)
// @Param to query string false "Destination code" example(CNX)
// @Param date query string false "Travel date (YYYY-MM-DD)" example(2026-01-29)
// @Success 200 {object} SwaggerSearchResult
// @Router /api/v1/transport/search [get]
func (h *TransportHandler) SearchTransportGet(c echo.Context) error {
	req := SearchTransportRequest{
		From: c.QueryParam("from"),
		To:   c.QueryParam("to"),
		Date: c.QueryParam("date"),
	}
	return h.search(c, &req)
}

// SearchTransport handles POST /api/v1/transport/search
//
// @Summary Search transport schedules
// @Description Returns schedules for a route and a partner search link. Unknown routes return an empty list.
// @Tags transport
// @Accept json
// @Produce json
// @Param request body SearchTransportRequest true "Route and date"
// @Success 200 {object} SwaggerSearchResult
// @Failure 400 {object} response.ErrorDetail "Malformed body"
// @Router /api/v1/transport/search [post]
func (h *TransportHandler) SearchTransport(c echo.Context) error {
	var req SearchTransportRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	return h.search(c, &req)
}

func (h *TransportHandler) search(c echo.Context, req *SearchTransportRequest) error {
	req.Normalize()
	result := h.useCase.Search(ToSearchRequest(req))
	return response.SearchResult(c, result)
}

// PopularRoutes handles GET /api/v1/transport/popular/:code
//
// @Summary Popular routes for a destination
// @Description Curated routes shown on a destination page. Unknown codes return an empty list.
// @Tags transport
// @Produce json
// @Param code path string true "Destination code" example(CNX)
// @Success 200 {object} SwaggerPopularRoutesResponse
// @Router /api/v1/transport/popular/{code} [get]
func (h *TransportHandler) PopularRoutes(c echo.Context) error {
	code := normalizeCode(c.Param("code"))
	routes := h.useCase.PopularRoutes(code)
	return response.OK(c, ToPopularRoutesResponse(code, routes))
}

// Routes handles GET /api/v1/transport/routes
//
// @Summary List catalog routes
// @Description Every directed route that has schedules
// @Tags transport
// @Produce json
// @Success 200 {array} SwaggerRouteKey
// @Router /api/v1/transport/routes [get]
func (h *TransportHandler) Routes(c echo.Context) error {
	return response.OK(c, h.useCase.Routes())
}

// Health handles GET /health
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *TransportHandler) Health(c echo.Context) error {
	return response.Health(c)
}
