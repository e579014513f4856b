package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/siam-trails/travel-affiliate-service/internal/adapter/http/response"
)

// NewHTTPErrorHandler renders unknown API paths in the same error envelope as
// the handlers. Every other error goes to echo's default handler.
func NewHTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code == http.StatusNotFound {
			if werr := response.NotFound(c); werr != nil {
				e.Logger.Error(werr)
			}
			return
		}

		e.DefaultHTTPErrorHandler(err, c)
	}
}
