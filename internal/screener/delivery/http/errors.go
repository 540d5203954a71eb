package http

import (
	"errors"
	"net/http"

	"golang-stock-screener/internal/screener/dto"
	"golang-stock-screener/internal/screener/service"

	"github.com/labstack/echo/v4"
)

// errorStatus maps a service error onto the HTTP status it is reported with.
func errorStatus(err error) int {
	var upstream *service.UpstreamError
	switch {
	case errors.Is(err, service.ErrTickerRequired):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNoData):
		return http.StatusNotFound
	case errors.As(err, &upstream):
		return upstream.StatusCode
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c echo.Context, err error) error {
	return c.JSON(errorStatus(err), dto.ErrorResponse{Error: err.Error()})
}
