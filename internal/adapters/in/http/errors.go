package http

import (
	"errors"
	"log/slog"
	"net/http"

	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps a handler error to its HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errs.IsBusiness(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c echo.Context, err error) error {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Path()),
			slog.Any("error", err))
		return c.JSON(status, errorResponse("internal error"))
	}
	return c.JSON(status, errorResponse(err.Error()))
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, errorResponse(message))
}

// outcomeStatus is the status of a structured result: ok when it succeeded,
// 400 when the request was rejected.
func outcomeStatus(success bool, ok int) int {
	if success {
		return ok
	}
	return http.StatusBadRequest
}
