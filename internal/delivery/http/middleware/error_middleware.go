package middleware

import (
	"log/slog"
	"net/http"

	"stockroom/internal/delivery/http/response"
	domainerrors "stockroom/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. The body is
// always a bare {"message": ...}; anything richer lives in the server logs.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		// The client sees the mapped message; the raw details stay in the log.
		if appErr.Details() != "" || appErr.HTTPCode() >= 500 {
			m.logger.Error("Request failed",
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
				slog.String("errorCode", appErr.ErrorCode()),
				slog.String("details", appErr.Details()),
			)
		}

		response.Message(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg, ok := httpErr.Message.(string)
		if !ok {
			msg = http.StatusText(httpErr.Code)
		}

		response.Message(c, httpErr.Code, msg)

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	response.Message(c, http.StatusInternalServerError, msgInternalError)
}
