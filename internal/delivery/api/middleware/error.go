package middleware

import (
	"log/slog"
	"net/http"

	"recipebox/internal/delivery/api/response"
	deliverycontext "recipebox/internal/delivery/context"
	domainerrors "recipebox/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Server errors are
// logged with their cause; the client only sees the code and message.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Attempt to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logServerError(c, err, appErr.ErrorCode())
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())

		return
	}

	// Check if it is an Echo HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
		if httpErr.Code >= http.StatusInternalServerError {
			m.logServerError(c, err, "HTTP_ERROR")
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message)

		return
	}

	m.logServerError(c, err, "INTERNAL_ERROR")

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
}

// logServerError logs through the request-scoped logger, which already carries request_id.
func (m *ErrorMiddleware) logServerError(c echo.Context, err error, code string) {
	req := c.Request()
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error("Request failed",
		slog.String("code", code),
		slog.Any("error", err),
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
	)
}
