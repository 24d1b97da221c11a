package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"recipebox/config"
	deliverycontext "recipebox/internal/delivery/context"
	domainerrors "recipebox/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newLoggedEcho(logger *slog.Logger, debug bool, h echo.HandlerFunc) *echo.Echo {
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/api/recipes/saved", h)

	return e
}

// withUser mimics the auth middleware tagging the request logger.
func withUser(c echo.Context, userID int64) {
	ctx := c.Request().Context()
	scoped := deliverycontext.GetLogger(ctx).With(slog.Int64("user_id", userID))
	c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, scoped)))
}

func TestLoggerMiddleware_UsesRequestScopedLogger(t *testing.T) {
	var logs bytes.Buffer
	e := newLoggedEcho(newJSONLogger(&logs), true, func(c echo.Context) error {
		withUser(c, 7)

		return c.JSON(http.StatusOK, []string{})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/recipes/saved", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-abc")
	e.ServeHTTP(httptest.NewRecorder(), req)

	line := decodeLogLine(t, &logs)
	assert.Equal(t, "HTTP Request", line["msg"])
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "req-abc", line["request_id"])
	assert.EqualValues(t, 7, line["user_id"])
	assert.EqualValues(t, http.StatusOK, line["status"])
}

func TestLoggerMiddleware_ReportsErrorStatus(t *testing.T) {
	var logs bytes.Buffer
	e := newLoggedEcho(newJSONLogger(&logs), true, func(echo.Context) error {
		return domainerrors.ErrTokenInvalid
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/recipes/saved", nil))

	line := decodeLogLine(t, &logs)
	assert.Equal(t, "WARN", line["level"])
	assert.EqualValues(t, http.StatusUnauthorized, line["status"])
	assert.Equal(t, "Invalid token", line["error"])
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	var logs bytes.Buffer
	e := newLoggedEcho(newJSONLogger(&logs), false, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/recipes/saved", nil))

	assert.Zero(t, logs.Len())
}
