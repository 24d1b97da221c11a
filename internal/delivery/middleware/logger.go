package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"recipebox/config"
	deliverycontext "recipebox/internal/delivery/context"
	"recipebox/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request when debug is on.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle must run after RequestIDMiddleware. The line is written through the
// request-scoped logger read after next returns, so it carries request_id and,
// on protected routes, the user_id added by the auth middleware.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	status := c.Response().Status
	if err != nil && !c.Response().Committed {
		// The central error handler has not written yet; report what it will send.
		status = statusForError(err)
	}

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	ctx := req.Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, level, "HTTP Request", attrs...)
}

type httpCoder interface {
	HTTPCode() int
}

func statusForError(err error) int {
	var he *echo.HTTPError
	var coder httpCoder
	switch {
	case errors.As(err, &he):
		return he.Code
	case errors.As(err, &coder):
		return coder.HTTPCode()
	default:
		return http.StatusInternalServerError
	}
}
