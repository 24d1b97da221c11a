// Package middleware holds echo middleware shared by every HTTP delivery.
package middleware

import (
	"log/slog"

	deliverycontext "recipebox/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxClientRequestIDLen bounds an X-Request-Id supplied by the caller.
const maxClientRequestIDLen = 128

// RequestIDMiddleware assigns every request an ID and a logger tagged with it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses a well-formed X-Request-Id from the caller or generates a UUID.
// The same ID goes to the response header, the echo context, the request
// context (forwarded to Spoonacular) and the request-scoped logger.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if !validRequestID(requestID) {
			requestID = uuid.NewString()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", requestID)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// validRequestID accepts short IDs made of letters, digits and -_.: so a
// caller cannot inject arbitrary text into logs and upstream headers.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxClientRequestIDLen {
		return false
	}

	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == ':':
		default:
			return false
		}
	}

	return true
}
