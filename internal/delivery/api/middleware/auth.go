package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "recipebox/internal/delivery/context"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const headerAuthorization = "Authorization"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// AuthMiddleware guards routes that require a bearer token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenService, logger: params.Logger}
}

// Authenticate either rejects the request with 401 or attaches the caller's
// identity and calls next, never both. Rejections carry fixed messages that do
// not say why a token failed.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c.Request().Header.Get(headerAuthorization))
		if !ok {
			return domainerrors.ErrTokenMissing
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Token rejected", slog.Any("error", err))

			return domainerrors.ErrTokenInvalid
		}

		identity := deliverycontext.Identity{UserID: claims.UserID}
		ctx := deliverycontext.WithIdentity(c.Request().Context(), identity)
		if reqLogger := deliverycontext.GetLogger(ctx); reqLogger != nil {
			ctx = deliverycontext.WithLogger(ctx, reqLogger.With(slog.Int64("user_id", identity.UserID)))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// IdentityHandlerFunc is a handler that runs only for authenticated callers.
type IdentityHandlerFunc func(c echo.Context, identity deliverycontext.Identity) error

// WithIdentity adapts fn to an echo handler, passing the identity attached by
// Authenticate. It must be mounted behind Authenticate.
func (m *AuthMiddleware) WithIdentity(fn IdentityHandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := deliverycontext.GetIdentity(c.Request().Context())
		if !ok {
			return domainerrors.ErrTokenMissing
		}

		return fn(c, identity)
	}
}

// bearerToken returns the second space-separated field of the header, the
// slot a "Bearer <token>" header puts the token in. The scheme word is not
// checked: "Basic abc" yields "abc", which then fails verification.
func bearerToken(header string) (string, bool) {
	fields := strings.Split(header, " ")
	if len(fields) < 2 || fields[1] == "" {
		return "", false
	}

	return fields[1], true
}
