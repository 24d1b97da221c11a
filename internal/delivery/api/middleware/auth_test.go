package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "recipebox/internal/delivery/context"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/domain/service"
	mockservice "recipebox/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockservice.MockTokenService) {
	t.Helper()

	tokenSvc := mockservice.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenSvc, Logger: logger}), tokenSvc
}

func newAuthContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/recipes/saved", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{name: "no header", header: "", wantErr: domainerrors.ErrTokenMissing},
		{name: "token without scheme", header: "abc.def.ghi", wantErr: domainerrors.ErrTokenMissing},
		{name: "scheme only", header: "Bearer", wantErr: domainerrors.ErrTokenMissing},
		{name: "double space before token", header: "Bearer  tok", wantErr: domainerrors.ErrTokenMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestAuthMiddleware(t)
			c, _ := newAuthContext(tt.header)

			called := false
			err := m.Authenticate(func(echo.Context) error {
				called = true

				return nil
			})(c)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, called)
		})
	}
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	m, tokenSvc := newTestAuthMiddleware(t)
	tokenSvc.EXPECT().ValidateToken("garbage").Return(nil, errors.New("signature is invalid"))

	c, _ := newAuthContext("Bearer garbage")

	called := false
	err := m.Authenticate(func(echo.Context) error {
		called = true

		return nil
	})(c)

	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.False(t, called)
}

func TestAuthMiddleware_Authenticate_OtherSchemeIsVerified(t *testing.T) {
	m, tokenSvc := newTestAuthMiddleware(t)
	tokenSvc.EXPECT().ValidateToken("abc.def.ghi").Return(nil, errors.New("token is malformed"))

	c, _ := newAuthContext("Basic abc.def.ghi")

	err := m.Authenticate(func(echo.Context) error {
		t.Fatal("next must not run for a rejected token")

		return nil
	})(c)

	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthMiddleware_Authenticate_AttachesIdentity(t *testing.T) {
	m, tokenSvc := newTestAuthMiddleware(t)
	tokenSvc.EXPECT().ValidateToken("good-token").Return(&service.Claims{UserID: 7}, nil)

	c, _ := newAuthContext("Bearer good-token")

	var got deliverycontext.Identity
	err := m.Authenticate(m.WithIdentity(func(_ echo.Context, identity deliverycontext.Identity) error {
		got = identity

		return nil
	}))(c)

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
}

func TestAuthMiddleware_WithIdentity_RequiresAuthenticate(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)
	c, _ := newAuthContext("")

	err := m.WithIdentity(func(echo.Context, deliverycontext.Identity) error {
		t.Fatal("handler must not run without an identity")

		return nil
	})(c)

	assert.ErrorIs(t, err, domainerrors.ErrTokenMissing)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header    string
		wantToken string
		wantOK    bool
	}{
		{header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi", wantOK: true},
		{header: "Basic abc.def.ghi", wantToken: "abc.def.ghi", wantOK: true},
		{header: "Bearer abc extra", wantToken: "abc", wantOK: true},
		{header: "abc.def.ghi", wantOK: false},
		{header: "Bearer ", wantOK: false},
		{header: "Bearer  tok", wantOK: false},
		{header: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			token, ok := bearerToken(tt.header)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
