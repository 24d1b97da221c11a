package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"recipebox/internal/delivery/api/response"
	domainerrors "recipebox/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   response.ErrorBody
		wantLogged bool
	}{
		{
			name:       "client app error",
			err:        domainerrors.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantBody:   response.ErrorBody{Code: "INVALID_CREDENTIALS", Message: "Invalid credentials"},
		},
		{
			name:       "wrapped server app error",
			err:        domainerrors.WrapInternal(errors.New("connection refused"), domainerrors.ErrRecipeSaveFailed),
			wantStatus: http.StatusInternalServerError,
			wantBody:   response.ErrorBody{Code: "RECIPE_SAVE_FAILED", Message: "Failed to save recipe."},
			wantLogged: true,
		},
		{
			name:       "echo not found",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   response.ErrorBody{Code: "HTTP_ERROR", Message: "Not Found"},
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   response.ErrorBody{Code: "INTERNAL_ERROR", Message: "Internal server error, please try again later"},
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/recipes/saved", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body)
			assert.Equal(t, tt.wantLogged, logs.Len() > 0)
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusNoContent))

	m.HandleHTTPError(domainerrors.ErrRecipeNotFound, c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
