package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"recipebox/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapInternal(t *testing.T) {
	cause := stderrors.New("connection refused")

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, WrapInternal(nil, ErrRecipeSaveFailed))
	})

	t.Run("client errors pass through", func(t *testing.T) {
		wrapped := errors.Wrap(ErrRecipeNotFound, "delete recipe")

		err := WrapInternal(wrapped, ErrRecipeDeleteFailed)
		assert.Same(t, wrapped, err)
		assert.True(t, errors.Is(err, ErrRecipeNotFound))
	})

	t.Run("unknown errors take the route sentinel", func(t *testing.T) {
		err := WrapInternal(cause, ErrRecipeListFailed)

		var appErr AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
		assert.Equal(t, "Failed to fetch saved recipes.", appErr.Message())
		assert.True(t, errors.Is(err, cause))
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("database errors are reported with the route message", func(t *testing.T) {
		dbErr := NewDatabaseExecuteError(cause, "insert recipe")

		err := WrapInternal(dbErr, ErrRecipeSaveFailed)

		var appErr AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "Failed to save recipe.", appErr.Message())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("already wrapped with the same sentinel", func(t *testing.T) {
		first := WrapInternal(cause, ErrAuthFailed)

		assert.Same(t, first, WrapInternal(first, ErrAuthFailed))
	})
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrRecipeFieldsRequired.WithDetails("title")

	assert.Equal(t, "title", detailed.Details())
	assert.Equal(t, ErrRecipeFieldsRequired.Message(), detailed.Message())
	assert.Empty(t, ErrRecipeFieldsRequired.Details())
}
