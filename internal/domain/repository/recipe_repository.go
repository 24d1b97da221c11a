package repository

import (
	"context"
	"errors"

	"recipebox/internal/domain/entity"
)

// ErrRecipeNotFound is returned when no recipe matches both the id and the owner.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository stores saved recipes. Every read and delete is scoped to an owner.
type RecipeRepository interface {
	// Create persists a new recipe and fills in its ID and timestamps.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// FindByUser lists the owner's recipes in insertion order.
	FindByUser(ctx context.Context, userID int64) ([]*entity.Recipe, error)

	// Delete removes the recipe only if userID owns it; otherwise ErrRecipeNotFound.
	Delete(ctx context.Context, id, userID int64) error
}
