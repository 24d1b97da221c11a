package usecase

import (
	"context"

	"recipebox/internal/domain/entity"
)

// SaveRecipeInput is a bookmark to store for the authenticated user.
type SaveRecipeInput struct {
	UserID    int64
	Title     string
	ImageURL  string
	SourceURL string
}

// RecipeUsecase covers recipe search and the caller's saved recipes.
// Every saved-recipe operation is scoped to the given user id.
type RecipeUsecase interface {
	Search(ctx context.Context, query *entity.RecipeSearchQuery) ([]*entity.RecipeSummary, error)
	Save(ctx context.Context, input *SaveRecipeInput) (*entity.Recipe, error)
	ListSaved(ctx context.Context, userID int64) ([]*entity.Recipe, error)
	DeleteSaved(ctx context.Context, userID, recipeID int64) error
}
