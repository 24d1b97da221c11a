package service

import (
	"context"

	"recipebox/internal/domain/entity"
)

// RecipeSearcher queries the external recipe provider.
type RecipeSearcher interface {
	Search(ctx context.Context, query *entity.RecipeSearchQuery) ([]*entity.RecipeSummary, error)
}
