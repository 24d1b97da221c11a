package impl

import (
	"context"
	"log/slog"

	deliverycontext "recipebox/internal/delivery/context"
	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/domain/repository"
	"recipebox/internal/domain/service"
	"recipebox/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	recipeRepo repository.RecipeRepository
	searcher   service.RecipeSearcher
	logger     *slog.Logger
}

// RecipeServiceParams holds dependencies for RecipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	RecipeRepo repository.RecipeRepository
	Searcher   service.RecipeSearcher
	Logger     *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		recipeRepo: params.RecipeRepo,
		searcher:   params.Searcher,
		logger:     params.Logger,
	}
}

func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search forwards the query to the recipe provider once; failures are not retried.
func (srv *recipeService) Search(ctx context.Context, query *entity.RecipeSearchQuery) ([]*entity.RecipeSummary, error) {
	if query == nil || len(query.Ingredients) == 0 {
		return nil, domainerrors.ErrIngredientsRequired
	}

	results, err := srv.searcher.Search(ctx, query)
	if err != nil {
		return nil, domainerrors.WrapInternal(err, domainerrors.ErrRecipeSearchFailed)
	}
	if results == nil {
		results = []*entity.RecipeSummary{}
	}

	return results, nil
}

// Save stores a bookmark owned by input.UserID.
func (srv *recipeService) Save(ctx context.Context, input *usecase.SaveRecipeInput) (*entity.Recipe, error) {
	if input == nil || input.Title == "" || input.ImageURL == "" || input.SourceURL == "" {
		return nil, domainerrors.ErrRecipeFieldsRequired
	}

	recipe := &entity.Recipe{
		UserID:    input.UserID,
		Title:     input.Title,
		ImageURL:  input.ImageURL,
		SourceURL: input.SourceURL,
	}
	if err := srv.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, domainerrors.WrapInternal(err, domainerrors.ErrRecipeSaveFailed)
	}

	srv.log(ctx).Debug("Recipe saved", slog.Int64("userID", recipe.UserID), slog.Int64("recipeID", recipe.ID))

	return recipe, nil
}

// ListSaved returns the user's bookmarks; never nil.
func (srv *recipeService) ListSaved(ctx context.Context, userID int64) ([]*entity.Recipe, error) {
	recipes, err := srv.recipeRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.WrapInternal(err, domainerrors.ErrRecipeListFailed)
	}
	if recipes == nil {
		recipes = []*entity.Recipe{}
	}

	return recipes, nil
}

// DeleteSaved removes recipeID if userID owns it. A recipe owned by someone
// else reports ErrRecipeNotFound, the same as a missing one.
func (srv *recipeService) DeleteSaved(ctx context.Context, userID, recipeID int64) error {
	if err := srv.recipeRepo.Delete(ctx, recipeID, userID); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return domainerrors.ErrRecipeNotFound
		}

		return domainerrors.WrapInternal(err, domainerrors.ErrRecipeDeleteFailed)
	}

	srv.log(ctx).Debug("Recipe deleted", slog.Int64("userID", userID), slog.Int64("recipeID", recipeID))

	return nil
}
