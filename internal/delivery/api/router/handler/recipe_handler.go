package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"recipebox/internal/delivery/api/response"
	deliverycontext "recipebox/internal/delivery/context"
	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RecipeHandlerParams holds dependencies for RecipeHandler, injected by Fx.
type RecipeHandlerParams struct {
	fx.In

	RecipeUC usecase.RecipeUsecase
	Logger   *slog.Logger
}

// RecipeHandler serves recipe search and saved recipes. Every route sits behind the auth middleware.
type RecipeHandler struct {
	recipeUC usecase.RecipeUsecase
	logger   *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler
func NewRecipeHandler(params RecipeHandlerParams) *RecipeHandler {
	return &RecipeHandler{
		recipeUC: params.RecipeUC,
		logger:   params.Logger,
	}
}

// SearchRecipesRequest is the body of POST /api/recipes/search.
type SearchRecipesRequest struct {
	Ingredients     []string `json:"ingredients" validate:"required,min=1"`
	Sensitivities   []string `json:"sensitivities"`
	Additional      bool     `json:"additional"`
	AdditionalLimit *int     `json:"additionalLimit"`
}

// SaveRecipeRequest is the body of POST /api/recipes/save.
type SaveRecipeRequest struct {
	Title     string `json:"title" validate:"required"`
	ImageURL  string `json:"imageUrl" validate:"required"`
	SourceURL string `json:"sourceUrl" validate:"required"`
}

// Search handles POST /api/recipes/search.
func (h *RecipeHandler) Search(c echo.Context, _ deliverycontext.Identity) error {
	var req SearchRecipesRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrIngredientsRequired
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrIngredientsRequired
	}

	results, err := h.recipeUC.Search(c.Request().Context(), &entity.RecipeSearchQuery{
		Ingredients:     req.Ingredients,
		Sensitivities:   req.Sensitivities,
		Additional:      req.Additional,
		AdditionalLimit: req.AdditionalLimit,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, results)
}

// Save handles POST /api/recipes/save. The owner comes from the token, never the body.
func (h *RecipeHandler) Save(c echo.Context, identity deliverycontext.Identity) error {
	var req SaveRecipeRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrRecipeFieldsRequired
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrRecipeFieldsRequired
	}

	recipe, err := h.recipeUC.Save(c.Request().Context(), &usecase.SaveRecipeInput{
		UserID:    identity.UserID,
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		SourceURL: req.SourceURL,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, recipe)
}

// ListSaved handles GET /api/recipes/saved.
func (h *RecipeHandler) ListSaved(c echo.Context, identity deliverycontext.Identity) error {
	recipes, err := h.recipeUC.ListSaved(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, recipes)
}

// DeleteSaved handles DELETE /api/recipes/saved/:id.
func (h *RecipeHandler) DeleteSaved(c echo.Context, identity deliverycontext.Identity) error {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// Not a valid id, so it cannot name one of the caller's recipes.
		return domainerrors.ErrRecipeNotFound
	}

	if err := h.recipeUC.DeleteSaved(c.Request().Context(), identity.UserID, recipeID); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Recipe deleted successfully.")
}
