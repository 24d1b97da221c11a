package postgres

import (
	"context"

	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/domain/repository"
	"recipebox/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recipeRepository implements repository.RecipeRepository using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrapf(domainerrors.NewDatabaseExecuteError(err, "recipe owner does not exist"), "user %d", recipe.UserID)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}

	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt
	recipe.UpdatedAt = recipeM.UpdatedAt

	return nil
}

// FindByUser returns the owner's recipes ordered by id, which is insertion order.
func (repo *recipeRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.Recipe, error) {
	var recipeMs []*model.RecipeModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&recipeMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list recipes")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeMs))
	for _, recipeM := range recipeMs {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes, nil
}

// Delete matches on both id and owner in a single statement, so a recipe
// belonging to someone else is indistinguishable from a missing one.
func (repo *recipeRepository) Delete(ctx context.Context, id, userID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.RecipeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete recipe")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

func toRecipeDomain(m *model.RecipeModel) *entity.Recipe {
	return &entity.Recipe{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		ImageURL:  m.ImageURL,
		SourceURL: m.SourceURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromRecipeDomain(r *entity.Recipe) *model.RecipeModel {
	return &model.RecipeModel{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		ImageURL:  r.ImageURL,
		SourceURL: r.SourceURL,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
