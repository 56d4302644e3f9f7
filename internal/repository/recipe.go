package repository

import (
	"context"

	"ladle/internal/models"

	"gorm.io/gorm"
)

// RecipeRepository defines persistence operations for recipes.
type RecipeRepository interface {
	// Create persists the recipe atomically. Any constraint violation
	// (length bound, missing field, broken owner reference) surfaces as a
	// persistence error carrying the storage detail.
	Create(ctx context.Context, recipe *models.Recipe) error
	// List returns every recipe with its owner loaded. There is no
	// ownership filter or pagination.
	List(ctx context.Context) ([]models.Recipe, error)
}

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository returns a new RecipeRepository implementation.
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	if err := r.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return models.NewPersistenceError(err)
	}
	// Load the owner for the response body.
	if err := r.db.WithContext(ctx).First(&recipe.User, recipe.UserID).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *recipeRepository) List(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := r.db.WithContext(ctx).Preload("User").Find(&recipes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return recipes, nil
}
