package service

import (
	"context"

	"ladle/internal/models"
	"ladle/internal/repository"
)

// RecipeService orchestrates listing and creation of recipes. Authentication
// is enforced at the HTTP layer; the service receives the resolved user ID.
type RecipeService struct {
	recipes repository.RecipeRepository
}

type CreateRecipeInput struct {
	UserID            uint
	Title             string
	Instructions      string
	MinutesToComplete int
}

func NewRecipeService(recipes repository.RecipeRepository) *RecipeService {
	return &RecipeService{recipes: recipes}
}

// List returns all recipes system-wide. No ownership filter, no pagination.
func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	return s.recipes.List(ctx)
}

// Create validates presence of the required fields and persists the recipe
// for the given owner. Length bounds are enforced by the store; a constraint
// violation there surfaces as a persistence error with the storage detail.
func (s *RecipeService) Create(ctx context.Context, in CreateRecipeInput) (*models.Recipe, error) {
	if in.Title == "" || in.Instructions == "" || in.MinutesToComplete <= 0 {
		return nil, models.NewValidationError("title, instructions, and minutes to complete required")
	}

	recipe := &models.Recipe{
		Title:             in.Title,
		Instructions:      in.Instructions,
		MinutesToComplete: in.MinutesToComplete,
		UserID:            in.UserID,
	}
	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}
