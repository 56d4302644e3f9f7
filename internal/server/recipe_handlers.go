package server

import (
	"ladle/internal/models"
	"ladle/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetRecipes handles GET /recipes. Requires an authenticated session; the
// listing is system-wide.
func (s *Server) GetRecipes(c *fiber.Ctx) error {
	recipes, err := s.recipeService.List(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(newRecipeViews(recipes))
}

// CreateRecipe handles POST /recipes. The recipe is owned by the user bound
// to the session.
func (s *Server) CreateRecipe(c *fiber.Ctx) error {
	var req struct {
		Title             string `json:"title"`
		Instructions      string `json:"instructions"`
		MinutesToComplete int    `json:"minutes_to_complete"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	userID := c.Locals("userID").(uint)

	recipe, err := s.recipeService.Create(c.Context(), service.CreateRecipeInput{
		UserID:            userID,
		Title:             req.Title,
		Instructions:      req.Instructions,
		MinutesToComplete: req.MinutesToComplete,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(newRecipeView(recipe))
}
