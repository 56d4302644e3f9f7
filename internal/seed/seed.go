// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"

	"ladle/internal/models"

	"gorm.io/gorm"
)

var (
	cookNames = []string{
		"sage", "basil", "pepper", "ginger", "saffron", "thyme", "rosemary",
		"clove", "fennel", "juniper", "marjoram", "tarragon", "chervil", "dill",
	}

	recipeTitles = []string{
		"Tomato Soup", "Garlic Toast", "Lemon Pasta", "Miso Broth", "Fried Rice",
		"Pancakes", "Herb Omelette", "Black Bean Chili", "Roast Carrots",
		"Peanut Noodles", "Corn Chowder", "Baked Apples",
	}

	// Kept short: the instructions column is bounded at 50 characters.
	recipeInstructions = []string{
		"Boil water and simmer for ten minutes",
		"Toast until golden, rub with garlic",
		"Whisk, season, cook over low heat",
		"Chop everything, roast at 200C",
		"Stir constantly until thickened",
		"Mix, rest the batter, fry in butter",
	}

	bios = []string{
		"Weeknight cook", "Soup enthusiast", "Learning to bake",
		"Spice drawer maximalist", "One-pot evangelist", "",
	}
)

// Seeder populates the database with sample users and recipes.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder returns a seeder over the given database handle.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// ClearAll removes all seeded data.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	return s.db.Exec("TRUNCATE TABLE recipes, users CASCADE").Error
}

// SeedUsers creates n users with the shared development password.
func (s *Seeder) SeedUsers(n int) ([]models.User, error) {
	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		user := models.User{
			Username: fmt.Sprintf("%s_%d", cookNames[i%len(cookNames)], i),
			Bio:      bios[rand.Intn(len(bios))],
		}
		if err := user.SetPassword("password123"); err != nil {
			return nil, fmt.Errorf("hashing seed password: %w", err)
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("creating user %q: %w", user.Username, err)
		}
		users = append(users, user)
	}
	log.Printf("Seeded %d users", len(users))
	return users, nil
}

// SeedRecipes creates n recipes spread across the given users.
func (s *Seeder) SeedRecipes(users []models.User, n int) error {
	if len(users) == 0 {
		return fmt.Errorf("no users to own recipes")
	}
	for i := 0; i < n; i++ {
		recipe := models.Recipe{
			Title:             recipeTitles[rand.Intn(len(recipeTitles))],
			Instructions:      recipeInstructions[rand.Intn(len(recipeInstructions))],
			MinutesToComplete: 5 + rand.Intn(86),
			UserID:            users[rand.Intn(len(users))].ID,
		}
		if err := s.db.Create(&recipe).Error; err != nil {
			return fmt.Errorf("creating recipe %q: %w", recipe.Title, err)
		}
	}
	log.Printf("Seeded %d recipes", n)
	return nil
}
