package server

import "ladle/internal/models"

// Response shaping is done through explicit view structs rather than
// serialization rules walking the object graph. The password hash has no
// field here at all, and recipe owners carry no recipe list, which breaks
// the User/Recipe cycle statically.

type userView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
}

type recipeView struct {
	ID                uint     `json:"id"`
	Title             string   `json:"title"`
	Instructions      string   `json:"instructions"`
	MinutesToComplete int      `json:"minutes_to_complete"`
	UserID            uint     `json:"user_id"`
	User              userView `json:"user"`
}

func newUserView(u *models.User) userView {
	return userView{
		ID:       u.ID,
		Username: u.Username,
		Bio:      u.Bio,
		ImageURL: u.ImageURL,
	}
}

func newRecipeView(r *models.Recipe) recipeView {
	return recipeView{
		ID:                r.ID,
		Title:             r.Title,
		Instructions:      r.Instructions,
		MinutesToComplete: r.MinutesToComplete,
		UserID:            r.UserID,
		User:              newUserView(&r.User),
	}
}

func newRecipeViews(recipes []models.Recipe) []recipeView {
	views := make([]recipeView, 0, len(recipes))
	for i := range recipes {
		views = append(views, newRecipeView(&recipes[i]))
	}
	return views
}
