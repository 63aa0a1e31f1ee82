package types

import "time"

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserProfileResponse is a user with their recipes expanded. Unbounded by
// design: every recipe the user owns is included.
type UserProfileResponse struct {
	ID       uint             `json:"id"`
	Username string           `json:"username"`
	Email    string           `json:"email"`
	Recipes  []RecipeResponse `json:"recipes"`
}

// RecipeResponse is a recipe with its reviews expanded.
type RecipeResponse struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Ingredients string           `json:"ingredients"`
	Steps       string           `json:"steps"`
	ImageURL    string           `json:"image_url"`
	Category    string           `json:"category"`
	UserID      uint             `json:"user_id"`
	Reviews     []ReviewResponse `json:"reviews"`
}

type ReviewResponse struct {
	ID        uint      `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Timestamp time.Time `json:"timestamp"`
	UserID    uint      `json:"user_id"`
	RecipeID  uint      `json:"recipe_id"`
}
