package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tastebook-dev/tastebook/internal/models"
	"github.com/tastebook-dev/tastebook/internal/types"
)

func reviewResponse(review models.Review) types.ReviewResponse {
	return types.ReviewResponse{
		ID:        review.ID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		Timestamp: review.CreatedAt.UTC(),
		UserID:    review.UserID,
		RecipeID:  review.RecipeID,
	}
}

func recipeResponse(recipe models.Recipe, reviews []models.Review) types.RecipeResponse {
	response := types.RecipeResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		Ingredients: recipe.Ingredients,
		Steps:       recipe.Steps,
		ImageURL:    recipe.ImageURL,
		Category:    recipe.Category,
		UserID:      recipe.UserID,
		Reviews:     make([]types.ReviewResponse, 0, len(reviews)),
	}

	for _, review := range reviews {
		response.Reviews = append(response.Reviews, reviewResponse(review))
	}

	return response
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)

	if err != nil {
		return 0, false
	}

	return uint(id), true
}
