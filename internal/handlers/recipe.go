package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tastebook-dev/tastebook/internal/store"
	"github.com/tastebook-dev/tastebook/internal/types"
	"github.com/tastebook-dev/tastebook/internal/utils"
)

type CreateRecipeRequest struct {
	Title       string `json:"title" binding:"required"`
	Ingredients string `json:"ingredients" binding:"required"`
	Steps       string `json:"steps" binding:"required"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
}

type UpdateRecipeRequest struct {
	Title       string `json:"title" binding:"required"`
	Ingredients string `json:"ingredients" binding:"required"`
	Steps       string `json:"steps" binding:"required"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
}

type RecipeHandler struct {
	Recipes *store.RecipeStore
	Reviews *store.ReviewStore
}

func (h *RecipeHandler) CreateRecipe(ctx *gin.Context) {
	var body CreateRecipeRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipe, err := h.Recipes.Create(userID, store.RecipeFields{
		Title:       body.Title,
		Ingredients: body.Ingredients,
		Steps:       body.Steps,
		ImageURL:    body.ImageURL,
		Category:    body.Category,
	})

	if err != nil {
		log.Printf("Failed to create recipe: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipe"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Recipe created successfully",
		"recipe":  recipeResponse(*recipe, nil),
	})
}

// ListRecipes returns every recipe with its reviews expanded. No pagination;
// response size grows with the data set.
func (h *RecipeHandler) ListRecipes(ctx *gin.Context) {
	recipes, err := h.Recipes.List()

	if err != nil {
		log.Printf("Failed to list recipes: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipes"})
		return
	}

	response := make([]types.RecipeResponse, 0, len(recipes))

	for _, recipe := range recipes {
		reviews, err := h.Reviews.ListForRecipe(recipe.ID)

		if err != nil {
			log.Printf("Failed to list reviews for recipe %d: %v", recipe.ID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipes"})
			return
		}

		response = append(response, recipeResponse(recipe, reviews))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *RecipeHandler) GetRecipe(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	recipe, err := h.Recipes.Get(id)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		log.Printf("Failed to fetch recipe %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipe"})
		return
	}

	reviews, err := h.Reviews.ListForRecipe(recipe.ID)

	if err != nil {
		log.Printf("Failed to list reviews for recipe %d: %v", recipe.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipe"})
		return
	}

	ctx.JSON(http.StatusOK, recipeResponse(*recipe, reviews))
}

func (h *RecipeHandler) UpdateRecipe(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	var body UpdateRecipeRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipe, err := h.Recipes.Update(id, userID, store.RecipeFields{
		Title:       body.Title,
		Ingredients: body.Ingredients,
		Steps:       body.Steps,
		ImageURL:    body.ImageURL,
		Category:    body.Category,
	})

	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		case errors.Is(err, store.ErrForbidden):
			ctx.JSON(http.StatusForbidden, gin.H{"error": "You do not own this recipe"})
		default:
			log.Printf("Failed to update recipe %d: %v", id, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
		}
		return
	}

	reviews, err := h.Reviews.ListForRecipe(recipe.ID)

	if err != nil {
		log.Printf("Failed to list reviews for recipe %d: %v", recipe.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Recipe updated successfully",
		"recipe":  recipeResponse(*recipe, reviews),
	})
}

func (h *RecipeHandler) DeleteRecipe(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.Recipes.Delete(id, userID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		case errors.Is(err, store.ErrForbidden):
			ctx.JSON(http.StatusForbidden, gin.H{"error": "You do not own this recipe"})
		default:
			log.Printf("Failed to delete recipe %d: %v", id, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}
