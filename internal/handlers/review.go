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

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

type ReviewHandler struct {
	Reviews *store.ReviewStore
}

func (h *ReviewHandler) CreateReview(ctx *gin.Context) {
	recipeID, ok := parseIDParam(ctx, "id")

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	var body CreateReviewRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	review, err := h.Reviews.Create(recipeID, userID, body.Rating, body.Comment)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		log.Printf("Failed to create review: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Review created successfully",
		"review":  reviewResponse(*review),
	})
}

func (h *ReviewHandler) ListReviews(ctx *gin.Context) {
	recipeID, ok := parseIDParam(ctx, "id")

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	reviews, err := h.Reviews.ListForRecipe(recipeID)

	if err != nil {
		log.Printf("Failed to list reviews for recipe %d: %v", recipeID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reviews"})
		return
	}

	response := make([]types.ReviewResponse, 0, len(reviews))

	for _, review := range reviews {
		response = append(response, reviewResponse(review))
	}

	ctx.JSON(http.StatusOK, response)
}
