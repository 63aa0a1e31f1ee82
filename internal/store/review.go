package store

import (
	"errors"

	"github.com/tastebook-dev/tastebook/internal/models"
	"gorm.io/gorm"
)

// ReviewStore holds review records. Reviews are immutable once created;
// there is no update or delete path.
type ReviewStore struct {
	db *gorm.DB
}

func NewReviewStore(db *gorm.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

// Create inserts a review against an existing recipe. Returns ErrNotFound
// when the target recipe is absent.
func (s *ReviewStore) Create(recipeID uint, authorID uint, rating int, comment string) (*models.Review, error) {
	var recipe models.Recipe

	err := s.db.First(&recipe, recipeID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	review := models.Review{
		Rating:   rating,
		Comment:  comment,
		UserID:   authorID,
		RecipeID: recipe.ID,
	}

	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}

	return &review, nil
}

// ListForRecipe returns the reviews attached to a recipe, in insertion order.
func (s *ReviewStore) ListForRecipe(recipeID uint) ([]models.Review, error) {
	var reviews []models.Review

	if err := s.db.Where("recipe_id = ?", recipeID).Order("id").Find(&reviews).Error; err != nil {
		return nil, err
	}

	return reviews, nil
}
