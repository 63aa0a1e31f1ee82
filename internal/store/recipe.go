package store

import (
	"errors"

	"github.com/tastebook-dev/tastebook/internal/models"
	"gorm.io/gorm"
)

// RecipeFields carries the caller-editable fields of a recipe. ImageURL and
// Category are optional and default to empty.
type RecipeFields struct {
	Title       string
	Ingredients string
	Steps       string
	ImageURL    string
	Category    string
}

// RecipeStore holds recipe records. Update and Delete enforce ownership:
// only the user recorded at creation time may mutate a recipe.
type RecipeStore struct {
	db *gorm.DB
}

func NewRecipeStore(db *gorm.DB) *RecipeStore {
	return &RecipeStore{db: db}
}

func (s *RecipeStore) Create(ownerID uint, fields RecipeFields) (*models.Recipe, error) {
	recipe := models.Recipe{
		Title:       fields.Title,
		Ingredients: fields.Ingredients,
		Steps:       fields.Steps,
		ImageURL:    fields.ImageURL,
		Category:    fields.Category,
		UserID:      ownerID,
	}

	if err := s.db.Create(&recipe).Error; err != nil {
		return nil, err
	}

	return &recipe, nil
}

func (s *RecipeStore) Get(id uint) (*models.Recipe, error) {
	var recipe models.Recipe

	err := s.db.First(&recipe, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &recipe, nil
}

// List returns every recipe in insertion order. No pagination.
func (s *RecipeStore) List() ([]models.Recipe, error) {
	var recipes []models.Recipe

	if err := s.db.Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}

	return recipes, nil
}

// ListForUser returns the recipes owned by the given user, in insertion order.
func (s *RecipeStore) ListForUser(userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe

	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}

	return recipes, nil
}

// Update replaces the editable fields of a recipe. Returns ErrNotFound when
// the id is absent and ErrForbidden when the requester is not the owner; the
// NotFound check comes first.
func (s *RecipeStore) Update(id uint, requesterID uint, fields RecipeFields) (*models.Recipe, error) {
	recipe, err := s.Get(id)

	if err != nil {
		return nil, err
	}

	if recipe.UserID != requesterID {
		return nil, ErrForbidden
	}

	recipe.Title = fields.Title
	recipe.Ingredients = fields.Ingredients
	recipe.Steps = fields.Steps
	recipe.ImageURL = fields.ImageURL
	recipe.Category = fields.Category

	if err := s.db.Save(recipe).Error; err != nil {
		return nil, err
	}

	return recipe, nil
}

// Delete removes a recipe and its reviews in one transaction. Same error
// contract as Update.
func (s *RecipeStore) Delete(id uint, requesterID uint) error {
	recipe, err := s.Get(id)

	if err != nil {
		return err
	}

	if recipe.UserID != requesterID {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.Review{}).Error; err != nil {
			return err
		}

		return tx.Delete(recipe).Error
	})
}
