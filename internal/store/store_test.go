package store

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastebook-dev/tastebook/db"
	"github.com/tastebook-dev/tastebook/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(database))

	return database
}

func createUser(t *testing.T, users *UserStore, username, email string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "digest",
	}
	require.NoError(t, users.Create(user))

	return user
}

func TestUserStoreConflict(t *testing.T) {
	users := NewUserStore(newTestDB(t))

	createUser(t, users, "alice", "alice@x.com")

	err := users.Create(&models.User{Username: "alice", Email: "other@x.com", PasswordHash: "digest"})
	assert.ErrorIs(t, err, ErrConflict)

	err = users.Create(&models.User{Username: "other", Email: "alice@x.com", PasswordHash: "digest"})
	assert.ErrorIs(t, err, ErrConflict)

	// No second record was created
	var count int64
	require.NoError(t, users.db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUserStoreFindByIdentifier(t *testing.T) {
	users := NewUserStore(newTestDB(t))

	created := createUser(t, users, "alice", "alice@x.com")

	byUsername, err := users.FindByIdentifier("alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byUsername.ID)

	byEmail, err := users.FindByIdentifier("alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = users.FindByIdentifier("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecipeStoreRoundTrip(t *testing.T) {
	database := newTestDB(t)
	users := NewUserStore(database)
	recipes := NewRecipeStore(database)

	owner := createUser(t, users, "alice", "alice@x.com")

	fields := RecipeFields{
		Title:       "Soup",
		Ingredients: "water,salt",
		Steps:       "boil",
		ImageURL:    "http://img/soup.png",
		Category:    "starter",
	}

	created, err := recipes.Create(owner.ID, fields)
	require.NoError(t, err)

	fetched, err := recipes.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, fields.Title, fetched.Title)
	assert.Equal(t, fields.Ingredients, fetched.Ingredients)
	assert.Equal(t, fields.Steps, fetched.Steps)
	assert.Equal(t, fields.ImageURL, fetched.ImageURL)
	assert.Equal(t, fields.Category, fetched.Category)
	assert.Equal(t, owner.ID, fetched.UserID)
}

func TestRecipeStoreNotFound(t *testing.T) {
	database := newTestDB(t)
	recipes := NewRecipeStore(database)

	_, err := recipes.Get(999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = recipes.Update(999, 1, RecipeFields{Title: "x", Ingredients: "y", Steps: "z"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = recipes.Delete(999, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecipeStoreOwnership(t *testing.T) {
	database := newTestDB(t)
	users := NewUserStore(database)
	recipes := NewRecipeStore(database)

	alice := createUser(t, users, "alice", "alice@x.com")
	bob := createUser(t, users, "bob", "bob@x.com")

	created, err := recipes.Create(alice.ID, RecipeFields{Title: "Soup", Ingredients: "water", Steps: "boil"})
	require.NoError(t, err)

	_, err = recipes.Update(created.ID, bob.ID, RecipeFields{Title: "Stolen", Ingredients: "x", Steps: "y"})
	assert.ErrorIs(t, err, ErrForbidden)

	err = recipes.Delete(created.ID, bob.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// Record unchanged after rejected mutations
	fetched, err := recipes.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Soup", fetched.Title)

	updated, err := recipes.Update(created.ID, alice.ID, RecipeFields{Title: "Stew", Ingredients: "beef", Steps: "simmer"})
	require.NoError(t, err)
	assert.Equal(t, "Stew", updated.Title)

	require.NoError(t, recipes.Delete(created.ID, alice.ID))

	_, err = recipes.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecipeStoreListForUser(t *testing.T) {
	database := newTestDB(t)
	users := NewUserStore(database)
	recipes := NewRecipeStore(database)

	alice := createUser(t, users, "alice", "alice@x.com")
	bob := createUser(t, users, "bob", "bob@x.com")

	_, err := recipes.Create(alice.ID, RecipeFields{Title: "Soup", Ingredients: "x", Steps: "y"})
	require.NoError(t, err)
	_, err = recipes.Create(bob.ID, RecipeFields{Title: "Stew", Ingredients: "x", Steps: "y"})
	require.NoError(t, err)
	_, err = recipes.Create(alice.ID, RecipeFields{Title: "Cake", Ingredients: "x", Steps: "y"})
	require.NoError(t, err)

	all, err := recipes.List()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := recipes.ListForUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "Soup", mine[0].Title)
	assert.Equal(t, "Cake", mine[1].Title)
}

func TestReviewStoreTargetMustExist(t *testing.T) {
	database := newTestDB(t)
	reviews := NewReviewStore(database)

	_, err := reviews.Create(999, 1, 5, "great")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewStoreListForRecipe(t *testing.T) {
	database := newTestDB(t)
	users := NewUserStore(database)
	recipes := NewRecipeStore(database)
	reviews := NewReviewStore(database)

	alice := createUser(t, users, "alice", "alice@x.com")

	soup, err := recipes.Create(alice.ID, RecipeFields{Title: "Soup", Ingredients: "x", Steps: "y"})
	require.NoError(t, err)
	stew, err := recipes.Create(alice.ID, RecipeFields{Title: "Stew", Ingredients: "x", Steps: "y"})
	require.NoError(t, err)

	_, err = reviews.Create(soup.ID, alice.ID, 5, "first")
	require.NoError(t, err)
	_, err = reviews.Create(stew.ID, alice.ID, 1, "other recipe")
	require.NoError(t, err)
	_, err = reviews.Create(soup.ID, alice.ID, 3, "second")
	require.NoError(t, err)

	listed, err := reviews.ListForRecipe(soup.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "first", listed[0].Comment)
	assert.Equal(t, "second", listed[1].Comment)
	assert.False(t, listed[0].CreatedAt.IsZero())
}

func TestRecipeStoreDeleteCascadesReviews(t *testing.T) {
	database := newTestDB(t)
	users := NewUserStore(database)
	recipes := NewRecipeStore(database)
	reviews := NewReviewStore(database)

	alice := createUser(t, users, "alice", "alice@x.com")

	soup, err := recipes.Create(alice.ID, RecipeFields{Title: "Soup", Ingredients: "x", Steps: "y"})
	require.NoError(t, err)

	_, err = reviews.Create(soup.ID, alice.ID, 5, "great")
	require.NoError(t, err)

	require.NoError(t, recipes.Delete(soup.ID, alice.ID))

	orphaned, err := reviews.ListForRecipe(soup.ID)
	require.NoError(t, err)
	assert.Empty(t, orphaned)
}
