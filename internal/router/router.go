package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tastebook-dev/tastebook/internal/handlers"
	"github.com/tastebook-dev/tastebook/internal/middleware"
	"github.com/tastebook-dev/tastebook/internal/store"
	"github.com/tastebook-dev/tastebook/internal/types"
	"gorm.io/gorm"
)

// NewRouter wires the stores and handlers against the given database handle.
// The stores live for the process lifetime; nothing here is global.
func NewRouter(database *gorm.DB) *gin.Engine {
	users := store.NewUserStore(database)
	recipes := store.NewRecipeStore(database)
	reviews := store.NewReviewStore(database)

	authHandler := &handlers.AuthHandler{Users: users, Recipes: recipes, Reviews: reviews}
	recipeHandler := &handlers.RecipeHandler{Recipes: recipes, Reviews: reviews}
	reviewHandler := &handlers.ReviewHandler{Reviews: reviews}

	requireAuth := middleware.AuthMiddleware(users)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthCheck)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", requireAuth, authHandler.Me)
	}

	recipesGroup := r.Group("/recipes")
	{
		recipesGroup.GET("", recipeHandler.ListRecipes)
		recipesGroup.GET("/:id", recipeHandler.GetRecipe)
		recipesGroup.POST("", requireAuth, recipeHandler.CreateRecipe)
		recipesGroup.PUT("/:id", requireAuth, recipeHandler.UpdateRecipe)
		recipesGroup.DELETE("/:id", requireAuth, recipeHandler.DeleteRecipe)

		// Review endpoints
		recipesGroup.GET("/:id/reviews", reviewHandler.ListReviews)
		recipesGroup.POST("/:id/reviews", requireAuth, reviewHandler.CreateReview)
	}

	return r
}
