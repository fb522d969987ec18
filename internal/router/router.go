package router

import (
	"turiapp/internal/handlers"
	"turiapp/internal/middleware"
	"turiapp/internal/models"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Meta       *handlers.MetaHandler
	Auth       *handlers.AuthHandler
	Users      *handlers.UserHandler
	Persons    *handlers.PersonHandler
	Places     *handlers.PlaceHandler
	Categories *handlers.CategoryHandler
	Reviews    *handlers.ReviewHandler
	Comments   *handlers.CommentHandler
	Favorites  *handlers.FavoriteHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/health", h.Meta.Health)
	r.GET("/swagger.json", h.Meta.Capabilities)
	r.GET("/docs", h.Meta.Capabilities)

	api := r.Group("/api")
	api.GET("", h.Meta.Overview)

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)

		auth.GET("/me", middleware.RequireAuth(), h.Auth.Me)
		auth.GET("/verify", middleware.RequireAuth(), h.Auth.Verify)
		auth.POST("/change-password", middleware.RequireAuth(), h.Auth.ChangePassword)
	}

	users := api.Group("/users")
	{
		// alias for register, same handler and semantics
		users.POST("", h.Auth.Register)
		users.GET("", middleware.RequireRoles(models.RoleAdmin), h.Users.List)
		users.GET("/:id", h.Users.Get)
		users.GET("/:id/stats", h.Users.Stats)
		users.PUT("/:id", middleware.RequireAuth(), h.Users.Update)
		users.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), h.Users.Deactivate)
	}

	persons := api.Group("/persons")
	{
		persons.POST("", middleware.RequireAuth(), h.Persons.Create)
		persons.GET("/me", middleware.RequireAuth(), h.Persons.Me)
		persons.PUT("/me", middleware.RequireAuth(), h.Persons.Update)
		persons.GET("/:id", h.Persons.Get)
	}

	places := api.Group("/places")
	{
		places.GET("", h.Places.List)
		places.GET("/nearby", h.Places.Nearby)
		places.GET("/popular", h.Places.Popular)
		places.GET("/featured", h.Places.Featured)
		places.GET("/:id", h.Places.Get)
		places.GET("/:id/stats", h.Places.Stats)

		places.POST("", middleware.RequireAuth(), h.Places.Create)
		places.PUT("/:id", middleware.RequireAuth(), h.Places.Update)
		places.DELETE("/:id", middleware.RequireAuth(), h.Places.Delete)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", h.Categories.List)
		categories.GET("/:id", h.Categories.Get)
		categories.GET("/:id/places", h.Places.ListByCategory)

		admin := categories.Group("", middleware.RequireRoles(models.RoleAdmin))
		admin.POST("", h.Categories.Create)
		admin.PUT("/reorder", h.Categories.Reorder)
		admin.PUT("/:id", h.Categories.Update)
		admin.DELETE("/:id", h.Categories.Delete)
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("", h.Reviews.List)
		reviews.GET("/:id", h.Reviews.Get)

		reviews.POST("", middleware.RequireAuth(), h.Reviews.Create)
		reviews.PUT("/:id", middleware.RequireAuth(), h.Reviews.Update)
		reviews.DELETE("/:id", middleware.RequireAuth(), h.Reviews.Delete)
		reviews.POST("/:id/helpful", middleware.RequireAuth(), h.Reviews.MarkHelpful)
	}

	comments := api.Group("/comments")
	{
		comments.GET("", h.Comments.Thread)
		comments.GET("/:id", h.Comments.Get)

		comments.POST("", middleware.RequireAuth(), h.Comments.Create)
		comments.PUT("/:id", middleware.RequireAuth(), h.Comments.Update)
		comments.DELETE("/:id", middleware.RequireAuth(), h.Comments.Delete)
		comments.POST("/:id/moderate", middleware.RequireRoles(models.RoleModerator, models.RoleAdmin), h.Comments.Moderate)
	}

	favorites := api.Group("/favorites", middleware.RequireAuth())
	{
		favorites.GET("", h.Favorites.List)
		favorites.POST("", h.Favorites.Add)
		favorites.POST("/bulk", h.Favorites.Bulk)
		favorites.POST("/place/:id/toggle", h.Favorites.Toggle)
		favorites.DELETE("/:id", h.Favorites.Remove)
	}
}
