package routes

import (
	"net/http"

	"savora/auth"
	"savora/community"
	"savora/export"
	"savora/favorites"
	"savora/media"
	"savora/middleware"
	"savora/moderation"
	"savora/notify"
	"savora/ratelim"
	"savora/recipes"
	"savora/reviews"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/recipepic/*filepath", http.Dir("static/recipepic"))
}

func AddAuthRoutes(router *httprouter.Router, h *auth.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(h.Register))
	router.POST("/api/auth/login", rl.Limit(h.Login))
}

func AddRecipeRoutes(router *httprouter.Router, h *recipes.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/recipes", h.GetRecipes)
	router.GET("/api/filters", h.GetFilterState)
	router.GET("/api/recipes/:id", h.GetRecipe)
	router.POST("/api/recipes", rl.Limit(middleware.OptionalAuth(h.CreateRecipe)))
	router.PUT("/api/recipes/:id", rl.Limit(middleware.OptionalAuth(h.UpdateRecipe)))
	router.DELETE("/api/recipes/:id", middleware.Authenticate(h.DeleteRecipe))
}

func AddAdminRoutes(router *httprouter.Router, h *moderation.Handler) {
	router.GET("/api/admin/recipes", middleware.RequireAdmin(h.GetAllRecipes))
	router.GET("/api/admin/approvals", middleware.RequireAdmin(h.GetPending))
	router.POST("/api/admin/recipes", middleware.RequireAdmin(h.SaveRecipe))
	router.POST("/api/admin/recipes/:id/approve", middleware.RequireAdmin(h.ApproveRecipe))
	router.POST("/api/admin/recipes/:id/reject", middleware.RequireAdmin(h.RejectRecipe))
	router.DELETE("/api/admin/recipes/:id", middleware.RequireAdmin(h.DeleteRecipe))
	router.GET("/api/admin/analytics", middleware.RequireAdmin(h.GetAnalytics))
}

func AddReviewsRoutes(router *httprouter.Router, h *reviews.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/reviews/:recipeid", h.GetReviews)
	router.POST("/api/reviews/:recipeid", rl.Limit(middleware.Authenticate(h.UpsertReview)))
	router.DELETE("/api/reviews/:recipeid", middleware.Authenticate(h.DeleteMyReview))
}

func AddFavoritesRoutes(router *httprouter.Router, h *favorites.Handler) {
	router.GET("/api/favorites", h.GetFavorites)
	router.POST("/api/favorites/:recipeid/toggle", middleware.OptionalAuth(h.ToggleFavorite))
}

func AddCommunityRoutes(router *httprouter.Router, h *community.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/likes/:recipeid", middleware.OptionalAuth(h.GetLikes))
	router.POST("/api/likes/:recipeid/toggle", middleware.Authenticate(h.ToggleLike))
	router.GET("/api/comments/:recipeid", h.GetComments)
	router.POST("/api/comments/:recipeid", rl.Limit(middleware.Authenticate(h.CreateComment)))
	router.PUT("/api/comments/:recipeid/:commentid", middleware.Authenticate(h.UpdateComment))
	router.DELETE("/api/comments/:recipeid/:commentid", middleware.Authenticate(h.DeleteComment))
	router.GET("/api/follows/:chefid", h.GetFollowers)
	router.POST("/api/follows/:chefid/toggle", middleware.Authenticate(h.ToggleFollow))
}

func AddMediaRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/media/recipe-image", rl.Limit(middleware.Authenticate(media.UploadRecipeImage)))
}

func AddExportRoutes(router *httprouter.Router, h *export.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/recipes/:id/print", rl.Limit(h.PrintRecipe))
	router.GET("/api/recipes/:id/qr", rl.Limit(h.ShareQR))
}

func AddNotifyRoutes(router *httprouter.Router, hub *notify.Hub) {
	router.GET("/ws/changes", hub.ServeWS)
}
