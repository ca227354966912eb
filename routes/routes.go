package routes

import (
	"net/http"
	"time"

	"sanyukt/handlers"
	"sanyukt/middleware"
	"sanyukt/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the identity-provider login endpoint.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/auth")
	{
		api.POST("/google-login", hb.Auth.GoogleLoginHandler)
	}
}

// RegisterUserRoutes registers the member's own profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/user")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/profile", hb.User.GetProfileHandler)
		api.GET("/profile/options", hb.User.ProfileOptionsHandler)
		api.PUT("/profile/update", hb.User.UpdateProfileHandler)
	}
}

// RegisterAudienceRoutes registers the member-directory endpoints.
func RegisterAudienceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/audience")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/categories", hb.Audience.ListCategoriesHandler)
		api.GET("/users", hb.Audience.ListUsersHandler)
		api.GET("/users/:categoryId", hb.Audience.LegacyUsersHandler)
		api.GET("/user/:userId", hb.Audience.UserDetailHandler)
		api.GET("/stats", hb.Audience.StatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAudienceRoutes(r, hb)
}
