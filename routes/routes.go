package routes

import (
	"net/http"
	"time"

	"taly/handlers"
	"taly/middleware"
	"taly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers registration and the public booking-page
// endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("", hb.ClaimUsernameHandler)

		// Protected routes (require a session)
		protected := api.Group("")
		protected.Use(middleware.SessionAuthMiddleware(hb.SessionRepo))
		protected.POST("/time-intervals", hb.SetTimeIntervalsHandler)

		// Public booking-page endpoints, keyed by username.
		api.GET("/:username", hb.GetUserHandler)
		api.GET("/:username/blocked-dates", hb.BlockedDatesHandler)
		api.GET("/:username/availability", hb.DayAvailabilityHandler)
		api.GET("/:username/calendar", hb.MonthGridHandler)
		api.POST("/:username/schedule", hb.ConfirmSchedulingHandler)
	}
}

// RegisterProfileRoutes registers the authenticated profile endpoint. Only
// PUT mutates; every other method answers 405 via the global NoMethod
// handler.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profile")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.SessionRepo))
		api.PUT("", hb.UpdateProfileHandler)
	}
}

// RegisterAuthRoutes registers the OAuth endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.GET("/google", hb.GoogleLoginHandler)
		api.GET("/google/callback", hb.GoogleCallbackHandler)
		api.DELETE("/session", hb.SignOutHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Non-mutating methods on mutation-only endpoints get 405, not 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	RegisterUserRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterHealthRoute(r)
}
