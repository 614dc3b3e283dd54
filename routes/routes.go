package routes

import (
	"net/http"
	"time"

	"urbpaddle/handlers"
	"urbpaddle/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterNotificationRoutes registers the push trigger surface.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.POST("/send", hb.Notification.SendPushHandler)
		api.POST("/reminders", hb.Notification.ScheduleReminderHandler)
	}
}

// RegisterReviewRoutes registers the review prompt gate endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/review")
	{
		api.POST("/init", hb.Review.InitHandler)
		api.POST("/action", hb.Review.ActionHandler)
		api.GET("/status", hb.Review.StatusHandler)
		api.POST("/evaluate", hb.Review.EvaluateHandler)
		api.POST("/reviewed", hb.Review.ReviewedHandler)
		api.DELETE("/reset", hb.Review.ResetHandler)
	}
}

// RegisterProfileRoutes registers profile and match management endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profiles")
	{
		api.POST("", hb.Profile.CreateProfileHandler)
		api.POST("/:id/devices", hb.Profile.RegisterDeviceHandler)
	}

	matches := r.Group("/api/matches")
	{
		matches.POST("", hb.Match.CreateMatchHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires CORS and all route groups.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", handlers.InstallationIDHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterNotificationRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterHealthRoute(r)
}
