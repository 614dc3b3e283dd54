// File: urbpaddle/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"urbpaddle/config"
	"urbpaddle/cron"
	"urbpaddle/database"
	matchRepoPkg "urbpaddle/database/repository/match"
	profileRepoPkg "urbpaddle/database/repository/profile"
	"urbpaddle/handlers"
	"urbpaddle/middleware"
	"urbpaddle/routes"
	"urbpaddle/services/notification"
	"urbpaddle/services/review"
	"urbpaddle/services/tasks"
	"urbpaddle/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitReviewCache()
	utils.FirebaseInit()
	tasks.InitClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	profileRepo := profileRepoPkg.NewMongoProfileRepo()
	matchRepo := matchRepoPkg.NewMongoMatchRepo()

	// services.
	pushChannel := notification.NewFCMPushChannel(utils.FCMClient)
	notificationService, err := notification.NewDefaultNotificationService(profileRepo, matchRepo, pushChannel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	reviewStore := review.NewRedisRecordStore(utils.GetReviewCacheClient())
	promptChannel := review.NewClientPromptChannel(config.AppConfig.ReviewPromptEnabled, config.AppConfig.StoreListingURL)
	reviewService, err := review.NewDefaultReviewService(reviewStore, reviewStore, promptChannel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize review service: %v", err)
	}

	// Background reminder worker.
	cron.InitReminderWorker(notificationService)

	// Health monitoring.
	utils.StartHealthMonitor([]*redis.Client{utils.GetReviewCacheClient()}, database.MongoClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Notification: handlers.NewNotificationHandler(notificationService),
		Review:       handlers.NewReviewHandler(reviewService),
		Profile:      handlers.NewProfileHandler(profileRepo),
		Match:        handlers.NewMatchHandler(matchRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
