// File: sanyukt/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sanyukt/config"
	"sanyukt/database"
	userRepoPkg "sanyukt/database/repository/user"
	"sanyukt/handlers"
	"sanyukt/middleware"
	"sanyukt/routes"
	"sanyukt/services/audience"
	"sanyukt/services/auth"
	"sanyukt/services/profile"
	"sanyukt/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.FirebaseInit()
	utils.StartHealthMonitor(utils.GetAuthCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	profileService := &profile.DefaultProfileService{
		Repo:      userRepo,
		Checklist: profile.DefaultChecklist,
	}
	audienceService := &audience.DefaultAudienceService{
		Repo: userRepo,
	}
	authService := &auth.DefaultAuthService{
		Repo:      userRepo,
		Verifier:  utils.AuthClient,
		Checklist: profile.DefaultChecklist,
		TokenTTL:  7 * 24 * time.Hour,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:     handlers.NewAuthHandler(authService),
		User:     handlers.NewUserHandler(profileService),
		Audience: handlers.NewAudienceHandler(audienceService),
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
