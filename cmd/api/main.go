package main

import (
	"context"
	"go-marketplace-backend/config"
	_ "go-marketplace-backend/docs" // Important for Swagger
	v1 "go-marketplace-backend/internal/delivery/http/v1"
	"go-marketplace-backend/internal/repository/postgres"
	"go-marketplace-backend/internal/usecase"
	"go-marketplace-backend/pkg/database"
	"go-marketplace-backend/pkg/email"
	"go-marketplace-backend/pkg/logger"
	"go-marketplace-backend/pkg/redis"
	"go-marketplace-backend/pkg/validation"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           Marketplace Backend API
// @version         1.0
// @description     Backend for a two-sided services marketplace using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting marketplace backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting falls back to in-memory when unavailable)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	professionalRepo := postgres.NewProfessionalRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	bidRepo := postgres.NewBidRepository(dbPool)
	notificationRepo := postgres.NewNotificationRepository(dbPool)

	// 6. Setup Email Service
	emailService := email.NewService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - lifecycle emails will be skipped")
	}

	// 7. Register custom validators on gin's binding validator
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 8. Setup UseCases
	notificationUC := usecase.NewNotificationUsecase(applicationRepo, notificationRepo, emailService, cfg.FrontendURL, cfg.AdminEmail)
	authUC := usecase.NewAuthUsecase(userRepo, cfg.JWTSecret, time.Duration(cfg.AuthTokenTTLHours)*time.Hour)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, notificationUC, time.Duration(cfg.SignupTokenTTLHours)*time.Hour)
	professionalUC := usecase.NewProfessionalUsecase(professionalRepo)
	jobUC := usecase.NewJobUsecase(jobRepo)
	bidUC := usecase.NewBidUsecase(bidRepo, jobRepo, professionalRepo)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:         authUC,
		ApplicationUC:  applicationUC,
		NotificationUC: notificationUC,
		JobUC:          jobUC,
		BidUC:          bidUC,
		ProfessionalUC: professionalUC,
		Config:         cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
