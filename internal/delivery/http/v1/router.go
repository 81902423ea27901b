package v1

import (
	"go-marketplace-backend/config"
	"go-marketplace-backend/internal/delivery/http/middleware"
	"go-marketplace-backend/internal/delivery/http/response"
	"go-marketplace-backend/internal/domain"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC         domain.AuthUsecase
	ApplicationUC  domain.ApplicationUsecase
	NotificationUC domain.NotificationUsecase
	JobUC          domain.JobUsecase
	BidUC          domain.BidUsecase
	ProfessionalUC domain.ProfessionalUsecase
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	// Auth endpoints get a stricter, fail-closed limit
	authLimited := r.Group("")
	authLimited.Use(middleware.RateLimitMiddleware(middleware.AuthRateLimitConfig(deps.Config.RateLimitLoginThreshold, window)))

	// Legacy routes kept at their original paths
	legacy := r.Group("/api/professional")
	NewNotificationHandler(legacy, deps.NotificationUC)

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Public routes: application submission and the signup-token flow
	NewApplicationHandler(legacy, v1, deps.ApplicationUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config, deps.AuthUC))
	{
		NewAuthHandler(authLimited, protected, deps.AuthUC)
		NewJobHandler(v1, protected, deps.JobUC)
		NewBidHandler(protected, deps.BidUC)
		NewProfessionalHandler(protected, deps.ProfessionalUC)
		NewAdminHandler(protected, deps.ApplicationUC)
	}

	return r
}
