package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/elitecrew/elite-crew-backend/cmd/docs"
	portssvc "github.com/elitecrew/elite-crew-backend/internal/core/ports/services"
	"github.com/elitecrew/elite-crew-backend/internal/middleware"
	"github.com/elitecrew/elite-crew-backend/internal/platform/config"
	s3platform "github.com/elitecrew/elite-crew-backend/internal/platform/s3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	s3Client *s3platform.Client,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", HealthCheck)

	// Register public routes (auth and contact form)
	registerAuthRoutes(r, cfg, services)
	registerContactRoutes(r, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, s3Client)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	s3Client *s3platform.Client,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Admin-only routes additionally pass through the role check
	admin := middleware.AdminRequired(services.User)

	// Delegate route registration to specific handlers, passing required services
	registerUserRoutes(v1, services.User, s3Client)
	registerProductRoutes(v1, admin, services, s3Client)
	registerServiceRoutes(v1, admin, services, s3Client)
	registerCategoryRoutes(v1, admin, services, s3Client)
	registerOrderRoutes(v1, admin, services)
	RegisterWalletRoutes(v1, admin, services)
	registerBlogRoutes(v1, admin, services, s3Client)
	registerPaymentRoutes(v1, services)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
