package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/fastpay_escrow/cmd/docs"
	portsrepo "github.com/SscSPs/fastpay_escrow/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fastpay_escrow/internal/core/ports/services"
	"github.com/SscSPs/fastpay_escrow/internal/middleware"
	"github.com/SscSPs/fastpay_escrow/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// idempotency may be nil, in which case Idempotency-Key headers are ignored.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	idempotency portsrepo.IdempotencyRepository,
) error {
	registerValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	loginLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("invalid login rate limit %q: %w", cfg.LoginRateLimit, err)
	}

	// Register public authentication routes
	public := r.Group("/api/v1")
	registerAuthRoutes(public, services.Auth, middleware.RateLimit(loginLimiter))

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, idempotency)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	idempotency portsrepo.IdempotencyRepository,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	if idempotency != nil {
		v1.Use(middleware.Idempotency(idempotency, cfg.IdempotencyTTL))
	}

	registerAccountRoutes(v1, services.Ledger)
	registerListingRoutes(v1, services.Listing)
	registerOfferRoutes(v1, services.Negotiation)
	registerEscrowRoutes(v1, services.Escrow)
	registerReviewQueueRoutes(v1, services.ReviewQueue)
	if services.Notification != nil {
		registerNotificationRoutes(v1, services.Notification)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
