package handlers

import (
	"net/http"

	"github.com/adithyasudev/entry-voucher-forge/cmd/docs"
	portssvc "github.com/adithyasudev/entry-voucher-forge/internal/core/ports/services"
	"github.com/adithyasudev/entry-voucher-forge/internal/middleware"
	"github.com/adithyasudev/entry-voucher-forge/internal/platform/config"
	"github.com/adithyasudev/entry-voucher-forge/internal/printing"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes. submitLimiter may be nil to
// leave the submit route unthrottled.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	store portssvc.RecordStoreSvcFacade,
	submitLimiter *limiter.Limiter,
) {
	r.SetHTMLTemplate(printing.HTMLTemplate())

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, store, submitLimiter)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	store portssvc.RecordStoreSvcFacade,
	submitLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1")

	var submitGuards []gin.HandlerFunc
	if submitLimiter != nil {
		submitGuards = append(submitGuards, middleware.RateLimit(submitLimiter))
	}

	registerVoucherRoutes(v1, store, cfg.CompanyName, submitGuards...)
	registerItemRoutes(v1, store)
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
