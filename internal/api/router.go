package api

import (
	"github.com/gin-gonic/gin"
	"github.com/motifworks/motif-api/internal/api/handlers"
	apimiddleware "github.com/motifworks/motif-api/internal/api/middleware"
	"github.com/motifworks/motif-api/internal/config"
	"github.com/motifworks/motif-api/internal/metrics"
)

func SetupRouter(cfg *config.Config, cw *metrics.Client, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking())

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Health check
	router.GET("/health", handlers.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// Auth: either trust the gateway headers or run open
	auth := apimiddleware.NoAuth()
	if cfg.IsGatewayMode() {
		auth = apimiddleware.GatewayAuth()
	}

	// API routes v1
	v1 := router.Group("/api/v1")
	v1.Use(auth)
	{
		compileHandler := handlers.NewCompileHandler(cfg, cw)
		v1.POST("/compile", compileHandler.Compile)
	}

	return router
}
