package http

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/souqly/voicesearch/config"
	"github.com/souqly/voicesearch/internal/observability/metrics"
)

// SetupRouter creates and configures the Gin router. m may be nil.
func SetupRouter(cfg *config.Config, handler *Handler, m *metrics.Metrics, logger zerolog.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RequestIDMiddleware())
	router.Use(RecoveryMiddleware(logger))
	router.Use(LoggerMiddleware(logger))
	if m != nil {
		router.Use(m.Middleware())
	}
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)
	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst))
	{
		voice := v1.Group("/voice")
		{
			voice.POST("/search", handler.VoiceSearch)
			voice.POST("/keywords", handler.ExtractKeywords)
			voice.POST("/respond", handler.Respond)
		}
	}

	return router
}
