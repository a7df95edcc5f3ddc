package metrics

import (
	"github.com/JorgeSaicoski/workforce-tracker/internal/api"
	"github.com/JorgeSaicoski/workforce-tracker/internal/services/scoring"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all performance metric related routes
func RegisterRoutes(router *gin.RouterGroup, scoreService *scoring.ScoreService) {
	handler := NewMetricsHandler(scoreService)

	metricsGroup := router.Group("/metrics")
	metricsGroup.Use(
		api.LoggingMiddleware(),
		api.AuthMiddleware(),
	)
	{
		metricsGroup.POST("", handler.PushMetrics)
		metricsGroup.GET("", handler.GetMetrics)
	}
}
