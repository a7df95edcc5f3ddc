package scores

import (
	"github.com/JorgeSaicoski/workforce-tracker/internal/api"
	"github.com/JorgeSaicoski/workforce-tracker/internal/services/scoring"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all daily score related routes
func RegisterRoutes(router *gin.RouterGroup, scoreService *scoring.ScoreService) {
	handler := NewScoreHandler(scoreService)

	scoresGroup := router.Group("/scores")
	scoresGroup.Use(
		api.LoggingMiddleware(),
		api.AuthMiddleware(),
	)
	{
		scoresGroup.POST("/generate", handler.GenerateScore)
		scoresGroup.GET("", handler.GetScore)
		scoresGroup.GET("/range", handler.GetScoreRange)
	}
}
