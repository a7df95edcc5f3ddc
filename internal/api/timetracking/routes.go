package timetracking

import (
	"github.com/JorgeSaicoski/workforce-tracker/internal/api"
	"github.com/JorgeSaicoski/workforce-tracker/internal/services/timetracking"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all time tracking related routes
func RegisterRoutes(router *gin.RouterGroup, timeService *timetracking.TimeTrackingService) {
	handler := NewTimeTrackingHandler(timeService)

	timeGroup := router.Group("/time")
	timeGroup.Use(
		api.LoggingMiddleware(),
		api.AuthMiddleware(),
	)
	{
		// Clock events
		timeGroup.POST("/clock-in", handler.ClockIn)
		timeGroup.POST("/clock-out", handler.ClockOut)

		// Break management
		timeGroup.POST("/breaks/schedule", handler.ScheduleBreaks)
		timeGroup.POST("/breaks/start", handler.StartBreak)
		timeGroup.POST("/breaks/end", handler.EndBreak)

		// Shift status and history
		timeGroup.GET("/status", handler.GetStatus)
		timeGroup.GET("/history", handler.GetHistory)
	}
}
