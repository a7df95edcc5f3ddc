package schedules

import (
	"github.com/JorgeSaicoski/workforce-tracker/internal/api"
	"github.com/JorgeSaicoski/workforce-tracker/internal/services/schedule"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all work schedule related routes
func RegisterRoutes(router *gin.RouterGroup, scheduleService *schedule.ScheduleService) {
	handler := NewScheduleHandler(scheduleService)

	schedulesGroup := router.Group("/schedules")
	schedulesGroup.Use(
		api.LoggingMiddleware(),
		api.AuthMiddleware(),
	)
	{
		schedulesGroup.GET("", handler.GetWeek)
		schedulesGroup.PUT("", handler.UpsertWeek)
		schedulesGroup.PUT("/timezone", handler.SetTimezone)
	}
}
