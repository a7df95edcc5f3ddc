package main

import (
	"github.com/JorgeSaicoski/microservice-commons/config"
	"github.com/JorgeSaicoski/microservice-commons/database"
	"github.com/JorgeSaicoski/microservice-commons/server"
	"github.com/JorgeSaicoski/microservice-commons/utils"
	"github.com/JorgeSaicoski/workforce-tracker/internal/api/metrics"
	"github.com/JorgeSaicoski/workforce-tracker/internal/api/schedules"
	"github.com/JorgeSaicoski/workforce-tracker/internal/api/scores"
	"github.com/JorgeSaicoski/workforce-tracker/internal/api/timetracking"
	clients "github.com/JorgeSaicoski/workforce-tracker/internal/client"
	"github.com/JorgeSaicoski/workforce-tracker/internal/db"
	scheduleService "github.com/JorgeSaicoski/workforce-tracker/internal/services/schedule"
	scoringService "github.com/JorgeSaicoski/workforce-tracker/internal/services/scoring"
	timetrackingService "github.com/JorgeSaicoski/workforce-tracker/internal/services/timetracking"
	"github.com/gin-gonic/gin"
)

func main() {
	server := server.NewServer(server.ServerOptions{
		ServiceName:    "workforce-tracker",
		ServiceVersion: "1.0.0",
		SetupRoutes:    setupRoutes,
	})
	server.Start()
}

func setupRoutes(router *gin.Engine, cfg *config.Config) {
	// Connect to database using microservice-commons
	dbConnection, err := database.ConnectWithConfig(cfg.DatabaseConfig)
	if err != nil {
		panic("Failed to connect to database: " + err.Error())
	}

	trackerURL := utils.GetEnv("ACTIVITY_TRACKER_URL", "http://localhost:8300/api/internal")

	trackerClient := clients.NewActivityTrackerHTTPClient(trackerURL)

	// Auto-migrate models
	if err := database.QuickMigrate(dbConnection,
		&db.StaffProfile{},
		&db.WorkScheduleEntry{},
		&db.TimeEntry{},
		&db.Break{},
		&db.PerformanceMetric{},
		&db.DailyScore{},
	); err != nil {
		panic("Failed to migrate database: " + err.Error())
	}

	// Initialize services
	timeService := timetrackingService.NewTimeTrackingService(dbConnection)
	scoreService := scoringService.NewScoreService(dbConnection, trackerClient)
	weekService := scheduleService.NewScheduleService(dbConnection)

	// Setup routes
	api := router.Group("/api")
	timetracking.RegisterRoutes(api, timeService)
	scores.RegisterRoutes(api, scoreService)
	schedules.RegisterRoutes(api, weekService)
	metrics.RegisterRoutes(api, scoreService)
}
