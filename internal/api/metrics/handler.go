package metrics

import (
	"time"

	keycloakauth "github.com/JorgeSaicoski/keycloak-auth"
	"github.com/JorgeSaicoski/microservice-commons/responses"
	"github.com/JorgeSaicoski/workforce-tracker/internal/services/scoring"
	"github.com/gin-gonic/gin"
)

type MetricsHandler struct {
	scoreService *scoring.ScoreService
}

func NewMetricsHandler(scoreService *scoring.ScoreService) *MetricsHandler {
	return &MetricsHandler{
		scoreService: scoreService,
	}
}

// PushMetrics accepts a daily activity snapshot, replacing any earlier
// push for the same staff day.
func (h *MetricsHandler) PushMetrics(c *gin.Context) {
	var req PushMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	staffUserID := userID
	if req.StaffUserID != nil && *req.StaffUserID != "" {
		staffUserID = *req.StaffUserID
	}

	date := time.Now()
	if req.Date != nil && *req.Date != "" {
		parsed, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			responses.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	metric, err := h.scoreService.UpsertMetrics(staffUserID, date, req.toSnapshot())
	if err != nil {
		responses.InternalError(c, err.Error())
		return
	}

	responses.Success(c, "Metrics recorded successfully", MetricToResponse(metric))
}

func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			responses.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	metric, err := h.scoreService.GetMetrics(userID, date)
	if err != nil {
		responses.InternalError(c, err.Error())
		return
	}
	if metric == nil {
		responses.NotFound(c, "No metrics recorded for that date")
		return
	}

	responses.Success(c, "Metrics retrieved successfully", MetricToResponse(metric))
}
