package scores

import (
	"errors"
	"time"

	keycloakauth "github.com/JorgeSaicoski/keycloak-auth"
	"github.com/JorgeSaicoski/microservice-commons/responses"
	"github.com/JorgeSaicoski/workforce-tracker/internal/services/scoring"
	"github.com/gin-gonic/gin"
)

type ScoreHandler struct {
	scoreService *scoring.ScoreService
}

func NewScoreHandler(scoreService *scoring.ScoreService) *ScoreHandler {
	return &ScoreHandler{
		scoreService: scoreService,
	}
}

// GenerateScore computes (or recomputes) the daily score for one staff
// day. The staff and date default to the caller and today.
func (h *ScoreHandler) GenerateScore(c *gin.Context) {
	var req GenerateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
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

	score, err := h.scoreService.GenerateDailyScore(c.Request.Context(), staffUserID, date)
	if err != nil {
		responses.InternalError(c, err.Error())
		return
	}

	responses.Success(c, "Daily score generated successfully", DailyScoreToResponse(score))
}

func (h *ScoreHandler) GetScore(c *gin.Context) {
	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	date, err := dateFromQuery(c)
	if err != nil {
		responses.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	score, err := h.scoreService.GetScore(staffFromQuery(c, userID), date)
	if err != nil {
		if errors.Is(err, scoring.ErrScoreNotFound) {
			responses.NotFound(c, err.Error())
			return
		}
		responses.InternalError(c, err.Error())
		return
	}

	responses.Success(c, "Score retrieved successfully", DailyScoreToResponse(score))
}

func (h *ScoreHandler) GetScoreRange(c *gin.Context) {
	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	rangeName := c.DefaultQuery("range", "week")

	endDate, err := dateFromQuery(c)
	if err != nil {
		responses.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	records, averages, err := h.scoreService.GetScoreRange(staffFromQuery(c, userID), endDate, rangeName)
	if err != nil {
		if errors.Is(err, scoring.ErrInvalidRange) {
			responses.BadRequest(c, err.Error())
			return
		}
		responses.InternalError(c, err.Error())
		return
	}

	responses.Success(c, "Score range retrieved successfully", RangeToResponse(rangeName, records, averages))
}

// staffFromQuery lets an upstream caller read another staff member's
// scores, the same override the schedules endpoints take.
func staffFromQuery(c *gin.Context, userID string) string {
	if override := c.Query("staffUserId"); override != "" {
		return override
	}
	return userID
}

// dateFromQuery reads an optional YYYY-MM-DD date, defaulting to today.
func dateFromQuery(c *gin.Context) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), nil
	}
	return time.Parse(dateLayout, raw)
}
