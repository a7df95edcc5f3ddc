package schedules

import (
	"errors"

	keycloakauth "github.com/JorgeSaicoski/keycloak-auth"
	"github.com/JorgeSaicoski/microservice-commons/responses"
	"github.com/JorgeSaicoski/workforce-tracker/internal/services/schedule"
	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleService *schedule.ScheduleService
}

func NewScheduleHandler(scheduleService *schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

func (h *ScheduleHandler) GetWeek(c *gin.Context) {
	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	staffUserID := userID
	if override := c.Query("staffUserId"); override != "" {
		staffUserID = override
	}

	entries, err := h.scheduleService.GetWeek(staffUserID)
	if err != nil {
		responses.InternalError(c, err.Error())
		return
	}

	responses.Success(c, "Schedule retrieved successfully", ScheduleEntriesToResponse(entries))
}

func (h *ScheduleHandler) UpsertWeek(c *gin.Context) {
	var req UpsertWeekRequest
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

	entries, err := h.scheduleService.UpsertWeek(staffUserID, dayRequestsToInputs(req.Days))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrUnknownDay),
			errors.Is(err, schedule.ErrBadTimeOfDay):
			responses.BadRequest(c, err.Error())
		default:
			responses.InternalError(c, err.Error())
		}
		return
	}

	responses.Success(c, "Schedule updated successfully", ScheduleEntriesToResponse(entries))
}

func (h *ScheduleHandler) SetTimezone(c *gin.Context) {
	var req SetTimezoneRequest
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

	profile, err := h.scheduleService.SetTimezone(staffUserID, req.Timezone)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrUnknownTimezone):
			responses.BadRequest(c, err.Error())
		case errors.Is(err, schedule.ErrProfileNotFound):
			responses.NotFound(c, err.Error())
		default:
			responses.InternalError(c, err.Error())
		}
		return
	}

	responses.Success(c, "Timezone updated successfully", ProfileToResponse(profile))
}
