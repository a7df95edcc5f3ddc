package timetracking

import (
	"errors"
	"fmt"
	"time"

	keycloakauth "github.com/JorgeSaicoski/keycloak-auth"
	"github.com/JorgeSaicoski/microservice-commons/responses"
	"github.com/JorgeSaicoski/workforce-tracker/internal/services/timetracking"
	"github.com/gin-gonic/gin"
)

type TimeTrackingHandler struct {
	timeService *timetracking.TimeTrackingService
}

func NewTimeTrackingHandler(timeService *timetracking.TimeTrackingService) *TimeTrackingHandler {
	return &TimeTrackingHandler{
		timeService: timeService,
	}
}

func (h *TimeTrackingHandler) ClockIn(c *gin.Context) {
	var req ClockInRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		responses.BadRequest(c, err.Error())
		return
	}

	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	result, err := h.timeService.ClockIn(userID, req.LateReason)
	if err != nil {
		switch {
		case errors.Is(err, timetracking.ErrAlreadyClockedIn),
			errors.Is(err, timetracking.ErrShiftAlreadyLogged),
			errors.Is(err, timetracking.ErrNoScheduleForDay):
			responses.BadRequest(c, err.Error())
		default:
			responses.InternalError(c, err.Error())
		}
		return
	}

	response := ClockInResponse{
		TimeEntry:          TimeEntryToResponse(result.Entry),
		WasLate:            result.Entry.WasLate,
		LateBy:             result.Entry.LateBy,
		WasEarly:           result.Entry.WasEarly,
		EarlyBy:            result.Entry.EarlyBy,
		IsNightShift:       result.IsNightShift,
		ShiftDayOfWeek:     result.Entry.ShiftDayOfWeek,
		ShowBreakScheduler: result.ShowBreakScheduler,
	}
	responses.Created(c, clockInMessage(result), response)
}

func clockInMessage(result *timetracking.ClockInResult) string {
	if result.IsNightShift {
		return fmt.Sprintf("Clocked in for %s's night shift", result.Entry.ShiftDayOfWeek)
	}
	return fmt.Sprintf("Clocked in for %s's shift", result.Entry.ShiftDayOfWeek)
}

func (h *TimeTrackingHandler) ClockOut(c *gin.Context) {
	var req ClockOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	result, err := h.timeService.ClockOut(userID, req.Reason, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, timetracking.ErrNotClockedIn),
			errors.Is(err, timetracking.ErrBreakStillOpen):
			responses.BadRequest(c, err.Error())
		default:
			responses.InternalError(c, err.Error())
		}
		return
	}

	response := ClockOutResponse{
		TimeEntry:        TimeEntryToResponse(result.Entry),
		TotalHours:       result.Entry.TotalHours,
		BreakMinutes:     result.BreakMinutes,
		WasEarlyClockOut: result.Entry.WasEarlyClockOut,
		EarlyClockOutBy:  result.Entry.EarlyClockOutBy,
		WorkedFullShift:  result.Entry.WorkedFullShift,
	}
	responses.Success(c, "Clocked out successfully", response)
}

func (h *TimeTrackingHandler) ScheduleBreaks(c *gin.Context) {
	var req ScheduleBreaksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	inputs := make([]timetracking.BreakInput, len(req.Breaks))
	for i, item := range req.Breaks {
		inputs[i] = timetracking.BreakInput{
			Type:           item.Type,
			ScheduledStart: item.ScheduledStart,
			ScheduledEnd:   item.ScheduledEnd,
		}
	}

	breaks, err := h.timeService.ScheduleBreaks(userID, req.TimeEntryID, inputs)
	if err != nil {
		switch {
		case errors.Is(err, timetracking.ErrEntryNotFound):
			responses.NotFound(c, err.Error())
		case errors.Is(err, timetracking.ErrNotEntryOwner):
			responses.Forbidden(c, err.Error())
		case errors.Is(err, timetracking.ErrEntryClosed),
			errors.Is(err, timetracking.ErrBreaksAlreadyScheduled):
			responses.BadRequest(c, err.Error())
		default:
			responses.InternalError(c, err.Error())
		}
		return
	}

	responses.Created(c, "Breaks scheduled successfully", BreaksToResponse(breaks))
}

func (h *TimeTrackingHandler) StartBreak(c *gin.Context) {
	var req StartBreakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	started, err := h.timeService.StartBreak(userID, req.BreakID)
	if err != nil {
		switch {
		case errors.Is(err, timetracking.ErrBreakNotFound):
			responses.NotFound(c, err.Error())
		case errors.Is(err, timetracking.ErrNotClockedIn),
			errors.Is(err, timetracking.ErrAlreadyOnBreak),
			errors.Is(err, timetracking.ErrBreakAlreadyTaken):
			responses.BadRequest(c, err.Error())
		default:
			responses.InternalError(c, err.Error())
		}
		return
	}

	responses.Success(c, "Break started", BreakToResponse(started))
}

func (h *TimeTrackingHandler) EndBreak(c *gin.Context) {
	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	ended, err := h.timeService.EndBreak(userID)
	if err != nil {
		switch {
		case errors.Is(err, timetracking.ErrNotClockedIn),
			errors.Is(err, timetracking.ErrNoActiveBreak):
			responses.BadRequest(c, err.Error())
		default:
			responses.InternalError(c, err.Error())
		}
		return
	}

	responses.Success(c, "Break ended", BreakToResponse(ended))
}

func (h *TimeTrackingHandler) GetStatus(c *gin.Context) {
	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	status, err := h.timeService.Status(userID)
	if err != nil {
		responses.InternalError(c, err.Error())
		return
	}

	responses.Success(c, "Status retrieved successfully", StatusToResponse(status))
}

func (h *TimeTrackingHandler) GetHistory(c *gin.Context) {
	userID, exists := keycloakauth.GetUserID(c)
	if !exists {
		responses.Unauthorized(c, "User not authenticated")
		return
	}

	startDate, err := parseDateParam(c.Query("startDate"))
	if err != nil {
		responses.BadRequest(c, "Invalid startDate format, expected YYYY-MM-DD")
		return
	}
	endDate, err := parseDateParam(c.Query("endDate"))
	if err != nil {
		responses.BadRequest(c, "Invalid endDate format, expected YYYY-MM-DD")
		return
	}

	entries, err := h.timeService.History(userID, startDate, endDate)
	if err != nil {
		responses.InternalError(c, err.Error())
		return
	}

	responses.Success(c, "History retrieved successfully", TimeEntriesToResponse(entries))
}

func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
