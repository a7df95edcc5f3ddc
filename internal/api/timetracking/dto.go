package timetracking

import (
	"time"

	"github.com/JorgeSaicoski/workforce-tracker/internal/db"
	"github.com/JorgeSaicoski/workforce-tracker/internal/services/timetracking"
)

// Request DTOs

type ClockInRequest struct {
	LateReason *string `json:"lateReason"`
}

type ClockOutRequest struct {
	Reason string  `json:"reason" binding:"required"`
	Notes  *string `json:"notes"`
}

type BreakItem struct {
	Type           string `json:"type" binding:"required"`
	ScheduledStart string `json:"scheduledStart" binding:"required"`
	ScheduledEnd   string `json:"scheduledEnd" binding:"required"`
}

type ScheduleBreaksRequest struct {
	TimeEntryID uint        `json:"timeEntryId" binding:"required"`
	Breaks      []BreakItem `json:"breaks" binding:"required,min=1,dive"`
}

type StartBreakRequest struct {
	BreakID uint `json:"breakId" binding:"required"`
}

// Response DTOs

type TimeEntryResponse struct {
	ID               uint            `json:"id"`
	StaffUserID      string          `json:"staffUserId"`
	ClockIn          time.Time       `json:"clockIn"`
	ClockOut         *time.Time      `json:"clockOut"`
	ShiftDate        string          `json:"shiftDate"` // YYYY-MM-DD
	ShiftDayOfWeek   string          `json:"shiftDayOfWeek"`
	ExpectedClockIn  *time.Time      `json:"expectedClockIn"`
	ExpectedClockOut *time.Time      `json:"expectedClockOut"`
	WasLate          bool            `json:"wasLate"`
	LateBy           int             `json:"lateBy"`
	LateReason       *string         `json:"lateReason"`
	WasEarly         bool            `json:"wasEarly"`
	EarlyBy          int             `json:"earlyBy"`
	WasEarlyClockOut bool            `json:"wasEarlyClockOut"`
	EarlyClockOutBy  int             `json:"earlyClockOutBy"`
	WorkedFullShift  bool            `json:"workedFullShift"`
	TotalHours       float64         `json:"totalHours"`
	BreaksScheduled  bool            `json:"breaksScheduled"`
	ClockOutReason   *string         `json:"clockOutReason"`
	Notes            *string         `json:"notes"`
	Breaks           []BreakResponse `json:"breaks,omitempty"`
}

type BreakResponse struct {
	ID              uint       `json:"id"`
	TimeEntryID     uint       `json:"timeEntryId"`
	Type            string     `json:"type"`
	ScheduledStart  string     `json:"scheduledStart"`
	ScheduledEnd    string     `json:"scheduledEnd"`
	ActualStart     *time.Time `json:"actualStart"`
	ActualEnd       *time.Time `json:"actualEnd"`
	DurationMinutes int        `json:"durationMinutes"`
	ShiftDate       string     `json:"shiftDate"`
	ShiftDayOfWeek  string     `json:"shiftDayOfWeek"`
}

type ClockInResponse struct {
	TimeEntry          TimeEntryResponse `json:"timeEntry"`
	WasLate            bool              `json:"wasLate"`
	LateBy             int               `json:"lateBy"`
	WasEarly           bool              `json:"wasEarly"`
	EarlyBy            int               `json:"earlyBy"`
	IsNightShift       bool              `json:"isNightShift"`
	ShiftDayOfWeek     string            `json:"shiftDayOfWeek"`
	ShowBreakScheduler bool              `json:"showBreakScheduler"`
}

type ClockOutResponse struct {
	TimeEntry        TimeEntryResponse `json:"timeEntry"`
	TotalHours       float64           `json:"totalHours"`
	BreakMinutes     int               `json:"breakMinutes"`
	WasEarlyClockOut bool              `json:"wasEarlyClockOut"`
	EarlyClockOutBy  int               `json:"earlyClockOutBy"`
	WorkedFullShift  bool              `json:"workedFullShift"`
}

type ScheduleResponse struct {
	DayOfWeek string `json:"dayOfWeek"`
	IsWorkday bool   `json:"isWorkday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	ShiftType string `json:"shiftType"`
}

type StatusResponse struct {
	ClockedIn      bool               `json:"clockedIn"`
	OnBreak        bool               `json:"onBreak"`
	IsNightShift   bool               `json:"isNightShift"`
	ShiftDayOfWeek string             `json:"shiftDayOfWeek"`
	ShiftDate      string             `json:"shiftDate"`
	Schedule       *ScheduleResponse  `json:"schedule"`
	OpenEntry      *TimeEntryResponse `json:"openEntry"`
	ActiveBreak    *BreakResponse     `json:"activeBreak"`
}

// Conversion helpers

const dateLayout = "2006-01-02"

func TimeEntryToResponse(entry *db.TimeEntry) TimeEntryResponse {
	response := TimeEntryResponse{
		ID:               entry.ID,
		StaffUserID:      entry.StaffUserID,
		ClockIn:          entry.ClockIn,
		ClockOut:         entry.ClockOut,
		ShiftDate:        entry.ShiftDate.Format(dateLayout),
		ShiftDayOfWeek:   entry.ShiftDayOfWeek,
		ExpectedClockIn:  entry.ExpectedClockIn,
		ExpectedClockOut: entry.ExpectedClockOut,
		WasLate:          entry.WasLate,
		LateBy:           entry.LateBy,
		LateReason:       entry.LateReason,
		WasEarly:         entry.WasEarly,
		EarlyBy:          entry.EarlyBy,
		WasEarlyClockOut: entry.WasEarlyClockOut,
		EarlyClockOutBy:  entry.EarlyClockOutBy,
		WorkedFullShift:  entry.WorkedFullShift,
		TotalHours:       entry.TotalHours,
		BreaksScheduled:  entry.BreaksScheduled,
		ClockOutReason:   entry.ClockOutReason,
		Notes:            entry.Notes,
	}
	for _, b := range entry.Breaks {
		response.Breaks = append(response.Breaks, BreakToResponse(&b))
	}
	return response
}

func TimeEntriesToResponse(entries []db.TimeEntry) []TimeEntryResponse {
	responses := make([]TimeEntryResponse, len(entries))
	for i := range entries {
		responses[i] = TimeEntryToResponse(&entries[i])
	}
	return responses
}

func BreakToResponse(b *db.Break) BreakResponse {
	return BreakResponse{
		ID:              b.ID,
		TimeEntryID:     b.TimeEntryID,
		Type:            b.Type,
		ScheduledStart:  b.ScheduledStart,
		ScheduledEnd:    b.ScheduledEnd,
		ActualStart:     b.ActualStart,
		ActualEnd:       b.ActualEnd,
		DurationMinutes: b.DurationMinutes,
		ShiftDate:       b.ShiftDate.Format(dateLayout),
		ShiftDayOfWeek:  b.ShiftDayOfWeek,
	}
}

func BreaksToResponse(breaks []db.Break) []BreakResponse {
	responses := make([]BreakResponse, len(breaks))
	for i := range breaks {
		responses[i] = BreakToResponse(&breaks[i])
	}
	return responses
}

func StatusToResponse(status *timetracking.ShiftStatus) StatusResponse {
	response := StatusResponse{
		ClockedIn:      status.OpenEntry != nil,
		OnBreak:        status.ActiveBreak != nil,
		IsNightShift:   status.Resolution.IsNightShift,
		ShiftDayOfWeek: status.Resolution.ShiftDayOfWeek,
		ShiftDate:      status.Resolution.ShiftDate.Format(dateLayout),
	}
	if status.Schedule != nil {
		response.Schedule = &ScheduleResponse{
			DayOfWeek: status.Schedule.DayOfWeek,
			IsWorkday: status.Schedule.IsWorkday,
			StartTime: status.Schedule.StartTime,
			EndTime:   status.Schedule.EndTime,
			ShiftType: status.Schedule.ShiftType,
		}
	}
	if status.OpenEntry != nil {
		entry := TimeEntryToResponse(status.OpenEntry)
		response.OpenEntry = &entry
	}
	if status.ActiveBreak != nil {
		active := BreakToResponse(status.ActiveBreak)
		response.ActiveBreak = &active
	}
	return response
}
