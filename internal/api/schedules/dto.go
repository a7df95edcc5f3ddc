package schedules

import (
	"github.com/JorgeSaicoski/workforce-tracker/internal/db"
	"github.com/JorgeSaicoski/workforce-tracker/internal/services/schedule"
)

// Request DTOs

type ScheduleDayRequest struct {
	DayOfWeek string `json:"dayOfWeek" binding:"required"`
	IsWorkday bool   `json:"isWorkday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	ShiftType string `json:"shiftType"`
}

type UpsertWeekRequest struct {
	StaffUserID *string              `json:"staffUserId"`
	Days        []ScheduleDayRequest `json:"days" binding:"required,min=1,dive"`
}

type SetTimezoneRequest struct {
	StaffUserID *string `json:"staffUserId"`
	Timezone    string  `json:"timezone" binding:"required"`
}

// Response DTOs

type ScheduleEntryResponse struct {
	ID        uint   `json:"id"`
	DayOfWeek string `json:"dayOfWeek"`
	IsWorkday bool   `json:"isWorkday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	ShiftType string `json:"shiftType"`
}

type ProfileResponse struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Timezone    string `json:"timezone"`
}

// Conversion helpers

func ScheduleEntryToResponse(entry *db.WorkScheduleEntry) ScheduleEntryResponse {
	return ScheduleEntryResponse{
		ID:        entry.ID,
		DayOfWeek: entry.DayOfWeek,
		IsWorkday: entry.IsWorkday,
		StartTime: entry.StartTime,
		EndTime:   entry.EndTime,
		ShiftType: entry.ShiftType,
	}
}

func ScheduleEntriesToResponse(entries []db.WorkScheduleEntry) []ScheduleEntryResponse {
	responses := make([]ScheduleEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ScheduleEntryToResponse(&entries[i])
	}
	return responses
}

func ProfileToResponse(profile *db.StaffProfile) ProfileResponse {
	return ProfileResponse{
		UserID:      profile.UserID,
		DisplayName: profile.DisplayName,
		Timezone:    profile.Timezone,
	}
}

func dayRequestsToInputs(days []ScheduleDayRequest) []schedule.DayInput {
	inputs := make([]schedule.DayInput, len(days))
	for i, day := range days {
		inputs[i] = schedule.DayInput{
			DayOfWeek: day.DayOfWeek,
			IsWorkday: day.IsWorkday,
			StartTime: day.StartTime,
			EndTime:   day.EndTime,
			ShiftType: day.ShiftType,
		}
	}
	return inputs
}
