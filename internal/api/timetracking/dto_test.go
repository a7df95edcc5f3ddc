package timetracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JorgeSaicoski/workforce-tracker/internal/db"
	"github.com/JorgeSaicoski/workforce-tracker/internal/services/timetracking"
	"github.com/JorgeSaicoski/workforce-tracker/internal/shift"
)

func TestTimeEntryToResponse(t *testing.T) {
	clockIn := time.Date(2025, 8, 20, 22, 5, 0, 0, time.UTC)
	clockOut := clockIn.Add(8 * time.Hour)
	reason := "traffic"

	entry := &db.TimeEntry{
		ID:             7,
		StaffUserID:    "staff-1",
		ClockIn:        clockIn,
		ClockOut:       &clockOut,
		ShiftDate:      time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC),
		ShiftDayOfWeek: "Wednesday",
		WasLate:        true,
		LateBy:         5,
		LateReason:     &reason,
		TotalHours:     7.5,
		Breaks: []db.Break{
			{ID: 3, TimeEntryID: 7, Type: db.BreakTypeLunch, ScheduledStart: "1:00 AM", ScheduledEnd: "2:00 AM", ShiftDate: time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)},
		},
	}

	response := TimeEntryToResponse(entry)

	assert.Equal(t, uint(7), response.ID)
	assert.Equal(t, "2025-08-20", response.ShiftDate)
	assert.Equal(t, "Wednesday", response.ShiftDayOfWeek)
	assert.True(t, response.WasLate)
	assert.Equal(t, 5, response.LateBy)
	require.NotNil(t, response.LateReason)
	assert.Equal(t, "traffic", *response.LateReason)
	assert.Equal(t, 7.5, response.TotalHours)
	require.Len(t, response.Breaks, 1)
	assert.Equal(t, db.BreakTypeLunch, response.Breaks[0].Type)
	assert.Equal(t, "2025-08-20", response.Breaks[0].ShiftDate)
}

func TestStatusToResponse(t *testing.T) {
	start := time.Date(2025, 8, 21, 2, 0, 0, 0, time.UTC)

	t.Run("idle staff with schedule", func(t *testing.T) {
		status := &timetracking.ShiftStatus{
			Resolution: shift.Resolution{
				IsNightShift:   true,
				ShiftDayOfWeek: "Wednesday",
				ShiftDate:      time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC),
			},
			Schedule: &db.WorkScheduleEntry{
				DayOfWeek: "Wednesday",
				IsWorkday: true,
				StartTime: "10:00 PM",
				EndTime:   "6:00 AM",
				ShiftType: db.ShiftTypeNight,
			},
		}

		response := StatusToResponse(status)

		assert.False(t, response.ClockedIn)
		assert.False(t, response.OnBreak)
		assert.True(t, response.IsNightShift)
		assert.Equal(t, "2025-08-20", response.ShiftDate)
		require.NotNil(t, response.Schedule)
		assert.Equal(t, db.ShiftTypeNight, response.Schedule.ShiftType)
		assert.Nil(t, response.OpenEntry)
		assert.Nil(t, response.ActiveBreak)
	})

	t.Run("clocked in on break", func(t *testing.T) {
		status := &timetracking.ShiftStatus{
			Resolution: shift.Resolution{
				ShiftDayOfWeek: "Thursday",
				ShiftDate:      time.Date(2025, 8, 21, 0, 0, 0, 0, time.UTC),
			},
			OpenEntry:   &db.TimeEntry{ID: 11, StaffUserID: "staff-1", ClockIn: start, ShiftDate: time.Date(2025, 8, 21, 0, 0, 0, 0, time.UTC)},
			ActiveBreak: &db.Break{ID: 4, TimeEntryID: 11, Type: db.BreakTypeMorning, ActualStart: &start, ShiftDate: time.Date(2025, 8, 21, 0, 0, 0, 0, time.UTC)},
		}

		response := StatusToResponse(status)

		assert.True(t, response.ClockedIn)
		assert.True(t, response.OnBreak)
		require.NotNil(t, response.OpenEntry)
		assert.Equal(t, uint(11), response.OpenEntry.ID)
		require.NotNil(t, response.ActiveBreak)
		assert.Equal(t, db.BreakTypeMorning, response.ActiveBreak.Type)
	})
}
