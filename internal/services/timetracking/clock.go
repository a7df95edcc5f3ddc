package timetracking

import (
	"fmt"
	"time"

	"github.com/JorgeSaicoski/workforce-tracker/internal/db"
	"github.com/JorgeSaicoski/workforce-tracker/internal/shift"
)

// ClockInResult carries what the handler needs beyond the entry itself:
// whether the event was a night-shift crossover (so the caller can say
// "clocked in for Thursday's night shift") and whether the break
// scheduler prompt should be shown.
type ClockInResult struct {
	Entry              *db.TimeEntry
	IsNightShift       bool
	ShowBreakScheduler bool
}

// ClockOutResult bundles the closed entry with the break total that was
// deducted from it.
type ClockOutResult struct {
	Entry        *db.TimeEntry
	BreakMinutes int
}

// ClockIn opens a time entry for the shift the current instant resolves
// to. Preconditions short-circuit in order: no open entry, no entry for
// the resolved shift date yet, and a workday schedule must exist for the
// resolved day.
func (s *TimeTrackingService) ClockIn(userID string, lateReason *string) (*ClockInResult, error) {
	profile, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}
	loc := s.location(profile)

	byDay, lookup, err := s.scheduleSet(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	res := shift.Resolve(lookup, loc, now)

	if open, err := s.openEntry(userID); err != nil {
		return nil, err
	} else if open != nil {
		return nil, ErrAlreadyClockedIn
	}

	var existing []db.TimeEntry
	if err := s.entryRepo.FindWhere(&existing,
		"staff_user_id = ? AND shift_date = ?", userID, res.ShiftDate); err != nil {
		return nil, fmt.Errorf("query shift entries: %w", err)
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("already clocked in for %s's shift: %w", res.ShiftDayOfWeek, ErrShiftAlreadyLogged)
	}

	schedule, ok := byDay[res.ShiftDayOfWeek]
	if !ok || !schedule.IsWorkday {
		return nil, fmt.Errorf("%w: %s", ErrNoScheduleForDay, res.ShiftDayOfWeek)
	}

	entry := &db.TimeEntry{
		StaffUserID:    userID,
		ClockIn:        now.In(loc),
		ShiftDate:      res.ShiftDate,
		ShiftDayOfWeek: res.ShiftDayOfWeek,
		LateReason:     lateReason,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if schedule.StartTime != "" {
		if tod, err := shift.ParseTimeOfDay(schedule.StartTime); err == nil {
			expected := shift.At(res.ShiftDate, tod, loc)
			entry.ExpectedClockIn = &expected
			entry.WasLate, entry.LateBy, entry.WasEarly, entry.EarlyBy = clockInDeltas(now.In(loc), expected)
		}
	}

	if err := s.entryRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("create time entry: %w", err)
	}

	var shiftBreaks []db.Break
	if err := s.breakRepo.FindWhere(&shiftBreaks,
		"staff_user_id = ? AND shift_date = ?", userID, res.ShiftDate); err != nil {
		return nil, fmt.Errorf("query shift breaks: %w", err)
	}

	log.Info("clock-in", "userID", userID,
		"shiftDay", res.ShiftDayOfWeek, "nightShift", res.IsNightShift,
		"wasLate", entry.WasLate, "lateBy", entry.LateBy)

	return &ClockInResult{
		Entry:              entry,
		IsNightShift:       res.IsNightShift,
		ShowBreakScheduler: len(shiftBreaks) == 0,
	}, nil
}

// ClockOut closes the open entry, deducting break time and comparing the
// actual end against the scheduled one. Staying past the expected end is
// never flagged; only leaving early is.
func (s *TimeTrackingService) ClockOut(userID string, reason string, notes *string) (*ClockOutResult, error) {
	entry, err := s.openEntry(userID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotClockedIn
	}

	breaks, err := s.entryBreaks(entry.ID)
	if err != nil {
		return nil, err
	}
	for _, b := range breaks {
		if b.ActualStart != nil && b.ActualEnd == nil {
			return nil, ErrBreakStillOpen
		}
	}

	profile, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}
	loc := s.location(profile)

	now := time.Now().In(loc)
	breakMinutes := 0
	for _, b := range breaks {
		breakMinutes += b.DurationMinutes
	}

	entry.ClockOut = &now
	entry.ClockOutReason = &reason
	entry.Notes = notes
	entry.TotalHours = netHours(entry.ClockIn, now, breakMinutes)

	byDay, _, err := s.scheduleSet(userID)
	if err != nil {
		return nil, err
	}
	if schedule, ok := byDay[entry.ShiftDayOfWeek]; ok {
		if expected := expectedClockOutAt(entry.ShiftDate, schedule.StartTime, schedule.EndTime, loc); expected != nil {
			entry.ExpectedClockOut = expected
			if now.Before(*expected) {
				entry.WasEarlyClockOut = true
				entry.EarlyClockOutBy = shift.MinutesApart(now, *expected)
			}
		}
	}

	entry.WorkedFullShift = !entry.WasLate && !entry.WasEarlyClockOut
	entry.UpdatedAt = time.Now()

	if err := s.entryRepo.Update(entry); err != nil {
		return nil, fmt.Errorf("update time entry: %w", err)
	}

	log.Info("clock-out", "userID", userID,
		"totalHours", entry.TotalHours, "breakMinutes", breakMinutes,
		"earlyClockOut", entry.WasEarlyClockOut, "workedFullShift", entry.WorkedFullShift)

	return &ClockOutResult{Entry: entry, BreakMinutes: breakMinutes}, nil
}

// clockInDeltas compares the actual clock-in against the expected one at
// whole-minute granularity. A positive difference is lateness, a negative
// one earliness; exact equality sets neither flag.
func clockInDeltas(actual, expected time.Time) (wasLate bool, lateBy int, wasEarly bool, earlyBy int) {
	switch {
	case actual.After(expected):
		return true, shift.MinutesApart(actual, expected), false, 0
	case actual.Before(expected):
		return false, 0, true, shift.MinutesApart(actual, expected)
	default:
		return false, 0, false, 0
	}
}

// expectedClockOutAt derives the scheduled end instant for a shift date.
// When the end hour is before the start hour the shift crosses midnight
// and the end lands on the following day. Nil when the end time is
// missing or unparseable.
func expectedClockOutAt(shiftDate time.Time, startTime, endTime string, loc *time.Location) *time.Time {
	endTOD, err := shift.ParseTimeOfDay(endTime)
	if err != nil {
		return nil
	}

	date := shiftDate
	if startTOD, err := shift.ParseTimeOfDay(startTime); err == nil && endTOD.Hour < startTOD.Hour {
		date = date.AddDate(0, 0, 1)
	}

	expected := shift.At(date, endTOD, loc)
	return &expected
}

// netHours is the session span minus break minutes, in hours.
func netHours(clockIn, clockOut time.Time, breakMinutes int) float64 {
	return clockOut.Sub(clockIn).Hours() - float64(breakMinutes)/60.0
}
