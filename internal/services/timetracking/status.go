package timetracking

import (
	"fmt"
	"sort"
	"time"

	"github.com/JorgeSaicoski/workforce-tracker/internal/db"
	"github.com/JorgeSaicoski/workforce-tracker/internal/shift"
)

// ShiftStatus is the live view of a staff member's current shift: the
// resolution every clock operation would use right now, the schedule row
// it maps to, and whatever session state is open.
type ShiftStatus struct {
	Resolution  shift.Resolution
	Schedule    *db.WorkScheduleEntry
	OpenEntry   *db.TimeEntry
	ActiveBreak *db.Break
}

// Status resolves the current shift through the same resolver clock-in
// and clock-out use, so the three views can never disagree about which
// shift "now" belongs to.
func (s *TimeTrackingService) Status(userID string) (*ShiftStatus, error) {
	profile, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}
	loc := s.location(profile)

	byDay, lookup, err := s.scheduleSet(userID)
	if err != nil {
		return nil, err
	}

	status := &ShiftStatus{
		Resolution: shift.Resolve(lookup, loc, time.Now()),
	}
	if schedule, ok := byDay[status.Resolution.ShiftDayOfWeek]; ok {
		status.Schedule = &schedule
	}

	entry, err := s.openEntry(userID)
	if err != nil {
		return nil, err
	}
	if entry != nil {
		status.OpenEntry = entry
		if active, err := s.activeBreak(entry.ID); err != nil {
			return nil, err
		} else if active != nil {
			status.ActiveBreak = active
		}
	}

	return status, nil
}

// History lists a staff member's time entries, optionally bounded by
// shift date, newest first, with their breaks attached.
func (s *TimeTrackingService) History(userID string, startDate, endDate *time.Time) ([]db.TimeEntry, error) {
	query := "staff_user_id = ?"
	args := []interface{}{userID}

	if startDate != nil {
		query += " AND shift_date >= ?"
		args = append(args, *startDate)
	}
	if endDate != nil {
		query += " AND shift_date <= ?"
		args = append(args, *endDate)
	}

	var entries []db.TimeEntry
	if err := s.entryRepo.FindWhere(&entries, query, args...); err != nil {
		return nil, fmt.Errorf("query time entries: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ShiftDate.After(entries[j].ShiftDate)
	})

	for i := range entries {
		breaks, err := s.entryBreaks(entries[i].ID)
		if err != nil {
			return nil, err
		}
		entries[i].Breaks = breaks
	}

	return entries, nil
}
