package timetracking

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/JorgeSaicoski/pgconnect"

	"github.com/JorgeSaicoski/workforce-tracker/internal/db"
	"github.com/JorgeSaicoski/workforce-tracker/internal/shift"
)

var log = slog.Default().With(
	slog.String("layer", "service"),
	slog.String("service", "TimeTrackingService"),
)

// Sentinel errors, matched by handlers to pick the HTTP status. State
// conflicts and missing configuration fail loudly before any write.
var (
	ErrAlreadyClockedIn   = errors.New("already clocked in - clock out of the current session first")
	ErrShiftAlreadyLogged = errors.New("one session per shift")
	ErrNoScheduleForDay   = errors.New("no schedule found for shift day")
	ErrNotClockedIn       = errors.New("not currently clocked in")
	ErrBreakStillOpen     = errors.New("end your active break before clocking out")

	ErrEntryNotFound          = errors.New("time entry not found")
	ErrNotEntryOwner          = errors.New("time entry belongs to another staff member")
	ErrEntryClosed            = errors.New("cannot schedule breaks after clocking out")
	ErrBreaksAlreadyScheduled = errors.New("breaks already scheduled for this shift")

	ErrBreakNotFound     = errors.New("break not found for the open session")
	ErrBreakAlreadyTaken = errors.New("break was already taken")
	ErrAlreadyOnBreak    = errors.New("already on break - end the current break first")
	ErrNoActiveBreak     = errors.New("not currently on break")
)

type TimeTrackingService struct {
	profileRepo  repository[db.StaffProfile]
	scheduleRepo repository[db.WorkScheduleEntry]
	entryRepo    repository[db.TimeEntry]
	breakRepo    repository[db.Break]
}

func NewTimeTrackingService(database *pgconnect.DB) *TimeTrackingService {
	return &TimeTrackingService{
		profileRepo:  newPGRepository[db.StaffProfile](database),
		scheduleRepo: newPGRepository[db.WorkScheduleEntry](database),
		entryRepo:    newPGRepository[db.TimeEntry](database),
		breakRepo:    newPGRepository[db.Break](database),
	}
}

// Profile returns the staff profile for userID, creating one with the
// default timezone on first contact.
func (s *TimeTrackingService) Profile(userID string) (*db.StaffProfile, error) {
	var profiles []db.StaffProfile
	if err := s.profileRepo.FindWhere(&profiles, "user_id = ?", userID); err != nil {
		return nil, fmt.Errorf("query staff profile: %w", err)
	}
	if len(profiles) > 0 {
		profile := profiles[0]
		return &profile, nil
	}

	now := time.Now()
	profile := &db.StaffProfile{
		UserID:    userID,
		Timezone:  db.DefaultTimezone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		return nil, fmt.Errorf("create staff profile: %w", err)
	}
	log.Info("profile:created", "userID", userID, "timezone", profile.Timezone)
	return profile, nil
}

// location resolves the profile's IANA zone, falling back to UTC when the
// stored name no longer resolves against the zone database.
func (s *TimeTrackingService) location(profile *db.StaffProfile) *time.Location {
	loc, err := time.LoadLocation(profile.Timezone)
	if err != nil {
		log.Warn("profile:bad-timezone", "userID", profile.UserID, "timezone", profile.Timezone)
		return time.UTC
	}
	return loc
}

// scheduleSet loads all of a staff member's schedule rows and returns
// both a day-of-week index and the resolver lookup over it.
func (s *TimeTrackingService) scheduleSet(userID string) (map[string]db.WorkScheduleEntry, shift.Lookup, error) {
	var entries []db.WorkScheduleEntry
	if err := s.scheduleRepo.FindWhere(&entries, "staff_user_id = ?", userID); err != nil {
		return nil, nil, fmt.Errorf("query work schedule: %w", err)
	}

	byDay := make(map[string]db.WorkScheduleEntry, len(entries))
	for _, entry := range entries {
		byDay[entry.DayOfWeek] = entry
	}

	lookup := func(dayOfWeek string) (shift.DaySchedule, bool) {
		entry, ok := byDay[dayOfWeek]
		if !ok {
			return shift.DaySchedule{}, false
		}
		return shift.DaySchedule{StartTime: entry.StartTime, IsWorkday: entry.IsWorkday}, true
	}
	return byDay, lookup, nil
}

// openEntry returns the staff member's open time entry, or nil when none
// exists.
func (s *TimeTrackingService) openEntry(userID string) (*db.TimeEntry, error) {
	var entries []db.TimeEntry
	if err := s.entryRepo.FindWhere(&entries, "staff_user_id = ? AND clock_out IS NULL", userID); err != nil {
		return nil, fmt.Errorf("query open time entry: %w", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}
	entry := entries[0]
	return &entry, nil
}

// activeBreak returns the entry's break that has been started but not
// ended, or nil.
func (s *TimeTrackingService) activeBreak(entryID uint) (*db.Break, error) {
	var breaks []db.Break
	if err := s.breakRepo.FindWhere(&breaks,
		"time_entry_id = ? AND actual_start IS NOT NULL AND actual_end IS NULL", entryID); err != nil {
		return nil, fmt.Errorf("query active break: %w", err)
	}
	if len(breaks) == 0 {
		return nil, nil
	}
	active := breaks[0]
	return &active, nil
}

func (s *TimeTrackingService) entryBreaks(entryID uint) ([]db.Break, error) {
	var breaks []db.Break
	if err := s.breakRepo.FindWhere(&breaks, "time_entry_id = ?", entryID); err != nil {
		return nil, fmt.Errorf("query breaks: %w", err)
	}
	return breaks, nil
}
