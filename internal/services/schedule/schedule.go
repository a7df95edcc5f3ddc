package schedule

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
	slog.String("service", "ScheduleService"),
)

var (
	ErrUnknownDay      = errors.New("unknown day of week")
	ErrBadTimeOfDay    = errors.New("unparseable time of day")
	ErrUnknownTimezone = errors.New("unknown IANA timezone")
	ErrProfileNotFound = errors.New("staff profile not found")
)

var dayNames = map[string]bool{
	"Sunday": true, "Monday": true, "Tuesday": true, "Wednesday": true,
	"Thursday": true, "Friday": true, "Saturday": true,
}

// DayInput is one day's schedule in an upsert batch.
type DayInput struct {
	DayOfWeek string
	IsWorkday bool
	StartTime string
	EndTime   string
	ShiftType string
}

type ScheduleService struct {
	profileRepo  *pgconnect.Repository[db.StaffProfile]
	scheduleRepo *pgconnect.Repository[db.WorkScheduleEntry]
}

func NewScheduleService(database *pgconnect.DB) *ScheduleService {
	return &ScheduleService{
		profileRepo:  pgconnect.NewRepository[db.StaffProfile](database),
		scheduleRepo: pgconnect.NewRepository[db.WorkScheduleEntry](database),
	}
}

// GetWeek returns all schedule rows for a staff member.
func (s *ScheduleService) GetWeek(staffUserID string) ([]db.WorkScheduleEntry, error) {
	var entries []db.WorkScheduleEntry
	if err := s.scheduleRepo.FindWhere(&entries, "staff_user_id = ?", staffUserID); err != nil {
		return nil, fmt.Errorf("query work schedule: %w", err)
	}
	return entries, nil
}

// UpsertWeek validates and writes a batch of per-day schedule rows,
// replacing existing rows for the same days. Times are validated here, at
// the data-entry boundary, so the resolver never sees garbage it has to
// guess about.
func (s *ScheduleService) UpsertWeek(staffUserID string, days []DayInput) ([]db.WorkScheduleEntry, error) {
	for _, day := range days {
		if !dayNames[day.DayOfWeek] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDay, day.DayOfWeek)
		}
		if day.IsWorkday {
			for _, raw := range []string{day.StartTime, day.EndTime} {
				if _, err := shift.ParseTimeOfDay(raw); err != nil {
					return nil, fmt.Errorf("%w: %q for %s", ErrBadTimeOfDay, raw, day.DayOfWeek)
				}
			}
		}
	}

	existing, err := s.GetWeek(staffUserID)
	if err != nil {
		return nil, err
	}
	byDay := make(map[string]db.WorkScheduleEntry, len(existing))
	for _, entry := range existing {
		byDay[entry.DayOfWeek] = entry
	}

	now := time.Now()
	saved := make([]db.WorkScheduleEntry, 0, len(days))
	for _, day := range days {
		shiftType := day.ShiftType
		if shiftType == "" {
			shiftType = db.ShiftTypeDay
		}

		if entry, ok := byDay[day.DayOfWeek]; ok {
			entry.IsWorkday = day.IsWorkday
			entry.StartTime = day.StartTime
			entry.EndTime = day.EndTime
			entry.ShiftType = shiftType
			entry.UpdatedAt = now
			if err := s.scheduleRepo.Update(&entry); err != nil {
				return nil, fmt.Errorf("update schedule for %s: %w", day.DayOfWeek, err)
			}
			saved = append(saved, entry)
			continue
		}

		entry := db.WorkScheduleEntry{
			StaffUserID: staffUserID,
			DayOfWeek:   day.DayOfWeek,
			IsWorkday:   day.IsWorkday,
			StartTime:   day.StartTime,
			EndTime:     day.EndTime,
			ShiftType:   shiftType,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.scheduleRepo.Create(&entry); err != nil {
			return nil, fmt.Errorf("create schedule for %s: %w", day.DayOfWeek, err)
		}
		saved = append(saved, entry)
	}

	log.Info("schedule:upserted", "staffUserID", staffUserID, "days", len(saved))
	return saved, nil
}

// SetTimezone updates a staff member's IANA zone after validating it
// against the zone database.
func (s *ScheduleService) SetTimezone(staffUserID, timezone string) (*db.StaffProfile, error) {
	if _, err := time.LoadLocation(timezone); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, timezone)
	}

	var profiles []db.StaffProfile
	if err := s.profileRepo.FindWhere(&profiles, "user_id = ?", staffUserID); err != nil {
		return nil, fmt.Errorf("query staff profile: %w", err)
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, staffUserID)
	}

	profile := profiles[0]
	profile.Timezone = timezone
	profile.UpdatedAt = time.Now()
	if err := s.profileRepo.Update(&profile); err != nil {
		return nil, fmt.Errorf("update staff profile: %w", err)
	}

	log.Info("schedule:timezone-updated", "staffUserID", staffUserID, "timezone", timezone)
	return &profile, nil
}
