package timetracking

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/JorgeSaicoski/workforce-tracker/internal/db"
	"github.com/JorgeSaicoski/workforce-tracker/internal/shift"
)

// BreakInput is one proposed break in a scheduling batch.
type BreakInput struct {
	Type           string
	ScheduledStart string
	ScheduledEnd   string
}

// ScheduleBreaks persists the batch of proposed breaks against an open
// time entry, exactly once. The entry must belong to the caller and must
// still be open; a second scheduling call is rejected outright instead
// of trusting callers to check the flag first.
func (s *TimeTrackingService) ScheduleBreaks(userID string, timeEntryID uint, inputs []BreakInput) ([]db.Break, error) {
	var entry db.TimeEntry
	if err := s.entryRepo.FindByID(timeEntryID, &entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrEntryNotFound, timeEntryID)
		}
		return nil, fmt.Errorf("load time entry: %w", err)
	}
	if entry.StaffUserID != userID {
		return nil, ErrNotEntryOwner
	}
	if entry.ClockOut != nil {
		return nil, ErrEntryClosed
	}
	if entry.BreaksScheduled {
		return nil, ErrBreaksAlreadyScheduled
	}

	now := time.Now()
	created := make([]db.Break, 0, len(inputs))
	for _, in := range inputs {
		b := db.Break{
			TimeEntryID:     entry.ID,
			StaffUserID:     userID,
			Type:            in.Type,
			ScheduledStart:  in.ScheduledStart,
			ScheduledEnd:    in.ScheduledEnd,
			DurationMinutes: scheduledMinutes(in.ScheduledStart, in.ScheduledEnd),
			ShiftDate:       entry.ShiftDate,
			ShiftDayOfWeek:  entry.ShiftDayOfWeek,
			CreatedAt:       now,
		}
		if err := s.breakRepo.Create(&b); err != nil {
			// Rollback the rows already created so a retry does not
			// duplicate them past the breaks_scheduled check.
			s.rollbackBreaks(created)
			return nil, fmt.Errorf("create break: %w", err)
		}
		created = append(created, b)
	}

	entry.BreaksScheduled = true
	entry.UpdatedAt = now
	if err := s.entryRepo.Update(&entry); err != nil {
		s.rollbackBreaks(created)
		return nil, fmt.Errorf("mark breaks scheduled: %w", err)
	}

	log.Info("breaks:scheduled", "userID", userID, "entryID", entry.ID, "count", len(created))
	return created, nil
}

// rollbackBreaks deletes a partially written scheduling batch so a retry
// starts from zero rows. Rows that refuse to delete are logged; the
// scheduling call still fails either way.
func (s *TimeTrackingService) rollbackBreaks(created []db.Break) {
	for i := range created {
		if err := s.breakRepo.Delete(&created[i]); err != nil {
			log.Error("breaks:rollback-failed", "breakID", created[i].ID, "err", err)
		}
	}
}

// StartBreak stamps the actual start on one of the open entry's
// scheduled breaks.
func (s *TimeTrackingService) StartBreak(userID string, breakID uint) (*db.Break, error) {
	entry, err := s.openEntry(userID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotClockedIn
	}

	if active, err := s.activeBreak(entry.ID); err != nil {
		return nil, err
	} else if active != nil {
		return nil, ErrAlreadyOnBreak
	}

	var b db.Break
	if err := s.breakRepo.FindByID(breakID, &b); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrBreakNotFound, breakID)
		}
		return nil, fmt.Errorf("load break: %w", err)
	}
	if b.StaffUserID != userID || b.TimeEntryID != entry.ID {
		return nil, ErrBreakNotFound
	}
	if b.ActualStart != nil {
		return nil, ErrBreakAlreadyTaken
	}

	now := time.Now()
	b.ActualStart = &now
	if err := s.breakRepo.Update(&b); err != nil {
		return nil, fmt.Errorf("start break: %w", err)
	}

	log.Info("break:started", "userID", userID, "breakID", b.ID, "type", b.Type)
	return &b, nil
}

// EndBreak closes the currently active break and records its actual
// duration, which supersedes the scheduled one for net-hours accounting.
func (s *TimeTrackingService) EndBreak(userID string) (*db.Break, error) {
	entry, err := s.openEntry(userID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotClockedIn
	}

	active, err := s.activeBreak(entry.ID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, ErrNoActiveBreak
	}

	now := time.Now()
	active.ActualEnd = &now
	active.DurationMinutes = shift.MinutesApart(now, *active.ActualStart)
	if err := s.breakRepo.Update(active); err != nil {
		return nil, fmt.Errorf("end break: %w", err)
	}

	log.Info("break:ended", "userID", userID, "breakID", active.ID, "minutes", active.DurationMinutes)
	return active, nil
}

// scheduledMinutes is the planned length of a break from its wall-clock
// bounds. A break that crosses midnight wraps; unparseable bounds count
// as zero until the break is actually taken.
func scheduledMinutes(start, end string) int {
	startTOD, err := shift.ParseTimeOfDay(start)
	if err != nil {
		return 0
	}
	endTOD, err := shift.ParseTimeOfDay(end)
	if err != nil {
		return 0
	}

	minutes := (endTOD.Hour*60 + endTOD.Minute) - (startTOD.Hour*60 + startTOD.Minute)
	if minutes < 0 {
		minutes += 24 * 60
	}
	return minutes
}
