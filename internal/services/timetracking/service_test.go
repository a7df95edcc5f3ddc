package timetracking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/JorgeSaicoski/workforce-tracker/internal/db"
)

type fakeRepo[T any] struct {
	createFn    func(*T) error
	updateFn    func(*T) error
	deleteFn    func(*T) error
	findByIDFn  func(uint, *T) error
	findWhereFn func(*[]T, string, ...interface{}) error
}

func (f *fakeRepo[T]) Create(record *T) error {
	if f.createFn != nil {
		return f.createFn(record)
	}
	return nil
}

func (f *fakeRepo[T]) Update(record *T) error {
	if f.updateFn != nil {
		return f.updateFn(record)
	}
	return nil
}

func (f *fakeRepo[T]) Delete(record *T) error {
	if f.deleteFn != nil {
		return f.deleteFn(record)
	}
	return nil
}

func (f *fakeRepo[T]) FindByID(id uint, out *T) error {
	if f.findByIDFn != nil {
		return f.findByIDFn(id, out)
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo[T]) FindWhere(out *[]T, query string, args ...interface{}) error {
	if f.findWhereFn != nil {
		return f.findWhereFn(out, query, args...)
	}
	return nil
}

func utcProfileRepo(userID string) *fakeRepo[db.StaffProfile] {
	return &fakeRepo[db.StaffProfile]{
		findWhereFn: func(out *[]db.StaffProfile, _ string, _ ...interface{}) error {
			*out = []db.StaffProfile{{ID: 1, UserID: userID, Timezone: "UTC"}}
			return nil
		},
	}
}

func allWorkdaysRepo(userID string) *fakeRepo[db.WorkScheduleEntry] {
	days := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	return &fakeRepo[db.WorkScheduleEntry]{
		findWhereFn: func(out *[]db.WorkScheduleEntry, _ string, _ ...interface{}) error {
			for i, day := range days {
				*out = append(*out, db.WorkScheduleEntry{
					ID:          uint(i + 1),
					StaffUserID: userID,
					DayOfWeek:   day,
					IsWorkday:   true,
					StartTime:   "9:00 AM",
					EndTime:     "5:00 PM",
					ShiftType:   db.ShiftTypeDay,
				})
			}
			return nil
		},
	}
}

func newTestService(userID string) *TimeTrackingService {
	return &TimeTrackingService{
		profileRepo:  utcProfileRepo(userID),
		scheduleRepo: allWorkdaysRepo(userID),
		entryRepo:    &fakeRepo[db.TimeEntry]{},
		breakRepo:    &fakeRepo[db.Break]{},
	}
}

func TestClockInPreconditions(t *testing.T) {
	t.Run("rejects second clock-in while a session is open", func(t *testing.T) {
		svc := newTestService("staff-1")
		svc.entryRepo = &fakeRepo[db.TimeEntry]{
			findWhereFn: func(out *[]db.TimeEntry, query string, _ ...interface{}) error {
				if strings.Contains(query, "clock_out IS NULL") {
					*out = []db.TimeEntry{{ID: 9, StaffUserID: "staff-1"}}
				}
				return nil
			},
		}

		_, err := svc.ClockIn("staff-1", nil)
		assert.ErrorIs(t, err, ErrAlreadyClockedIn)
	})

	t.Run("rejects a second entry for the same shift date", func(t *testing.T) {
		svc := newTestService("staff-1")
		svc.entryRepo = &fakeRepo[db.TimeEntry]{
			findWhereFn: func(out *[]db.TimeEntry, query string, _ ...interface{}) error {
				if strings.Contains(query, "shift_date") {
					*out = []db.TimeEntry{{ID: 9, StaffUserID: "staff-1"}}
				}
				return nil
			},
		}

		_, err := svc.ClockIn("staff-1", nil)
		assert.ErrorIs(t, err, ErrShiftAlreadyLogged)
	})

	t.Run("rejects clock-in without a workday schedule", func(t *testing.T) {
		svc := newTestService("staff-1")
		svc.scheduleRepo = &fakeRepo[db.WorkScheduleEntry]{}

		_, err := svc.ClockIn("staff-1", nil)
		assert.ErrorIs(t, err, ErrNoScheduleForDay)
	})

	t.Run("opens an entry when all preconditions hold", func(t *testing.T) {
		svc := newTestService("staff-1")
		var created *db.TimeEntry
		svc.entryRepo = &fakeRepo[db.TimeEntry]{
			createFn: func(entry *db.TimeEntry) error {
				entry.ID = 1
				created = entry
				return nil
			},
		}

		result, err := svc.ClockIn("staff-1", nil)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Nil(t, created.ClockOut)
		assert.Equal(t, "staff-1", created.StaffUserID)
		assert.True(t, result.ShowBreakScheduler)
	})
}

func TestClockOutRequiresOpenEntry(t *testing.T) {
	svc := newTestService("staff-1")

	_, err := svc.ClockOut("staff-1", "end of shift", nil)
	assert.ErrorIs(t, err, ErrNotClockedIn)
}

func TestScheduleBreaksPreconditions(t *testing.T) {
	batch := []BreakInput{
		{Type: db.BreakTypeMorning, ScheduledStart: "10:00 AM", ScheduledEnd: "10:15 AM"},
	}

	entryRepoWith := func(entry db.TimeEntry) *fakeRepo[db.TimeEntry] {
		return &fakeRepo[db.TimeEntry]{
			findByIDFn: func(_ uint, out *db.TimeEntry) error {
				*out = entry
				return nil
			},
		}
	}

	t.Run("missing entry", func(t *testing.T) {
		svc := newTestService("staff-1")

		_, err := svc.ScheduleBreaks("staff-1", 404, batch)
		assert.ErrorIs(t, err, ErrEntryNotFound)
	})

	t.Run("entry owned by someone else", func(t *testing.T) {
		svc := newTestService("staff-1")
		svc.entryRepo = entryRepoWith(db.TimeEntry{ID: 1, StaffUserID: "staff-2"})

		_, err := svc.ScheduleBreaks("staff-1", 1, batch)
		assert.ErrorIs(t, err, ErrNotEntryOwner)
	})

	t.Run("closed entry", func(t *testing.T) {
		svc := newTestService("staff-1")
		out := time.Now()
		svc.entryRepo = entryRepoWith(db.TimeEntry{ID: 1, StaffUserID: "staff-1", ClockOut: &out})

		_, err := svc.ScheduleBreaks("staff-1", 1, batch)
		assert.ErrorIs(t, err, ErrEntryClosed)
	})

	t.Run("already scheduled", func(t *testing.T) {
		svc := newTestService("staff-1")
		svc.entryRepo = entryRepoWith(db.TimeEntry{ID: 1, StaffUserID: "staff-1", BreaksScheduled: true})

		_, err := svc.ScheduleBreaks("staff-1", 1, batch)
		assert.ErrorIs(t, err, ErrBreaksAlreadyScheduled)
	})
}

func TestScheduleBreaksRollsBackPartialBatch(t *testing.T) {
	svc := newTestService("staff-1")

	flagPersisted := false
	svc.entryRepo = &fakeRepo[db.TimeEntry]{
		findByIDFn: func(_ uint, out *db.TimeEntry) error {
			*out = db.TimeEntry{ID: 1, StaffUserID: "staff-1", ShiftDayOfWeek: "Monday"}
			return nil
		},
		updateFn: func(_ *db.TimeEntry) error {
			flagPersisted = true
			return nil
		},
	}

	creates := 0
	var deleted []uint
	svc.breakRepo = &fakeRepo[db.Break]{
		createFn: func(b *db.Break) error {
			creates++
			if creates > 1 {
				return assert.AnError
			}
			b.ID = uint(creates)
			return nil
		},
		deleteFn: func(b *db.Break) error {
			deleted = append(deleted, b.ID)
			return nil
		},
	}

	_, err := svc.ScheduleBreaks("staff-1", 1, []BreakInput{
		{Type: db.BreakTypeMorning, ScheduledStart: "10:00 AM", ScheduledEnd: "10:15 AM"},
		{Type: db.BreakTypeLunch, ScheduledStart: "12:00 PM", ScheduledEnd: "1:00 PM"},
	})

	require.Error(t, err)
	assert.Equal(t, []uint{1}, deleted, "the row created before the failure must be removed")
	assert.False(t, flagPersisted, "breaks_scheduled must stay unset so a retry can succeed")
}

func TestHistoryOrdersNewestFirst(t *testing.T) {
	svc := newTestService("staff-1")

	day := func(offset int) time.Time {
		return time.Date(2025, 8, 18+offset, 0, 0, 0, 0, time.UTC)
	}
	svc.entryRepo = &fakeRepo[db.TimeEntry]{
		findWhereFn: func(out *[]db.TimeEntry, _ string, _ ...interface{}) error {
			*out = []db.TimeEntry{
				{ID: 1, StaffUserID: "staff-1", ShiftDate: day(0)},
				{ID: 3, StaffUserID: "staff-1", ShiftDate: day(2)},
				{ID: 2, StaffUserID: "staff-1", ShiftDate: day(1)},
			}
			return nil
		},
	}

	entries, err := svc.History("staff-1", nil, nil)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, uint(3), entries[0].ID)
	assert.Equal(t, uint(2), entries[1].ID)
	assert.Equal(t, uint(1), entries[2].ID)
}
