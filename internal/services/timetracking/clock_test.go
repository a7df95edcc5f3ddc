package timetracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockInDeltas(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)
	expected := time.Date(2025, 8, 21, 9, 0, 0, 0, loc)

	tests := []struct {
		name     string
		actual   time.Time
		wasLate  bool
		lateBy   int
		wasEarly bool
		earlyBy  int
	}{
		{"sixteen minutes late", expected.Add(16 * time.Minute), true, 16, false, 0},
		{"ten minutes early", expected.Add(-10 * time.Minute), false, 0, true, 10},
		{"exactly on time", expected, false, 0, false, 0},
		{"seconds late floor to zero minutes", expected.Add(30 * time.Second), true, 0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wasLate, lateBy, wasEarly, earlyBy := clockInDeltas(tt.actual, expected)
			assert.Equal(t, tt.wasLate, wasLate)
			assert.Equal(t, tt.lateBy, lateBy)
			assert.Equal(t, tt.wasEarly, wasEarly)
			assert.Equal(t, tt.earlyBy, earlyBy)
		})
	}
}

func TestExpectedClockOutAt(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)
	shiftDate := time.Date(2025, 8, 20, 0, 0, 0, 0, loc) // a Wednesday

	t.Run("day shift ends same day", func(t *testing.T) {
		got := expectedClockOutAt(shiftDate, "9:00 AM", "6:00 PM", loc)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2025, 8, 20, 18, 0, 0, 0, loc), *got)
	})

	t.Run("night shift ends next day", func(t *testing.T) {
		got := expectedClockOutAt(shiftDate, "22:00", "06:00", loc)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2025, 8, 21, 6, 0, 0, 0, loc), *got)
	})

	t.Run("missing end time", func(t *testing.T) {
		assert.Nil(t, expectedClockOutAt(shiftDate, "9:00 AM", "", loc))
	})

	t.Run("unparseable start stays on shift date", func(t *testing.T) {
		got := expectedClockOutAt(shiftDate, "whenever", "17:00", loc)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2025, 8, 20, 17, 0, 0, 0, loc), *got)
	})
}

func TestNetHours(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)
	clockIn := time.Date(2025, 8, 20, 9, 0, 0, 0, loc)

	// Eight-hour span with a thirty-minute break nets 7.5 hours.
	assert.InDelta(t, 7.5, netHours(clockIn, clockIn.Add(8*time.Hour), 30), 0.0001)
	assert.InDelta(t, 8.0, netHours(clockIn, clockIn.Add(8*time.Hour), 0), 0.0001)
	// Night shift spanning midnight.
	nightIn := time.Date(2025, 8, 20, 22, 0, 0, 0, loc)
	assert.InDelta(t, 7.0, netHours(nightIn, nightIn.Add(8*time.Hour), 60), 0.0001)
}

func TestScheduledMinutes(t *testing.T) {
	assert.Equal(t, 15, scheduledMinutes("10:00", "10:15"))
	assert.Equal(t, 60, scheduledMinutes("12:00 PM", "1:00 PM"))
	assert.Equal(t, 30, scheduledMinutes("23:45", "0:15")) // wraps midnight
	assert.Equal(t, 0, scheduledMinutes("lunchish", "13:00"))
	assert.Equal(t, 0, scheduledMinutes("12:30", ""))
}
