package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "9:00 AM", want: TimeOfDay{9, 0}},
		{in: "09:30 am", want: TimeOfDay{9, 30}},
		{in: "6:00 PM", want: TimeOfDay{18, 0}},
		{in: "6:00PM", want: TimeOfDay{18, 0}},
		{in: "12:00 AM", want: TimeOfDay{0, 0}},
		{in: "12:00 PM", want: TimeOfDay{12, 0}},
		{in: "12:30 pm", want: TimeOfDay{12, 30}},
		{in: "09:00", want: TimeOfDay{9, 0}},
		{in: "18:00", want: TimeOfDay{18, 0}},
		{in: "0:15", want: TimeOfDay{0, 15}},
		{in: "23:59", want: TimeOfDay{23, 59}},
		{in: " 22:00 ", want: TimeOfDay{22, 0}},
		{in: "", wantErr: true},
		{in: "24:00", wantErr: true},
		{in: "13:00 PM", wantErr: true},
		{in: "0:00 AM", wantErr: true},
		{in: "9:60", wantErr: true},
		{in: "nine", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func manilaSchedule(days map[string]DaySchedule) Lookup {
	return func(day string) (DaySchedule, bool) {
		s, ok := days[day]
		return s, ok
	}
}

func TestResolveNightShiftCrossover(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)

	lookup := manilaSchedule(map[string]DaySchedule{
		"Wednesday": {StartTime: "22:00", IsWorkday: true},
		"Thursday":  {StartTime: "22:00", IsWorkday: true},
	})

	// Thursday 02:00 local belongs to Wednesday's 22:00 shift.
	at := time.Date(2025, 8, 21, 2, 0, 0, 0, loc) // a Thursday
	res := Resolve(lookup, loc, at)
	assert.True(t, res.IsNightShift)
	assert.Equal(t, "Wednesday", res.ShiftDayOfWeek)
	assert.Equal(t, time.Date(2025, 8, 20, 0, 0, 0, 0, loc), res.ShiftDate)

	// Thursday 07:00 local is past the boundary and belongs to Thursday.
	at = time.Date(2025, 8, 21, 7, 0, 0, 0, loc)
	res = Resolve(lookup, loc, at)
	assert.False(t, res.IsNightShift)
	assert.Equal(t, "Thursday", res.ShiftDayOfWeek)
	assert.Equal(t, time.Date(2025, 8, 21, 0, 0, 0, 0, loc), res.ShiftDate)
}

func TestResolveNoQualifyingNightShift(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)

	tests := []struct {
		name   string
		lookup Lookup
	}{
		{"no schedule for yesterday", manilaSchedule(map[string]DaySchedule{})},
		{"yesterday not a workday", manilaSchedule(map[string]DaySchedule{
			"Wednesday": {StartTime: "22:00", IsWorkday: false},
		})},
		{"yesterday starts before 6 PM", manilaSchedule(map[string]DaySchedule{
			"Wednesday": {StartTime: "9:00 AM", IsWorkday: true},
		})},
		{"yesterday start unparseable", manilaSchedule(map[string]DaySchedule{
			"Wednesday": {StartTime: "late", IsWorkday: true},
		})},
	}

	at := time.Date(2025, 8, 21, 2, 0, 0, 0, loc) // Thursday 02:00
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(tt.lookup, loc, at)
			assert.False(t, res.IsNightShift)
			assert.Equal(t, "Thursday", res.ShiftDayOfWeek)
			assert.Equal(t, time.Date(2025, 8, 21, 0, 0, 0, 0, loc), res.ShiftDate)
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	lookup := manilaSchedule(map[string]DaySchedule{
		"Friday": {StartTime: "6:00 PM", IsWorkday: true},
	})
	at := time.Date(2025, 8, 23, 3, 30, 0, 0, loc) // Saturday 03:30

	first := Resolve(lookup, loc, at)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Resolve(lookup, loc, at))
	}
	assert.True(t, first.IsNightShift)
	assert.Equal(t, "Friday", first.ShiftDayOfWeek)
}

func TestMinutesApart(t *testing.T) {
	base := time.Date(2025, 8, 21, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 16, MinutesApart(base.Add(16*time.Minute), base))
	assert.Equal(t, 10, MinutesApart(base.Add(-10*time.Minute), base))
	assert.Equal(t, 0, MinutesApart(base, base))
	// Sub-minute remainders floor away.
	assert.Equal(t, 15, MinutesApart(base.Add(15*time.Minute+59*time.Second), base))
}

func TestAtCrossMidnightPlacement(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)

	date := time.Date(2025, 8, 20, 0, 0, 0, 0, loc)
	start := At(date, TimeOfDay{22, 0}, loc)
	end := At(date.AddDate(0, 0, 1), TimeOfDay{6, 0}, loc)

	assert.Equal(t, 22, start.Hour())
	assert.Equal(t, 8*time.Hour, end.Sub(start))
}
