// Package shift maps clock events to the work schedule they belong to.
// Everything here is pure: the current instant and the schedule lookup are
// passed in, so the same inputs always resolve to the same shift.
package shift

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BoundaryHour splits the civil day for shift attribution. A clock event
// before 06:00 local may still belong to the previous day's night shift.
const BoundaryHour = 6

// nightStartHour is the earliest schedule start that qualifies a previous
// day's shift for the after-midnight lookback.
const nightStartHour = 18

// TimeOfDay is a parsed wall-clock time.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses schedule time strings in either 12-hour
// ("9:00 AM", "6:00 pm") or 24-hour ("09:00", "18:00") form. Noon and
// midnight follow civil convention: "12 AM" is hour 0, "12 PM" is hour 12.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return TimeOfDay{}, fmt.Errorf("empty time string")
	}

	upper := strings.ToUpper(raw)
	meridiem := ""
	for _, suffix := range []string{"AM", "PM"} {
		if strings.HasSuffix(upper, suffix) {
			meridiem = suffix
			upper = strings.TrimSpace(strings.TrimSuffix(upper, suffix))
			break
		}
	}

	parts := strings.Split(upper, ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("malformed time %q", s)
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("malformed hour in %q", s)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("malformed minute in %q", s)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("minute out of range in %q", s)
	}

	switch meridiem {
	case "AM":
		if hour < 1 || hour > 12 {
			return TimeOfDay{}, fmt.Errorf("hour out of range in %q", s)
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return TimeOfDay{}, fmt.Errorf("hour out of range in %q", s)
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour < 0 || hour > 23 {
			return TimeOfDay{}, fmt.Errorf("hour out of range in %q", s)
		}
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// DaySchedule is the slice of a work schedule the resolver needs to
// decide whether a previous day's shift reaches past midnight.
type DaySchedule struct {
	StartTime string
	IsWorkday bool
}

// Lookup returns the schedule for a day-of-week name ("Monday"), with ok
// false when no row exists for that day.
type Lookup func(dayOfWeek string) (DaySchedule, bool)

// Resolution is the shift a clock event belongs to. ShiftDate is midnight
// of the shift's calendar day in the staff timezone.
type Resolution struct {
	IsNightShift   bool
	ShiftDayOfWeek string
	ShiftDate      time.Time
}

// Resolve attributes the instant now to a shift day. Before the 6 AM
// boundary it looks back at yesterday's schedule; if that day is a workday
// starting at 18:00 or later the event is a night-shift crossover and
// belongs to yesterday. Everything else belongs to the current local day.
// A missing schedule for the resolved day is not an error here; the
// caller validates it.
func Resolve(lookup Lookup, loc *time.Location, now time.Time) Resolution {
	local := now.In(loc)

	if local.Hour() < BoundaryHour {
		yesterday := local.AddDate(0, 0, -1)
		day := yesterday.Weekday().String()
		if sched, ok := lookup(day); ok && sched.IsWorkday {
			if tod, err := ParseTimeOfDay(sched.StartTime); err == nil && tod.Hour >= nightStartHour {
				return Resolution{
					IsNightShift:   true,
					ShiftDayOfWeek: day,
					ShiftDate:      DateOf(yesterday),
				}
			}
		}
	}

	return Resolution{
		IsNightShift:   false,
		ShiftDayOfWeek: local.Weekday().String(),
		ShiftDate:      DateOf(local),
	}
}

// DateOf truncates t to midnight in its own location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// At places a wall-clock time on a calendar date in the given zone.
func At(date time.Time, tod TimeOfDay, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), tod.Hour, tod.Minute, 0, 0, loc)
}

// MinutesApart is the whole-minute distance between two instants,
// floored, always non-negative.
func MinutesApart(a, b time.Time) int {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return int(d / time.Minute)
}
