// Package scoring computes the daily productivity score. Calculate is a
// pure function over the day's persisted records: no clock reads, no I/O,
// and missing inputs degrade to zero sub-scores instead of erroring.
package scoring

import (
	"github.com/JorgeSaicoski/workforce-tracker/internal/db"
)

// Sub-score and total ceilings.
const (
	MaxAttendanceScore = 25
	MaxBreakScore      = 15
	MaxActivityScore   = 30
	MaxFocusScore      = 30
	MaxTotalScore      = 100
)

// Energy thresholds on the total score.
const (
	highEnergyThreshold   = 85
	mediumEnergyThreshold = 70
)

// consistencyStreakLength is how many consecutive high-score days unlock
// the consistency badge.
const consistencyStreakLength = 5

// Achievement badge names. Order of the constants below is the order
// badges appear in a result's Achievements slice.
const (
	BadgeEarlyBird       = "Early Bird"
	BadgePerfectTiming   = "Perfect Timing"
	BadgeBreakBalance    = "Break Balance"
	BadgeProductiveTyper = "Productive Typer"
	BadgeEngagedWorker   = "Engaged Worker"
	BadgeMarathonRunner  = "Marathon Runner"
	BadgeFocusMaster     = "Focus Master"
	BadgeFullDayWarrior  = "Full Day Warrior"
	BadgeConsistencyKing = "Consistency King"
)

// Result is the computed score for one staff day.
type Result struct {
	AttendanceScore int
	BreakScore      int
	ActivityScore   int
	FocusScore      int
	TotalScore      int
	EnergyLevel     string
	Achievements    []string
	Streak          int
}

// Calculate scores one day from its time entry, breaks, and activity
// metrics. A nil entry means the staff member never clocked in: the day
// scores zero across the board. previousStreak is the streak stored for
// the day before; a day below the high-energy threshold restarts the
// count at one rather than zero, so any recorded day is day one of the
// next streak.
func Calculate(entry *db.TimeEntry, breaks []db.Break, metrics *db.PerformanceMetric, previousStreak int) Result {
	r := Result{
		EnergyLevel:  db.EnergyLow,
		Achievements: []string{},
	}

	if entry == nil {
		r.Streak = nextStreak(0, previousStreak)
		return r
	}

	r.AttendanceScore = attendanceScore(entry, &r.Achievements)
	r.BreakScore = breakScore(breaks, &r.Achievements)
	r.ActivityScore = activityScore(metrics, &r.Achievements)
	r.FocusScore = focusScore(metrics, &r.Achievements)
	r.TotalScore = r.AttendanceScore + r.BreakScore + r.ActivityScore + r.FocusScore

	switch {
	case r.TotalScore >= highEnergyThreshold:
		r.EnergyLevel = db.EnergyHigh
		r.Achievements = append(r.Achievements, BadgeFullDayWarrior)
	case r.TotalScore >= mediumEnergyThreshold:
		r.EnergyLevel = db.EnergyMedium
	default:
		r.EnergyLevel = db.EnergyLow
	}

	r.Streak = nextStreak(r.TotalScore, previousStreak)
	if r.TotalScore >= highEnergyThreshold && r.Streak >= consistencyStreakLength {
		r.Achievements = append(r.Achievements, BadgeConsistencyKing)
	}

	return r
}

// attendanceScore rewards punctuality against the expected clock-in.
// Early by five minutes or more beats exactly on time; lateness over
// fifteen minutes forfeits the sub-score entirely.
func attendanceScore(entry *db.TimeEntry, badges *[]string) int {
	switch {
	case entry.WasEarly && entry.EarlyBy >= 5:
		*badges = append(*badges, BadgeEarlyBird)
		return 25
	case !entry.WasLate && !entry.WasEarly:
		*badges = append(*badges, BadgePerfectTiming)
		return 20
	case entry.WasLate && entry.LateBy <= 15:
		return 10
	case entry.WasLate:
		return 0
	default:
		// Early, but by less than five minutes.
		return 15
	}
}

// breakScore counts breaks that were actually taken (both actual
// timestamps set). Two or three is the ideal; skipping breaks entirely or
// fragmenting the day into five or more both score poorly.
func breakScore(breaks []db.Break, badges *[]string) int {
	taken := 0
	for _, b := range breaks {
		if b.ActualStart != nil && b.ActualEnd != nil {
			taken++
		}
	}

	switch {
	case taken == 0:
		return 5
	case taken >= 2 && taken <= 3:
		*badges = append(*badges, BadgeBreakBalance)
		return 15
	case taken == 1 || taken == 4:
		return 10
	default:
		return 5
	}
}

// activityScore sums three independent components: keystrokes, mouse
// clicks, and active hours. Absent metrics zero the whole sub-score.
func activityScore(metrics *db.PerformanceMetric, badges *[]string) int {
	if metrics == nil {
		return 0
	}

	score := 0

	switch {
	case metrics.Keystrokes >= 8000:
		*badges = append(*badges, BadgeProductiveTyper)
		score += 10
	case metrics.Keystrokes >= 5000:
		score += 7
	case metrics.Keystrokes >= 2000:
		score += 4
	}

	switch {
	case metrics.MouseClicks >= 2000:
		*badges = append(*badges, BadgeEngagedWorker)
		score += 10
	case metrics.MouseClicks >= 1000:
		score += 7
	case metrics.MouseClicks >= 500:
		score += 4
	}

	activeHours := float64(metrics.ActiveMinutes) / 60.0
	switch {
	case activeHours >= 7:
		*badges = append(*badges, BadgeMarathonRunner)
		score += 10
	case activeHours >= 6:
		score += 7
	case activeHours >= 5:
		score += 4
	}

	return score
}

// focusScore buckets the idle percentage of tracked time.
func focusScore(metrics *db.PerformanceMetric, badges *[]string) int {
	if metrics == nil {
		return 0
	}

	idlePct := IdlePercentage(metrics.ActiveMinutes, metrics.IdleMinutes)
	switch {
	case idlePct < 10:
		*badges = append(*badges, BadgeFocusMaster)
		return 30
	case idlePct < 20:
		return 20
	case idlePct < 30:
		return 10
	default:
		return 0
	}
}

// IdlePercentage is idle time over total tracked time, as a percentage.
// Zero when nothing was tracked.
func IdlePercentage(activeMinutes, idleMinutes int) float64 {
	total := activeMinutes + idleMinutes
	if total == 0 {
		return 0
	}
	return float64(idleMinutes) / float64(total) * 100
}

func nextStreak(totalScore, previousStreak int) int {
	if totalScore >= highEnergyThreshold {
		return previousStreak + 1
	}
	return 1
}
