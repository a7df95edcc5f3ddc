package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/JorgeSaicoski/pgconnect"

	clients "github.com/JorgeSaicoski/workforce-tracker/internal/client"
	"github.com/JorgeSaicoski/workforce-tracker/internal/db"
	"github.com/JorgeSaicoski/workforce-tracker/internal/scoring"
)

var log = slog.Default().With(
	slog.String("layer", "service"),
	slog.String("service", "ScoreService"),
)

var (
	ErrScoreNotFound = errors.New("no score recorded for that date")
	ErrInvalidRange  = errors.New("range must be week or month")
)

// Range windows in days, ending on the requested date.
const (
	weekWindowDays  = 7
	monthWindowDays = 30
)

type ScoreService struct {
	entryRepo  *pgconnect.Repository[db.TimeEntry]
	breakRepo  *pgconnect.Repository[db.Break]
	metricRepo *pgconnect.Repository[db.PerformanceMetric]
	scoreRepo  *pgconnect.Repository[db.DailyScore]
	trackerAPI clients.ActivityTrackerClient // nil when pull-on-demand is disabled
}

func NewScoreService(database *pgconnect.DB, trackerAPI clients.ActivityTrackerClient) *ScoreService {
	return &ScoreService{
		entryRepo:  pgconnect.NewRepository[db.TimeEntry](database),
		breakRepo:  pgconnect.NewRepository[db.Break](database),
		metricRepo: pgconnect.NewRepository[db.PerformanceMetric](database),
		scoreRepo:  pgconnect.NewRepository[db.DailyScore](database),
		trackerAPI: trackerAPI,
	}
}

// GenerateDailyScore recomputes and upserts the score record for one
// staff day. Recomputation is safe and expected: the calculator is
// deterministic, so replaying the same inputs rewrites the same record,
// and fresh activity metrics simply shift the activity/focus sub-scores.
func (s *ScoreService) GenerateDailyScore(ctx context.Context, staffUserID string, date time.Time) (*db.DailyScore, error) {
	date = dateOnly(date)

	entry, err := s.entryForDate(staffUserID, date)
	if err != nil {
		return nil, err
	}

	var breaks []db.Break
	if entry != nil {
		if err := s.breakRepo.FindWhere(&breaks, "time_entry_id = ?", entry.ID); err != nil {
			return nil, fmt.Errorf("query breaks: %w", err)
		}
	}

	metrics, err := s.metricsForDate(ctx, staffUserID, date)
	if err != nil {
		return nil, err
	}

	previousStreak := 0
	if prev, err := s.scoreForDate(staffUserID, date.AddDate(0, 0, -1)); err != nil {
		return nil, err
	} else if prev != nil {
		previousStreak = prev.Streak
	}

	result := scoring.Calculate(entry, breaks, metrics, previousStreak)

	record, err := s.scoreForDate(staffUserID, date)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if record == nil {
		record = &db.DailyScore{
			StaffUserID: staffUserID,
			Date:        date,
			CreatedAt:   now,
		}
	}

	achievements, err := json.Marshal(result.Achievements)
	if err != nil {
		return nil, fmt.Errorf("encode achievements: %w", err)
	}

	record.AttendanceScore = result.AttendanceScore
	record.BreakScore = result.BreakScore
	record.ActivityScore = result.ActivityScore
	record.FocusScore = result.FocusScore
	record.TotalScore = result.TotalScore
	record.EnergyLevel = result.EnergyLevel
	record.Achievements = achievements
	record.Streak = result.Streak
	record.UpdatedAt = now

	if entry != nil {
		record.ClockInTime = &entry.ClockIn
		record.ClockOutTime = entry.ClockOut
		record.TotalHours = entry.TotalHours
	}
	if metrics != nil {
		record.Keystrokes = metrics.Keystrokes
		record.MouseClicks = metrics.MouseClicks
		record.ActiveMinutes = metrics.ActiveMinutes
		record.IdleMinutes = metrics.IdleMinutes
	}

	if record.ID == 0 {
		err = s.scoreRepo.Create(record)
	} else {
		err = s.scoreRepo.Update(record)
	}
	if err != nil {
		return nil, fmt.Errorf("save daily score: %w", err)
	}

	log.Info("score:generated", "userID", staffUserID,
		"date", date.Format("2006-01-02"), "total", record.TotalScore,
		"energy", record.EnergyLevel, "streak", record.Streak)
	return record, nil
}

// GetScore returns the stored record for one staff day.
func (s *ScoreService) GetScore(staffUserID string, date time.Time) (*db.DailyScore, error) {
	record, err := s.scoreForDate(staffUserID, dateOnly(date))
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrScoreNotFound
	}
	return record, nil
}

// RangeAverages are the per-sub-score means over a score window.
type RangeAverages struct {
	Attendance float64
	Break      float64
	Activity   float64
	Focus      float64
	Total      float64
}

// GetScoreRange returns the records in the trailing week or month window
// ending on endDate, newest first, plus their averages.
func (s *ScoreService) GetScoreRange(staffUserID string, endDate time.Time, rangeName string) ([]db.DailyScore, *RangeAverages, error) {
	var windowDays int
	switch rangeName {
	case "week":
		windowDays = weekWindowDays
	case "month":
		windowDays = monthWindowDays
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidRange, rangeName)
	}

	end := dateOnly(endDate)
	start := end.AddDate(0, 0, -(windowDays - 1))

	var records []db.DailyScore
	if err := s.scoreRepo.FindWhere(&records,
		"staff_user_id = ? AND date >= ? AND date <= ?", staffUserID, start, end); err != nil {
		return nil, nil, fmt.Errorf("query score range: %w", err)
	}
	sortScoresNewestFirst(records)

	averages := &RangeAverages{}
	if len(records) > 0 {
		for _, r := range records {
			averages.Attendance += float64(r.AttendanceScore)
			averages.Break += float64(r.BreakScore)
			averages.Activity += float64(r.ActivityScore)
			averages.Focus += float64(r.FocusScore)
			averages.Total += float64(r.TotalScore)
		}
		n := float64(len(records))
		averages.Attendance /= n
		averages.Break /= n
		averages.Activity /= n
		averages.Focus /= n
		averages.Total /= n
	}

	return records, averages, nil
}

// UpsertMetrics records the desktop tracker's daily snapshot, replacing
// any earlier push for the same day.
func (s *ScoreService) UpsertMetrics(staffUserID string, date time.Time, snapshot clients.MetricsSnapshot) (*db.PerformanceMetric, error) {
	date = dateOnly(date)

	var existing []db.PerformanceMetric
	if err := s.metricRepo.FindWhere(&existing,
		"staff_user_id = ? AND date = ?", staffUserID, date); err != nil {
		return nil, fmt.Errorf("query metrics: %w", err)
	}

	now := time.Now()
	var metric *db.PerformanceMetric
	if len(existing) > 0 {
		metric = &existing[0]
	} else {
		metric = &db.PerformanceMetric{
			StaffUserID: staffUserID,
			Date:        date,
			CreatedAt:   now,
		}
	}

	metric.Keystrokes = snapshot.Keystrokes
	metric.MouseClicks = snapshot.MouseClicks
	metric.ActiveMinutes = snapshot.ActiveMinutes
	metric.IdleMinutes = snapshot.IdleMinutes
	metric.ScreenMinutes = snapshot.ScreenMinutes
	metric.UpdatedAt = now

	var err error
	if metric.ID == 0 {
		err = s.metricRepo.Create(metric)
	} else {
		err = s.metricRepo.Update(metric)
	}
	if err != nil {
		return nil, fmt.Errorf("save metrics: %w", err)
	}
	return metric, nil
}

// GetMetrics returns the stored snapshot for one staff day, or nil.
func (s *ScoreService) GetMetrics(staffUserID string, date time.Time) (*db.PerformanceMetric, error) {
	var metrics []db.PerformanceMetric
	if err := s.metricRepo.FindWhere(&metrics,
		"staff_user_id = ? AND date = ?", staffUserID, dateOnly(date)); err != nil {
		return nil, fmt.Errorf("query metrics: %w", err)
	}
	if len(metrics) == 0 {
		return nil, nil
	}
	metric := metrics[0]
	return &metric, nil
}

// metricsForDate prefers the pushed snapshot and falls back to pulling
// one from the tracker API. A tracker failure degrades to scoring
// without metrics rather than failing the whole generation.
func (s *ScoreService) metricsForDate(ctx context.Context, staffUserID string, date time.Time) (*db.PerformanceMetric, error) {
	metric, err := s.GetMetrics(staffUserID, date)
	if err != nil || metric != nil {
		return metric, err
	}
	if s.trackerAPI == nil {
		return nil, nil
	}

	snapshot, err := s.trackerAPI.DailyMetrics(ctx, staffUserID, date)
	if err != nil {
		log.Warn("score:tracker-pull-failed", "userID", staffUserID, "err", err)
		return nil, nil
	}
	if snapshot == nil {
		return nil, nil
	}
	return s.UpsertMetrics(staffUserID, date, *snapshot)
}

func (s *ScoreService) entryForDate(staffUserID string, date time.Time) (*db.TimeEntry, error) {
	var entries []db.TimeEntry
	if err := s.entryRepo.FindWhere(&entries,
		"staff_user_id = ? AND shift_date = ?", staffUserID, date); err != nil {
		return nil, fmt.Errorf("query time entry: %w", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}
	entry := entries[0]
	return &entry, nil
}

func (s *ScoreService) scoreForDate(staffUserID string, date time.Time) (*db.DailyScore, error) {
	var records []db.DailyScore
	if err := s.scoreRepo.FindWhere(&records,
		"staff_user_id = ? AND date = ?", staffUserID, date); err != nil {
		return nil, fmt.Errorf("query daily score: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	record := records[0]
	return &record, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sortScoresNewestFirst(records []db.DailyScore) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
}
