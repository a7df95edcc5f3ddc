package metrics

import (
	"time"

	clients "github.com/JorgeSaicoski/workforce-tracker/internal/client"
	"github.com/JorgeSaicoski/workforce-tracker/internal/db"
)

// Request DTOs

type PushMetricsRequest struct {
	StaffUserID *string `json:"staffUserId"`
	Date        *string `json:"date"` // YYYY-MM-DD, defaults to today

	Keystrokes    int `json:"keystrokes" binding:"min=0"`
	MouseClicks   int `json:"mouseClicks" binding:"min=0"`
	ActiveMinutes int `json:"activeMinutes" binding:"min=0"`
	IdleMinutes   int `json:"idleMinutes" binding:"min=0"`
	ScreenMinutes int `json:"screenMinutes" binding:"min=0"`
}

// Response DTOs

type MetricsResponse struct {
	ID          uint   `json:"id"`
	StaffUserID string `json:"staffUserId"`
	Date        string `json:"date"`

	Keystrokes    int `json:"keystrokes"`
	MouseClicks   int `json:"mouseClicks"`
	ActiveMinutes int `json:"activeMinutes"`
	IdleMinutes   int `json:"idleMinutes"`
	ScreenMinutes int `json:"screenMinutes"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// Conversion helpers

const dateLayout = "2006-01-02"

func MetricToResponse(metric *db.PerformanceMetric) MetricsResponse {
	return MetricsResponse{
		ID:            metric.ID,
		StaffUserID:   metric.StaffUserID,
		Date:          metric.Date.Format(dateLayout),
		Keystrokes:    metric.Keystrokes,
		MouseClicks:   metric.MouseClicks,
		ActiveMinutes: metric.ActiveMinutes,
		IdleMinutes:   metric.IdleMinutes,
		ScreenMinutes: metric.ScreenMinutes,
		UpdatedAt:     metric.UpdatedAt,
	}
}

func (r *PushMetricsRequest) toSnapshot() clients.MetricsSnapshot {
	return clients.MetricsSnapshot{
		Keystrokes:    r.Keystrokes,
		MouseClicks:   r.MouseClicks,
		ActiveMinutes: r.ActiveMinutes,
		IdleMinutes:   r.IdleMinutes,
		ScreenMinutes: r.ScreenMinutes,
	}
}
