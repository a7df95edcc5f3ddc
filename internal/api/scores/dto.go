package scores

import (
	"encoding/json"
	"time"

	"github.com/JorgeSaicoski/workforce-tracker/internal/db"
	"github.com/JorgeSaicoski/workforce-tracker/internal/services/scoring"
)

// Request DTOs

type GenerateScoreRequest struct {
	StaffUserID *string `json:"staffUserId"`
	Date        *string `json:"date"` // YYYY-MM-DD, defaults to today
}

// Response DTOs

type DailyScoreResponse struct {
	ID          uint   `json:"id"`
	StaffUserID string `json:"staffUserId"`
	Date        string `json:"date"`

	AttendanceScore int `json:"attendanceScore"`
	BreakScore      int `json:"breakScore"`
	ActivityScore   int `json:"activityScore"`
	FocusScore      int `json:"focusScore"`
	TotalScore      int `json:"totalScore"`

	EnergyLevel  string   `json:"energyLevel"`
	Achievements []string `json:"achievements"`
	Streak       int      `json:"streak"`

	ClockInTime   *time.Time `json:"clockInTime"`
	ClockOutTime  *time.Time `json:"clockOutTime"`
	TotalHours    float64    `json:"totalHours"`
	Keystrokes    int        `json:"keystrokes"`
	MouseClicks   int        `json:"mouseClicks"`
	ActiveMinutes int        `json:"activeMinutes"`
	IdleMinutes   int        `json:"idleMinutes"`
}

type RangeAveragesResponse struct {
	Attendance float64 `json:"attendance"`
	Break      float64 `json:"break"`
	Activity   float64 `json:"activity"`
	Focus      float64 `json:"focus"`
	Total      float64 `json:"total"`
}

type ScoreRangeResponse struct {
	Range    string                `json:"range"`
	Scores   []DailyScoreResponse  `json:"scores"`
	Averages RangeAveragesResponse `json:"averages"`
}

// Conversion helpers

const dateLayout = "2006-01-02"

func DailyScoreToResponse(score *db.DailyScore) DailyScoreResponse {
	achievements := []string{}
	if len(score.Achievements) > 0 {
		// Stored as a JSON array of badge names; an undecodable
		// column falls back to an empty list.
		if err := json.Unmarshal(score.Achievements, &achievements); err != nil {
			achievements = []string{}
		}
	}

	return DailyScoreResponse{
		ID:              score.ID,
		StaffUserID:     score.StaffUserID,
		Date:            score.Date.Format(dateLayout),
		AttendanceScore: score.AttendanceScore,
		BreakScore:      score.BreakScore,
		ActivityScore:   score.ActivityScore,
		FocusScore:      score.FocusScore,
		TotalScore:      score.TotalScore,
		EnergyLevel:     score.EnergyLevel,
		Achievements:    achievements,
		Streak:          score.Streak,
		ClockInTime:     score.ClockInTime,
		ClockOutTime:    score.ClockOutTime,
		TotalHours:      score.TotalHours,
		Keystrokes:      score.Keystrokes,
		MouseClicks:     score.MouseClicks,
		ActiveMinutes:   score.ActiveMinutes,
		IdleMinutes:     score.IdleMinutes,
	}
}

func DailyScoresToResponse(records []db.DailyScore) []DailyScoreResponse {
	responses := make([]DailyScoreResponse, len(records))
	for i := range records {
		responses[i] = DailyScoreToResponse(&records[i])
	}
	return responses
}

func RangeToResponse(rangeName string, records []db.DailyScore, averages *scoring.RangeAverages) ScoreRangeResponse {
	response := ScoreRangeResponse{
		Range:  rangeName,
		Scores: DailyScoresToResponse(records),
	}
	if averages != nil {
		response.Averages = RangeAveragesResponse{
			Attendance: averages.Attendance,
			Break:      averages.Break,
			Activity:   averages.Activity,
			Focus:      averages.Focus,
			Total:      averages.Total,
		}
	}
	return response
}
