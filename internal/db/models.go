package db

import (
	"time"

	"gorm.io/datatypes"
)

// StaffProfile holds the per-staff settings the time tracker needs.
// The profile is keyed by the auth subject; everything else about the
// person (name, client assignment, role) lives in the platform core.
type StaffProfile struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"userId" gorm:"uniqueIndex;not null"` // auth subject
	DisplayName string    `json:"displayName"`
	Timezone    string    `json:"timezone" gorm:"default:'Asia/Manila'"` // IANA zone name
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	ScheduleEntries []WorkScheduleEntry `json:"scheduleEntries" gorm:"foreignKey:StaffUserID;references:UserID"`
}

// WorkScheduleEntry is one row per (staff, day-of-week). Start and end
// times are wall-clock strings in the staff timezone; both "9:00 AM" and
// "18:00" forms are accepted at the entry boundary.
type WorkScheduleEntry struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	StaffUserID string    `json:"staffUserId" gorm:"not null;uniqueIndex:idx_schedule_staff_day"`
	DayOfWeek   string    `json:"dayOfWeek" gorm:"not null;uniqueIndex:idx_schedule_staff_day"` // "Monday".."Sunday"
	IsWorkday   bool      `json:"isWorkday" gorm:"default:true"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	ShiftType   string    `json:"shiftType" gorm:"default:'DAY_SHIFT'"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TimeEntry is one physical work session. ClockOut == nil means the
// session is still open; at most one open entry may exist per staff, and
// the (staff, shift date) pair is unique so a shift can only be logged
// once.
type TimeEntry struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	StaffUserID string     `json:"staffUserId" gorm:"not null;index;uniqueIndex:idx_entry_staff_shift_date"`
	ClockIn     time.Time  `json:"clockIn" gorm:"not null"`
	ClockOut    *time.Time `json:"clockOut"` // nil while the session is open

	// ShiftDate is the calendar date the session's schedule belongs to,
	// which for a night-shift crossover is the day before the clock-in.
	ShiftDate      time.Time `json:"shiftDate" gorm:"type:date;not null;uniqueIndex:idx_entry_staff_shift_date"`
	ShiftDayOfWeek string    `json:"shiftDayOfWeek" gorm:"not null"`

	ExpectedClockIn  *time.Time `json:"expectedClockIn"`
	ExpectedClockOut *time.Time `json:"expectedClockOut"`

	WasLate    bool    `json:"wasLate" gorm:"default:false"`
	LateBy     int     `json:"lateBy" gorm:"default:0"` // minutes
	LateReason *string `json:"lateReason"`
	WasEarly   bool    `json:"wasEarly" gorm:"default:false"`
	EarlyBy    int     `json:"earlyBy" gorm:"default:0"` // minutes

	WasEarlyClockOut bool    `json:"wasEarlyClockOut" gorm:"default:false"`
	EarlyClockOutBy  int     `json:"earlyClockOutBy" gorm:"default:0"` // minutes
	WorkedFullShift  bool    `json:"workedFullShift" gorm:"default:false"`
	TotalHours       float64 `json:"totalHours" gorm:"default:0"` // net of breaks

	BreaksScheduled bool    `json:"breaksScheduled" gorm:"default:false"`
	ClockOutReason  *string `json:"clockOutReason"`
	Notes           *string `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Breaks []Break `json:"breaks" gorm:"foreignKey:TimeEntryID"`
}

// Break is a scheduled rest period inside a TimeEntry. Scheduled times
// are wall-clock strings; ActualStart/ActualEnd are stamped when the
// break is actually taken. ShiftDate/ShiftDayOfWeek are copied from the
// parent entry so reports group breaks by shift, not calendar day.
type Break struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	TimeEntryID uint   `json:"timeEntryId" gorm:"not null;index"`
	StaffUserID string `json:"staffUserId" gorm:"not null;index"`
	Type        string `json:"type" gorm:"not null"` // MORNING, LUNCH, AFTERNOON

	ScheduledStart string     `json:"scheduledStart"`
	ScheduledEnd   string     `json:"scheduledEnd"`
	ActualStart    *time.Time `json:"actualStart"`
	ActualEnd      *time.Time `json:"actualEnd"`

	DurationMinutes int       `json:"durationMinutes" gorm:"default:0"`
	ShiftDate       time.Time `json:"shiftDate" gorm:"type:date;not null"`
	ShiftDayOfWeek  string    `json:"shiftDayOfWeek" gorm:"not null"`
	CreatedAt       time.Time `json:"createdAt"`

	// Relations
	TimeEntry TimeEntry `json:"timeEntry" gorm:"foreignKey:TimeEntryID"`
}

// PerformanceMetric is the daily activity snapshot pushed by the desktop
// tracker. Time fields are minutes. One row per (staff, date).
type PerformanceMetric struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	StaffUserID string    `json:"staffUserId" gorm:"not null;uniqueIndex:idx_metric_staff_date"`
	Date        time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:idx_metric_staff_date"`

	Keystrokes    int `json:"keystrokes" gorm:"default:0"`
	MouseClicks   int `json:"mouseClicks" gorm:"default:0"`
	ActiveMinutes int `json:"activeMinutes" gorm:"default:0"`
	IdleMinutes   int `json:"idleMinutes" gorm:"default:0"`
	ScreenMinutes int `json:"screenMinutes" gorm:"default:0"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DailyScore is the computed productivity record, one row per
// (staff, date), recomputed idempotently when fresh metrics arrive.
// Timing and activity fields are denormalized copies for display.
type DailyScore struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	StaffUserID string    `json:"staffUserId" gorm:"not null;uniqueIndex:idx_score_staff_date"`
	Date        time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:idx_score_staff_date"`

	AttendanceScore int `json:"attendanceScore" gorm:"default:0"` // 0-25
	BreakScore      int `json:"breakScore" gorm:"default:0"`      // 0-15
	ActivityScore   int `json:"activityScore" gorm:"default:0"`   // 0-30
	FocusScore      int `json:"focusScore" gorm:"default:0"`      // 0-30
	TotalScore      int `json:"totalScore" gorm:"default:0"`      // 0-100

	EnergyLevel  string         `json:"energyLevel" gorm:"default:'LOW'"` // HIGH, MEDIUM, LOW
	Achievements datatypes.JSON `json:"achievements"`                     // ordered badge names
	Streak       int            `json:"streak" gorm:"default:0"`          // consecutive days >= 85

	ClockInTime   *time.Time `json:"clockInTime"`
	ClockOutTime  *time.Time `json:"clockOutTime"`
	TotalHours    float64    `json:"totalHours" gorm:"default:0"`
	Keystrokes    int        `json:"keystrokes" gorm:"default:0"`
	MouseClicks   int        `json:"mouseClicks" gorm:"default:0"`
	ActiveMinutes int        `json:"activeMinutes" gorm:"default:0"`
	IdleMinutes   int        `json:"idleMinutes" gorm:"default:0"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ShiftType constants
const (
	ShiftTypeDay   = "DAY_SHIFT"
	ShiftTypeNight = "NIGHT_SHIFT"
)

// BreakType constants
const (
	BreakTypeMorning   = "MORNING"
	BreakTypeLunch     = "LUNCH"
	BreakTypeAfternoon = "AFTERNOON"
)

// EnergyLevel constants
const (
	EnergyHigh   = "HIGH"
	EnergyMedium = "MEDIUM"
	EnergyLow    = "LOW"
)

// DefaultTimezone is applied to staff profiles created lazily on first
// contact, before management has set the real zone.
const DefaultTimezone = "Asia/Manila"
