package models

import (
	"time"

	"github.com/google/uuid"
)

// WeeklyReportStatus is the report lifecycle state.
type WeeklyReportStatus string

const (
	StatusDraft     WeeklyReportStatus = "draft"
	StatusSubmitted WeeklyReportStatus = "submitted"
	StatusApproved  WeeklyReportStatus = "approved"
	StatusRejected  WeeklyReportStatus = "rejected"
)

// MoodStatus is the subjective weekly rating (1-5).
type MoodStatus int

const (
	MoodVeryBad  MoodStatus = 1
	MoodBad      MoodStatus = 2
	MoodNeutral  MoodStatus = 3
	MoodGood     MoodStatus = 4
	MoodVeryGood MoodStatus = 5
)

func (m MoodStatus) Label() string {
	switch m {
	case MoodVeryBad:
		return "とても悪い"
	case MoodBad:
		return "悪い"
	case MoodNeutral:
		return "普通"
	case MoodGood:
		return "良い"
	case MoodVeryGood:
		return "とても良い"
	default:
		return "普通"
	}
}

// DailyRecord is one calendar day's attendance entry. Empty start/end
// strings mean "not worked"; the client fields are only meaningful when
// HasClientWork is set. Break times are whole minutes.
type DailyRecord struct {
	ID              string    `json:"id" db:"id"`
	WeeklyReportID  string    `json:"weekly_report_id" db:"weekly_report_id"`
	Date            time.Time `json:"date" db:"date"`
	StartTime       string    `json:"start_time" db:"start_time"`
	EndTime         string    `json:"end_time" db:"end_time"`
	BreakTime       int       `json:"break_time" db:"break_time"`
	HasClientWork   bool      `json:"has_client_work" db:"has_client_work"`
	ClientStartTime string    `json:"client_start_time" db:"client_start_time"`
	ClientEndTime   string    `json:"client_end_time" db:"client_end_time"`
	ClientBreakTime *int      `json:"client_break_time,omitempty" db:"client_break_time"`
	IsHolidayWork   bool      `json:"is_holiday_work" db:"is_holiday_work"`
	Remarks         string    `json:"remarks" db:"remarks"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// WeeklyReport aggregates exactly 7 daily records spanning Monday-Sunday.
// TotalWorkHours and ClientTotalWorkHours are derived values; they are
// recomputed from the daily records on every save and never accepted
// directly from input.
type WeeklyReport struct {
	ID                   string             `json:"id" db:"id"`
	StartDate            time.Time          `json:"start_date" db:"start_date"`
	EndDate              time.Time          `json:"end_date" db:"end_date"`
	Status               WeeklyReportStatus `json:"status" db:"status"`
	Mood                 MoodStatus         `json:"mood" db:"mood"`
	WeeklyRemarks        string             `json:"weekly_remarks" db:"weekly_remarks"`
	TotalWorkHours       float64            `json:"total_work_hours" db:"total_work_hours"`
	ClientTotalWorkHours float64            `json:"client_total_work_hours" db:"client_total_work_hours"`
	SubmittedAt          *time.Time         `json:"submitted_at,omitempty" db:"submitted_at"`
	CreatedAt            time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at" db:"updated_at"`

	DailyRecords []*DailyRecord `json:"daily_records,omitempty" db:"-"`
}

// IsSubmitted reports whether the report has left the draft stage.
func (w *WeeklyReport) IsSubmitted() bool {
	return w.Status == StatusSubmitted ||
		w.Status == StatusApproved ||
		w.Status == StatusRejected
}

// IsEditable reports whether field edits are still allowed. Rejected
// reports stay editable so they can be fixed and resubmitted.
func (w *WeeklyReport) IsEditable() bool {
	return w.Status == StatusDraft || w.Status == StatusRejected
}

// Submit moves the report to submitted. Only draft and rejected reports
// may transition; approval and rejection happen elsewhere.
func (w *WeeklyReport) Submit(now time.Time) error {
	if w.Status == StatusSubmitted || w.Status == StatusApproved {
		return ErrAlreadySubmitted
	}
	w.Status = StatusSubmitted
	w.SubmittedAt = &now
	return nil
}

// WeekRange formats the report's date window for display.
func (w *WeeklyReport) WeekRange() string {
	return w.StartDate.Format("2006/01/02") + " - " + w.EndDate.Format("2006/01/02")
}

func NewUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}
