// Package dto carries the wire shapes for weekly reports and the
// conversions between those shapes and the internal models. Incoming
// values pass through the normalizer during conversion.
package dto

import (
	"time"

	"github.com/tomoki-abe/shuho/internal/models"
	"github.com/tomoki-abe/shuho/internal/normalizer"
)

// DailyRecordRequest is one day's attendance as received over the wire.
// Time values may be "HH:MM", "HH:MM:SS" or full ISO datetimes.
type DailyRecordRequest struct {
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	BreakTime       int    `json:"break_time"`
	HasClientWork   bool   `json:"has_client_work"`
	ClientStartTime string `json:"client_start_time"`
	ClientEndTime   string `json:"client_end_time"`
	ClientBreakTime *int   `json:"client_break_time"`
	IsHolidayWork   bool   `json:"is_holiday_work"`
	Remarks         string `json:"remarks"`
}

// WeeklyReportRequest is a full report as received over the wire. Totals
// are intentionally absent: they are derived values and never accepted
// from the caller.
type WeeklyReportRequest struct {
	StartDate     string               `json:"start_date"`
	EndDate       string               `json:"end_date"`
	Mood          int                  `json:"mood"`
	WeeklyRemarks string               `json:"weekly_remarks"`
	Status        string               `json:"status"`
	DailyRecords  []DailyRecordRequest `json:"daily_records"`
}

// DailyRecordResponse is one day's attendance in the export format.
type DailyRecordResponse struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	BreakTime       int    `json:"break_time"`
	HasClientWork   bool   `json:"has_client_work"`
	ClientStartTime string `json:"client_start_time"`
	ClientEndTime   string `json:"client_end_time"`
	ClientBreakTime *int   `json:"client_break_time,omitempty"`
	IsHolidayWork   bool   `json:"is_holiday_work"`
	Remarks         string `json:"remarks"`
}

// WeeklyReportResponse is a full report in the export format.
type WeeklyReportResponse struct {
	ID                   string                `json:"id"`
	StartDate            string                `json:"start_date"`
	EndDate              string                `json:"end_date"`
	Status               string                `json:"status"`
	Mood                 int                   `json:"mood"`
	WeeklyRemarks        string                `json:"weekly_remarks"`
	TotalWorkHours       float64               `json:"total_work_hours"`
	ClientTotalWorkHours float64               `json:"client_total_work_hours"`
	DailyRecords         []DailyRecordResponse `json:"daily_records"`
	SubmittedAt          *time.Time            `json:"submitted_at,omitempty"`
}

// ToModel converts a wire record into the strict internal shape.
func (r DailyRecordRequest) ToModel() *models.DailyRecord {
	record := &models.DailyRecord{
		StartTime:       normalizer.NormalizeTimeOfDay(r.StartTime),
		EndTime:         normalizer.NormalizeTimeOfDay(r.EndTime),
		BreakTime:       normalizer.NormalizeBreakMinutes(r.BreakTime),
		HasClientWork:   r.HasClientWork,
		ClientStartTime: normalizer.NormalizeTimeOfDay(r.ClientStartTime),
		ClientEndTime:   normalizer.NormalizeTimeOfDay(r.ClientEndTime),
		IsHolidayWork:   r.IsHolidayWork,
		Remarks:         r.Remarks,
	}
	if r.ClientBreakTime != nil {
		clientBreak := normalizer.NormalizeBreakMinutes(*r.ClientBreakTime)
		record.ClientBreakTime = &clientBreak
	}
	if date, ok := normalizer.NormalizeDate(r.Date); ok {
		record.Date = date
	}
	return record
}

// ToModel converts a wire report into the strict internal shape. Status
// defaults to draft when absent or unrecognized.
func (r WeeklyReportRequest) ToModel() *models.WeeklyReport {
	report := &models.WeeklyReport{
		Mood:          models.MoodStatus(normalizer.NormalizeMood(r.Mood)),
		WeeklyRemarks: r.WeeklyRemarks,
		Status:        parseStatus(r.Status),
	}
	if start, ok := normalizer.NormalizeDate(r.StartDate); ok {
		report.StartDate = start
	}
	if end, ok := normalizer.NormalizeDate(r.EndDate); ok {
		report.EndDate = end
	}
	for _, day := range r.DailyRecords {
		report.DailyRecords = append(report.DailyRecords, day.ToModel())
	}
	return report
}

// FromModel builds the export shape for a report.
func FromModel(report *models.WeeklyReport) WeeklyReportResponse {
	resp := WeeklyReportResponse{
		ID:                   report.ID,
		StartDate:            report.StartDate.Format("2006-01-02"),
		EndDate:              report.EndDate.Format("2006-01-02"),
		Status:               string(report.Status),
		Mood:                 int(report.Mood),
		WeeklyRemarks:        report.WeeklyRemarks,
		TotalWorkHours:       report.TotalWorkHours,
		ClientTotalWorkHours: report.ClientTotalWorkHours,
		SubmittedAt:          report.SubmittedAt,
	}
	for _, record := range report.DailyRecords {
		resp.DailyRecords = append(resp.DailyRecords, DailyRecordResponse{
			ID:              record.ID,
			Date:            record.Date.Format("2006-01-02"),
			StartTime:       record.StartTime,
			EndTime:         record.EndTime,
			BreakTime:       record.BreakTime,
			HasClientWork:   record.HasClientWork,
			ClientStartTime: record.ClientStartTime,
			ClientEndTime:   record.ClientEndTime,
			ClientBreakTime: record.ClientBreakTime,
			IsHolidayWork:   record.IsHolidayWork,
			Remarks:         record.Remarks,
		})
	}
	return resp
}

func parseStatus(status string) models.WeeklyReportStatus {
	switch models.WeeklyReportStatus(status) {
	case models.StatusSubmitted, models.StatusApproved, models.StatusRejected:
		return models.WeeklyReportStatus(status)
	default:
		return models.StatusDraft
	}
}
