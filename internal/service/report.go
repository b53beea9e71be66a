package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tomoki-abe/shuho/internal/config"
	"github.com/tomoki-abe/shuho/internal/database"
	"github.com/tomoki-abe/shuho/internal/models"
	"github.com/tomoki-abe/shuho/internal/normalizer"
	"github.com/tomoki-abe/shuho/internal/timecalc"
	"github.com/tomoki-abe/shuho/internal/validator"
)

type ReportService struct {
	db  database.DB
	cfg *config.Config
}

func NewReportService(db database.DB, cfg *config.Config) *ReportService {
	return &ReportService{db: db, cfg: cfg}
}

// ResolveWeek parses an optional YYYY-MM-DD date and returns the
// Monday/Sunday bounds of the week containing it, defaulting to today.
func (s *ReportService) ResolveWeek(dateStr string) (time.Time, time.Time, error) {
	target := time.Now()
	if dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid date format, expected YYYY-MM-DD: %w", err)
		}
		target = parsed
	}
	start, end := timecalc.WeekRange(target)
	return start, end, nil
}

// GetOrCreateWeek loads the report for the week containing dateStr,
// scaffolding a fresh draft with 7 empty daily records when none exists.
func (s *ReportService) GetOrCreateWeek(ctx context.Context, dateStr string) (*models.WeeklyReport, error) {
	start, end, err := s.ResolveWeek(dateStr)
	if err != nil {
		return nil, err
	}

	report, err := s.db.GetReportByStartDate(ctx, start.Format("2006-01-02"))
	if err == nil {
		return report, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up weekly report: %w", err)
	}

	report = &models.WeeklyReport{
		StartDate: start,
		EndDate:   end,
		Status:    models.StatusDraft,
		Mood:      models.MoodNeutral,
	}
	for i := 0; i < 7; i++ {
		report.DailyRecords = append(report.DailyRecords, &models.DailyRecord{
			Date: start.AddDate(0, 0, i),
		})
	}

	if err := s.db.CreateReport(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to create weekly report: %w", err)
	}
	return report, nil
}

// GetWeek loads the report for the week containing dateStr without
// creating one.
func (s *ReportService) GetWeek(ctx context.Context, dateStr string) (*models.WeeklyReport, error) {
	start, _, err := s.ResolveWeek(dateStr)
	if err != nil {
		return nil, err
	}

	report, err := s.db.GetReportByStartDate(ctx, start.Format("2006-01-02"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to look up weekly report: %w", err)
	}
	return report, nil
}

// DayPatch carries the per-day fields an edit may change. Nil fields are
// left untouched.
type DayPatch struct {
	StartTime       *string
	EndTime         *string
	BreakTime       *int
	HasClientWork   *bool
	ClientStartTime *string
	ClientEndTime   *string
	ClientBreakTime *int
	IsHolidayWork   *bool
	Remarks         *string
}

// UpdateDay applies a patch to one weekday (0 = Monday) and persists the
// report with recomputed totals. Enabling client work copies the company
// times as the starting point; disabling it clears the client fields.
func (s *ReportService) UpdateDay(ctx context.Context, report *models.WeeklyReport, dayIndex int, patch DayPatch) error {
	if !report.IsEditable() {
		return models.ErrNotEditable
	}
	if dayIndex < 0 || dayIndex >= len(report.DailyRecords) {
		return fmt.Errorf("day index %d out of range", dayIndex)
	}

	record := report.DailyRecords[dayIndex]

	if patch.StartTime != nil {
		record.StartTime = normalizer.NormalizeTimeOfDay(*patch.StartTime)
	}
	if patch.EndTime != nil {
		record.EndTime = normalizer.NormalizeTimeOfDay(*patch.EndTime)
	}
	if patch.BreakTime != nil {
		record.BreakTime = normalizer.NormalizeBreakMinutes(*patch.BreakTime)
	}

	if patch.HasClientWork != nil {
		if *patch.HasClientWork {
			record.HasClientWork = true
			if record.ClientStartTime == "" {
				record.ClientStartTime = record.StartTime
			}
			if record.ClientEndTime == "" {
				record.ClientEndTime = record.EndTime
			}
			if record.ClientBreakTime == nil {
				clientBreak := record.BreakTime
				record.ClientBreakTime = &clientBreak
			}
		} else {
			record.HasClientWork = false
			record.ClientStartTime = ""
			record.ClientEndTime = ""
			record.ClientBreakTime = nil
		}
	}

	if patch.ClientStartTime != nil {
		record.ClientStartTime = normalizer.NormalizeTimeOfDay(*patch.ClientStartTime)
		record.HasClientWork = true
	}
	if patch.ClientEndTime != nil {
		record.ClientEndTime = normalizer.NormalizeTimeOfDay(*patch.ClientEndTime)
		record.HasClientWork = true
	}
	if patch.ClientBreakTime != nil {
		clientBreak := normalizer.NormalizeBreakMinutes(*patch.ClientBreakTime)
		record.ClientBreakTime = &clientBreak
		record.HasClientWork = true
	}

	if patch.IsHolidayWork != nil {
		record.IsHolidayWork = *patch.IsHolidayWork
	}
	if patch.Remarks != nil {
		record.Remarks = *patch.Remarks
	}

	return s.persist(ctx, report)
}

// SetRemarks updates the weekly remarks.
func (s *ReportService) SetRemarks(ctx context.Context, report *models.WeeklyReport, remarks string) error {
	if !report.IsEditable() {
		return models.ErrNotEditable
	}
	report.WeeklyRemarks = remarks
	return s.persist(ctx, report)
}

// SetMood updates the weekly mood rating.
func (s *ReportService) SetMood(ctx context.Context, report *models.WeeklyReport, mood int) error {
	if !report.IsEditable() {
		return models.ErrNotEditable
	}
	report.Mood = models.MoodStatus(normalizer.NormalizeMood(mood))
	return s.persist(ctx, report)
}

// SaveDraft validates the report and persists it as a draft. The
// same-time warning does not block draft saves.
func (s *ReportService) SaveDraft(ctx context.Context, report *models.WeeklyReport) (validator.Result, error) {
	result := validator.Validate(report)
	if !result.IsValid {
		return result, nil
	}
	if !report.IsEditable() {
		return result, models.ErrNotEditable
	}
	report.Status = models.StatusDraft
	if err := s.persist(ctx, report); err != nil {
		return result, err
	}
	return result, nil
}

// SubmitReport gates the draft-to-submitted transition: validation must
// pass and the same-time warning must not fire.
func (s *ReportService) SubmitReport(ctx context.Context, report *models.WeeklyReport) (validator.Result, validator.SameTimeCheck, error) {
	result := validator.Validate(report)
	if !result.IsValid {
		return result, validator.SameTimeCheck{}, nil
	}

	check := validator.CheckSameWorkTimes(report)
	if check.HasSameTime {
		return result, check, nil
	}

	if err := report.Submit(time.Now()); err != nil {
		return result, check, err
	}
	// Totals are kept fresh on every edit; submitting only moves the
	// status and timestamp.
	if err := s.db.UpdateReportStatus(ctx, report); err != nil {
		return result, check, fmt.Errorf("failed to save weekly report: %w", err)
	}
	return result, check, nil
}

// DeleteWeek removes the report for the week containing dateStr.
func (s *ReportService) DeleteWeek(ctx context.Context, dateStr string) error {
	report, err := s.GetWeek(ctx, dateStr)
	if err != nil {
		return err
	}
	if err := s.db.DeleteReport(ctx, report.ID); err != nil {
		return fmt.Errorf("failed to delete weekly report: %w", err)
	}
	return nil
}

// ListReports returns the most recent reports, newest first.
func (s *ReportService) ListReports(ctx context.Context, limit int32) ([]*models.WeeklyReport, error) {
	return s.db.ListReports(ctx, limit)
}

// persist writes the report with freshly derived totals. Stored totals
// are never trusted; they are recomputed from the daily records on every
// save.
func (s *ReportService) persist(ctx context.Context, report *models.WeeklyReport) error {
	totals := timecalc.CalculateTotalHours(report)
	report.TotalWorkHours = totals.CompanyTotal
	report.ClientTotalWorkHours = totals.ClientTotal

	if err := s.db.UpdateReport(ctx, report); err != nil {
		return fmt.Errorf("failed to save weekly report: %w", err)
	}
	return nil
}
