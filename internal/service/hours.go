package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tomoki-abe/shuho/internal/models"
	"github.com/tomoki-abe/shuho/internal/timecalc"
)

var weekdayLabels = []string{"月", "火", "水", "木", "金", "土", "日"}

// ShowTotalHours prints the weekly per-category hour breakdown.
func (s *ReportService) ShowTotalHours(ctx context.Context, dateStr string) error {
	report, err := s.GetWeek(ctx, dateStr)
	if err != nil {
		return err
	}

	week := timecalc.CalculateWorkHours(report)

	fmt.Printf("%s (%s)\n", report.WeekRange(), report.Status)
	fmt.Printf("自社稼働:   %s h (通常 %s h / 残業 %s h)\n",
		formatHours(week.CompanyRegularHours+week.CompanyOvertimeHours),
		formatHours(week.CompanyRegularHours),
		formatHours(week.CompanyOvertimeHours))
	fmt.Printf("客先稼働:   %s h\n", formatHours(week.ClientRegularHours))
	fmt.Printf("休憩:       %s h\n", formatHours(week.BreakHours))
	fmt.Printf("週合計:     %s h\n", formatHours(week.WeeklyTotal))

	return nil
}

// ShowReport prints the full week, one line per day, followed by totals.
func (s *ReportService) ShowReport(ctx context.Context, dateStr string) error {
	report, err := s.GetWeek(ctx, dateStr)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)  気分: %s\n\n", report.WeekRange(), report.Status, report.Mood.Label())

	for i, record := range report.DailyRecords {
		day := timecalc.CalculateDayHours(record)
		s.displayDay(i, record, day)
	}

	totals := timecalc.CalculateTotalHours(report)
	fmt.Printf("\n自社合計: %s h | 客先合計: %s h\n",
		formatHours(totals.CompanyTotal), formatHours(totals.ClientTotal))

	if report.WeeklyRemarks != "" {
		fmt.Printf("週次所感: %s\n", report.WeeklyRemarks)
	}

	return nil
}

func (s *ReportService) displayDay(index int, record *models.DailyRecord, day timecalc.DayHours) {
	label := weekdayLabels[index%len(weekdayLabels)]

	times := "-"
	if record.StartTime != "" || record.EndTime != "" {
		times = fmt.Sprintf("%s - %s (休憩 %d分)", record.StartTime, record.EndTime, record.BreakTime)
	}

	line := fmt.Sprintf("%s %s | %s | %s h",
		record.Date.Format("01/02"), label, times,
		formatHours(day.CompanyRegular+day.CompanyOvertime))

	if record.IsHolidayWork {
		line += " [休日出勤]"
	}

	if record.HasClientWork && record.ClientStartTime != "" && record.ClientEndTime != "" {
		line += fmt.Sprintf(" | 客先 %s - %s / %s h",
			record.ClientStartTime, record.ClientEndTime, formatHours(day.ClientRegular))
	}

	fmt.Println(line)

	if record.Remarks != "" {
		fmt.Printf("  → %s\n", record.Remarks)
	}
}

// formatHours renders an hour figure with two decimal places, trimming
// trailing zeros so whole hours print as "8".
func formatHours(hours float64) string {
	return decimal.NewFromFloat(hours).Round(2).String()
}
