package service

import (
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/tomoki-abe/shuho/internal/timecalc"
)

// Weekday column labels for the PDF. The built-in core fonts have no CJK
// glyphs, so the PDF sticks to ASCII labels.
var pdfWeekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// GeneratePDF renders the week as a one-page PDF report.
func (s *ReportService) GeneratePDF(ctx context.Context, dateStr, output string) error {
	report, err := s.GetWeek(ctx, dateStr)
	if err != nil {
		return err
	}

	if output == "" {
		output = fmt.Sprintf("weekly_report_%s.pdf", report.StartDate.Format("2006-01-02"))
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)

	pdf.Cell(40, 10, "Weekly Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	if s.cfg.AuthorName != "" {
		pdf.Cell(95, 6, fmt.Sprintf("Author: %s", s.cfg.AuthorName))
		pdf.Ln(6)
	}
	if s.cfg.Department != "" {
		pdf.Cell(95, 6, fmt.Sprintf("Department: %s", s.cfg.Department))
		pdf.Ln(6)
	}
	pdf.Cell(95, 6, fmt.Sprintf("Week: %s to %s",
		report.StartDate.Format("2006-01-02"), report.EndDate.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(95, 6, fmt.Sprintf("Status: %s", report.Status))
	pdf.Ln(10)

	// Table headers sized to fit A4 (~190mm total)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(18, 8, "Day", "1", 0, "C", false, 0, "")
	pdf.CellFormat(24, 8, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(34, 8, "Company", "1", 0, "C", false, 0, "")
	pdf.CellFormat(18, 8, "Break", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 8, "Hours", "1", 0, "C", false, 0, "")
	pdf.CellFormat(34, 8, "Client", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 8, "Cl. Hours", "1", 0, "C", false, 0, "")
	pdf.CellFormat(22, 8, "Holiday", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 8)
	for i, record := range report.DailyRecords {
		day := timecalc.CalculateDayHours(record)

		companyTimes := ""
		if record.StartTime != "" && record.EndTime != "" {
			companyTimes = fmt.Sprintf("%s - %s", record.StartTime, record.EndTime)
		}
		clientTimes := ""
		if record.HasClientWork && record.ClientStartTime != "" && record.ClientEndTime != "" {
			clientTimes = fmt.Sprintf("%s - %s", record.ClientStartTime, record.ClientEndTime)
		}
		holiday := ""
		if record.IsHolidayWork {
			holiday = "yes"
		}

		pdf.CellFormat(18, 7, pdfWeekdays[i%len(pdfWeekdays)], "1", 0, "C", false, 0, "")
		pdf.CellFormat(24, 7, record.Date.Format("01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(34, 7, companyTimes, "1", 0, "C", false, 0, "")
		pdf.CellFormat(18, 7, fmt.Sprintf("%dm", record.BreakTime), "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 7, formatHours(day.CompanyRegular+day.CompanyOvertime), "1", 0, "R", false, 0, "")
		pdf.CellFormat(34, 7, clientTimes, "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 7, formatHours(day.ClientRegular), "1", 0, "R", false, 0, "")
		pdf.CellFormat(22, 7, holiday, "1", 1, "C", false, 0, "")
	}

	week := timecalc.CalculateWorkHours(report)

	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(148, 8, "Company hours (regular / overtime):")
	pdf.CellFormat(42, 8, fmt.Sprintf("%s / %s",
		formatHours(week.CompanyRegularHours), formatHours(week.CompanyOvertimeHours)),
		"", 1, "R", false, 0, "")

	pdf.Cell(148, 8, "Client hours:")
	pdf.CellFormat(42, 8, formatHours(week.ClientRegularHours), "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(148, 10, "Weekly total:")
	pdf.CellFormat(42, 10, formatHours(week.WeeklyTotal), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(output); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	fmt.Printf("Generated report: %s\n", output)
	return nil
}
