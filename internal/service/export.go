package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/tomoki-abe/shuho/internal/dto"
	"github.com/tomoki-abe/shuho/internal/timecalc"
)

// ExportCSV writes the week's daily records as CSV. An empty or "-"
// output path writes to stdout.
func (s *ReportService) ExportCSV(ctx context.Context, dateStr, output string) error {
	report, err := s.GetWeek(ctx, dateStr)
	if err != nil {
		return err
	}

	file, closeFile, err := s.openOutput(output)
	if err != nil {
		return err
	}
	defer closeFile()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"date", "start_time", "end_time", "break_minutes", "work_hours",
		"client_start_time", "client_end_time", "client_break_minutes", "client_hours",
		"holiday_work", "remarks",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, record := range report.DailyRecords {
		day := timecalc.CalculateDayHours(record)

		clientBreak := ""
		if record.ClientBreakTime != nil {
			clientBreak = strconv.Itoa(*record.ClientBreakTime)
		}

		row := []string{
			record.Date.Format("2006-01-02"),
			record.StartTime,
			record.EndTime,
			strconv.Itoa(record.BreakTime),
			formatHours(day.CompanyRegular + day.CompanyOvertime),
			record.ClientStartTime,
			record.ClientEndTime,
			clientBreak,
			formatHours(day.ClientRegular),
			strconv.FormatBool(record.IsHolidayWork),
			record.Remarks,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	if output != "" && output != "-" {
		fmt.Printf("Exported %d days to %s\n", len(report.DailyRecords), output)
	}
	return nil
}

// ExportJSON writes the week in the wire format via the dto layer.
func (s *ReportService) ExportJSON(ctx context.Context, dateStr, output string) error {
	report, err := s.GetWeek(ctx, dateStr)
	if err != nil {
		return err
	}

	file, closeFile, err := s.openOutput(output)
	if err != nil {
		return err
	}
	defer closeFile()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(dto.FromModel(report)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if output != "" && output != "-" {
		fmt.Printf("Exported report to %s\n", output)
	}
	return nil
}

func (s *ReportService) openOutput(output string) (*os.File, func(), error) {
	if output == "" || output == "-" {
		return os.Stdout, func() {}, nil
	}
	file, err := os.Create(output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return file, func() { file.Close() }, nil
}
