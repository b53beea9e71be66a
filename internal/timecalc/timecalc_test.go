package timecalc_test

import (
	"testing"
	"time"

	"github.com/tomoki-abe/shuho/internal/models"
	"github.com/tomoki-abe/shuho/internal/timecalc"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		input       string
		wantHours   int
		wantMinutes int
	}{
		{"09:00", 9, 0},
		{"9:30", 9, 30},
		{"18:45", 18, 45},
		{"00:00", 0, 0},
		{"", 0, 0},
		{"900", 0, 0},
		{"abc", 0, 0},
		{"ab:cd", 0, 0},
		{"12:xx", 12, 0},
	}
	for _, tt := range tests {
		got := timecalc.ParseTime(tt.input)
		if got.Hours != tt.wantHours || got.Minutes != tt.wantMinutes {
			t.Errorf("ParseTime(%q) = {%d, %d}, want {%d, %d}",
				tt.input, got.Hours, got.Minutes, tt.wantHours, tt.wantMinutes)
		}
	}
}

func TestClockTotalMinutes(t *testing.T) {
	clock := timecalc.ParseTime("09:30")
	if got := clock.TotalMinutes(); got != 570 {
		t.Errorf("TotalMinutes() = %d, want 570", got)
	}
}

func TestCalculateDayHours(t *testing.T) {
	clientBreak := 30

	tests := []struct {
		name   string
		record models.DailyRecord
		want   timecalc.DayHours
	}{
		{
			name:   "standard eight hour day",
			record: models.DailyRecord{StartTime: "09:00", EndTime: "18:00", BreakTime: 60},
			want:   timecalc.DayHours{CompanyRegular: 8, BreakHours: 1},
		},
		{
			name:   "overtime split at eight hours",
			record: models.DailyRecord{StartTime: "09:00", EndTime: "22:00", BreakTime: 60},
			want:   timecalc.DayHours{CompanyRegular: 8, CompanyOvertime: 4, BreakHours: 1},
		},
		{
			name:   "reversed times pass through negative",
			record: models.DailyRecord{StartTime: "18:00", EndTime: "09:00", BreakTime: 0},
			want:   timecalc.DayHours{CompanyRegular: -9},
		},
		{
			name:   "empty day contributes nothing",
			record: models.DailyRecord{},
			want:   timecalc.DayHours{},
		},
		{
			name:   "missing end time means not worked",
			record: models.DailyRecord{StartTime: "09:00"},
			want:   timecalc.DayHours{},
		},
		{
			name: "client hours are never split into overtime",
			record: models.DailyRecord{
				HasClientWork:   true,
				ClientStartTime: "09:00",
				ClientEndTime:   "22:00",
				ClientBreakTime: &clientBreak,
			},
			want: timecalc.DayHours{ClientRegular: 12.5, BreakHours: 0.5},
		},
		{
			name: "client fields ignored without flag",
			record: models.DailyRecord{
				ClientStartTime: "09:00",
				ClientEndTime:   "18:00",
			},
			want: timecalc.DayHours{},
		},
		{
			name: "missing client break defaults to zero",
			record: models.DailyRecord{
				HasClientWork:   true,
				ClientStartTime: "09:00",
				ClientEndTime:   "17:00",
			},
			want: timecalc.DayHours{ClientRegular: 8},
		},
		{
			name: "company and client on the same day",
			record: models.DailyRecord{
				StartTime:       "09:00",
				EndTime:         "18:00",
				BreakTime:       60,
				HasClientWork:   true,
				ClientStartTime: "19:00",
				ClientEndTime:   "21:00",
			},
			want: timecalc.DayHours{CompanyRegular: 8, ClientRegular: 2, BreakHours: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timecalc.CalculateDayHours(&tt.record)
			if got != tt.want {
				t.Errorf("CalculateDayHours() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func newWeekReport(records ...*models.DailyRecord) *models.WeeklyReport {
	start := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC) // a Monday
	report := &models.WeeklyReport{
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 6),
		Status:    models.StatusDraft,
	}
	for i := 0; i < 7; i++ {
		record := &models.DailyRecord{Date: start.AddDate(0, 0, i)}
		if i < len(records) && records[i] != nil {
			record = records[i]
			record.Date = start.AddDate(0, 0, i)
		}
		report.DailyRecords = append(report.DailyRecords, record)
	}
	return report
}

func TestCalculateTotalHours(t *testing.T) {
	report := newWeekReport(
		nil,
		&models.DailyRecord{StartTime: "09:00", EndTime: "18:00", BreakTime: 60},
	)

	totals := timecalc.CalculateTotalHours(report)
	if totals.CompanyTotal != 8 {
		t.Errorf("CompanyTotal = %v, want 8", totals.CompanyTotal)
	}
	if totals.ClientTotal != 0 {
		t.Errorf("ClientTotal = %v, want 0", totals.ClientTotal)
	}
}

func TestCalculateTotalHoursIdempotent(t *testing.T) {
	report := newWeekReport(
		&models.DailyRecord{StartTime: "09:00", EndTime: "20:00", BreakTime: 60},
		&models.DailyRecord{StartTime: "10:00", EndTime: "18:30", BreakTime: 45},
	)

	first := timecalc.CalculateTotalHours(report)
	second := timecalc.CalculateTotalHours(report)
	if first != second {
		t.Errorf("repeated aggregation differs: %+v vs %+v", first, second)
	}
}

func TestCalculateTotalHoursCommutative(t *testing.T) {
	report := newWeekReport(
		&models.DailyRecord{StartTime: "09:00", EndTime: "18:00", BreakTime: 60},
		&models.DailyRecord{StartTime: "09:00", EndTime: "22:00", BreakTime: 60},
		&models.DailyRecord{HasClientWork: true, ClientStartTime: "09:00", ClientEndTime: "17:00"},
	)

	forward := timecalc.CalculateTotalHours(report)

	reversed := &models.WeeklyReport{}
	for i := len(report.DailyRecords) - 1; i >= 0; i-- {
		reversed.DailyRecords = append(reversed.DailyRecords, report.DailyRecords[i])
	}
	backward := timecalc.CalculateTotalHours(reversed)

	if forward != backward {
		t.Errorf("aggregation depends on order: %+v vs %+v", forward, backward)
	}
}

func TestCalculateWorkHours(t *testing.T) {
	report := newWeekReport(
		&models.DailyRecord{StartTime: "09:00", EndTime: "22:00", BreakTime: 60},
		&models.DailyRecord{StartTime: "09:00", EndTime: "18:00", BreakTime: 60},
		&models.DailyRecord{HasClientWork: true, ClientStartTime: "10:00", ClientEndTime: "16:00"},
	)

	week := timecalc.CalculateWorkHours(report)

	if week.CompanyRegularHours != 16 {
		t.Errorf("CompanyRegularHours = %v, want 16", week.CompanyRegularHours)
	}
	if week.CompanyOvertimeHours != 4 {
		t.Errorf("CompanyOvertimeHours = %v, want 4", week.CompanyOvertimeHours)
	}
	if week.ClientRegularHours != 6 {
		t.Errorf("ClientRegularHours = %v, want 6", week.ClientRegularHours)
	}
	if week.ClientOvertimeHours != 0 {
		t.Errorf("ClientOvertimeHours = %v, want 0", week.ClientOvertimeHours)
	}
	if week.TotalHours != 26 {
		t.Errorf("TotalHours = %v, want 26", week.TotalHours)
	}
	if week.WeeklyTotal != week.TotalHours {
		t.Errorf("WeeklyTotal = %v, must equal TotalHours = %v", week.WeeklyTotal, week.TotalHours)
	}
	if week.BreakHours != 2 {
		t.Errorf("BreakHours = %v, want 2", week.BreakHours)
	}
}

func TestWeekRange(t *testing.T) {
	// 2026-09-03 is a Thursday.
	thu := time.Date(2026, 9, 3, 14, 30, 0, 0, time.UTC)
	monday, sunday := timecalc.WeekRange(thu)

	wantMonday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	wantSunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)

	if !monday.Equal(wantMonday) {
		t.Errorf("WeekRange monday = %v, want %v", monday, wantMonday)
	}
	if !sunday.Equal(wantSunday) {
		t.Errorf("WeekRange sunday = %v, want %v", sunday, wantSunday)
	}

	// Sunday still belongs to the week that started the previous Monday.
	sun := time.Date(2026, 9, 6, 8, 0, 0, 0, time.UTC)
	monday2, _ := timecalc.WeekRange(sun)
	if !monday2.Equal(wantMonday) {
		t.Errorf("WeekRange for Sunday = %v, want %v", monday2, wantMonday)
	}
}
