// Package timecalc holds the work-hour arithmetic for weekly reports.
// Every function is a pure transformation of its arguments: no I/O and
// no mutation of the input records, so calls are safe to repeat.
package timecalc

import (
	"strconv"
	"strings"
	"time"

	"github.com/tomoki-abe/shuho/internal/models"
)

// Company hours beyond this per-day threshold count as overtime.
const RegularHoursPerDay = 8.0

// Clock is a parsed "HH:MM" value.
type Clock struct {
	Hours   int
	Minutes int
}

// TotalMinutes returns the offset from 0:00 in minutes.
func (c Clock) TotalMinutes() int {
	return c.Hours*60 + c.Minutes
}

// ParseTime splits a "H:MM" or "HH:MM" string into a Clock. Empty strings,
// strings without a colon and non-numeric parts all fall back to zero
// instead of failing, so partially filled forms flow through unchanged.
func ParseTime(value string) Clock {
	if value == "" || !strings.Contains(value, ":") {
		return Clock{}
	}
	parts := strings.SplitN(value, ":", 2)
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		hours = 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		minutes = 0
	}
	return Clock{Hours: hours, Minutes: minutes}
}

// DayHours is the breakdown of one day's worked time.
type DayHours struct {
	CompanyRegular  float64
	CompanyOvertime float64
	ClientRegular   float64
	ClientOvertime  float64
	BreakHours      float64
}

// Totals is the weekly company/client hour pair.
type Totals struct {
	CompanyTotal float64
	ClientTotal  float64
}

// WeekHours is the weekly per-category aggregate.
type WeekHours struct {
	CompanyRegularHours  float64
	CompanyOvertimeHours float64
	ClientRegularHours   float64
	ClientOvertimeHours  float64
	TotalHours           float64
	BreakHours           float64
	// WeeklyTotal mirrors TotalHours; the old field name is kept for
	// backward compatibility and both must always carry the same value.
	WeeklyTotal float64
}

// CalculateDayHours computes one day's hour breakdown.
//
// The company portion only runs when both start and end are present:
// (end - start - break) converted to hours, split at 8h into regular and
// overtime. A reversed start/end pair yields a negative duration which is
// passed through unclamped; the validator relies on negative totals being
// rejected the same way as zero.
//
// Client hours use the same arithmetic but are never split into overtime.
func CalculateDayHours(record *models.DailyRecord) DayHours {
	var result DayHours

	if record.StartTime != "" && record.EndTime != "" {
		start := ParseTime(record.StartTime)
		end := ParseTime(record.EndTime)
		workMinutes := end.TotalMinutes() - start.TotalMinutes() - record.BreakTime
		hours := float64(workMinutes) / 60.0

		if hours > RegularHoursPerDay {
			result.CompanyRegular = RegularHoursPerDay
			result.CompanyOvertime = hours - RegularHoursPerDay
		} else {
			result.CompanyRegular = hours
		}
		result.BreakHours += float64(record.BreakTime) / 60.0
	}

	if record.HasClientWork && record.ClientStartTime != "" && record.ClientEndTime != "" {
		clientBreak := 0
		if record.ClientBreakTime != nil {
			clientBreak = *record.ClientBreakTime
		}
		start := ParseTime(record.ClientStartTime)
		end := ParseTime(record.ClientEndTime)
		workMinutes := end.TotalMinutes() - start.TotalMinutes() - clientBreak

		result.ClientRegular = float64(workMinutes) / 60.0
		result.BreakHours += float64(clientBreak) / 60.0
	}

	return result
}

// CalculateTotalHours sums the daily records in week order into company and
// client totals. Malformed days contribute whatever they compute, including
// zero or negative hours.
func CalculateTotalHours(report *models.WeeklyReport) Totals {
	var totals Totals
	for _, record := range report.DailyRecords {
		day := CalculateDayHours(record)
		totals.CompanyTotal += day.CompanyRegular + day.CompanyOvertime
		totals.ClientTotal += day.ClientRegular + day.ClientOvertime
	}
	return totals
}

// CalculateWorkHours returns the weekly per-category aggregate.
func CalculateWorkHours(report *models.WeeklyReport) WeekHours {
	var week WeekHours
	for _, record := range report.DailyRecords {
		day := CalculateDayHours(record)
		week.CompanyRegularHours += day.CompanyRegular
		week.CompanyOvertimeHours += day.CompanyOvertime
		week.ClientRegularHours += day.ClientRegular
		week.ClientOvertimeHours += day.ClientOvertime
		week.BreakHours += day.BreakHours
	}
	week.TotalHours = week.CompanyRegularHours + week.CompanyOvertimeHours +
		week.ClientRegularHours + week.ClientOvertimeHours
	week.WeeklyTotal = week.TotalHours
	return week
}

// WeekRange returns the Monday 00:00 and Sunday 00:00 of the week containing t.
func WeekRange(t time.Time) (time.Time, time.Time) {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	monday := t.AddDate(0, 0, -(weekday - 1))
	monday = time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
	return monday, monday.AddDate(0, 0, 6)
}
