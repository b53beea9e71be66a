// Package validator applies the weekly report business rules. Results are
// returned as data, never raised: a field-keyed error map for blocking
// rules and a separate advisory flag for the same-time check.
package validator

import (
	"unicode/utf8"

	"github.com/tomoki-abe/shuho/internal/message"
	"github.com/tomoki-abe/shuho/internal/models"
	"github.com/tomoki-abe/shuho/internal/timecalc"
)

// Weekly remarks above this rune count are rejected.
const MaxWeeklyRemarksLength = 1000

// Result is the outcome of validating a report. Errors maps field keys
// (message.FieldWeeklyRemarks, message.FieldDailyRecords) to messages.
type Result struct {
	IsValid bool
	Errors  map[string]string
}

// SameTimeCheck is the advisory result of the company/client overlap scan.
// It is not part of Result.Errors; callers decide whether it blocks.
type SameTimeCheck struct {
	HasSameTime bool
	Message     string
}

// Validate evaluates every rule independently and collects all errors.
//
// Rules:
//  1. weekly remarks must be at most MaxWeeklyRemarksLength runes
//  2. the week's combined company+client total must be positive; zero and
//     negative totals (reversed start/end times) both fail
//  3. a day with only one of start/end filled in is incomplete
//
// Rule 3 shares the dailyRecords key with rule 2 and only fills it when
// rule 2 left it empty.
func Validate(report *models.WeeklyReport) Result {
	errors := make(map[string]string)

	if utf8.RuneCountInString(report.WeeklyRemarks) > MaxWeeklyRemarksLength {
		errors[message.FieldWeeklyRemarks] = message.MsgWeeklyRemarksTooLong
	}

	totals := timecalc.CalculateTotalHours(report)
	if totals.CompanyTotal+totals.ClientTotal <= 0 {
		errors[message.FieldDailyRecords] = message.MsgWorkTimeRequired
	}

	if _, taken := errors[message.FieldDailyRecords]; !taken {
		for _, record := range report.DailyRecords {
			if (record.StartTime == "") != (record.EndTime == "") {
				errors[message.FieldDailyRecords] = message.MsgIncompleteTimeEntry
				break
			}
		}
	}

	return Result{IsValid: len(errors) == 0, Errors: errors}
}

// CheckSameWorkTimes scans the week in order for a day whose client
// attendance exactly duplicates its company attendance: start, end and
// break must all match, with a missing client break treated as 0. The
// scan stops at the first match; partial matches never trigger.
func CheckSameWorkTimes(report *models.WeeklyReport) SameTimeCheck {
	for _, record := range report.DailyRecords {
		if !record.HasClientWork || record.ClientStartTime == "" || record.ClientEndTime == "" {
			continue
		}

		clientBreak := 0
		if record.ClientBreakTime != nil {
			clientBreak = *record.ClientBreakTime
		}

		if record.StartTime == record.ClientStartTime &&
			record.EndTime == record.ClientEndTime &&
			record.BreakTime == clientBreak {
			return SameTimeCheck{HasSameTime: true, Message: message.MsgSameWorkTimeWarning}
		}
	}
	return SameTimeCheck{}
}
