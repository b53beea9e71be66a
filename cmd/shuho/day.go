package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomoki-abe/shuho/internal/service"
)

var weekdayIndex = map[string]int{
	"mon": 0, "tue": 1, "wed": 2, "thu": 3, "fri": 4, "sat": 5, "sun": 6,
	"1": 0, "2": 1, "3": 2, "4": 3, "5": 4, "6": 5, "7": 6,
}

func newDayCmd(reportService *service.ReportService) *cobra.Command {
	var date string
	var startTime, endTime string
	var breakMinutes int
	var clientStart, clientEnd string
	var clientBreak int
	var clientWork, holiday bool
	var remarks string

	cmd := &cobra.Command{
		Use:   "day <mon..sun>",
		Short: "Edit one day's attendance",
		Long: `Edit one weekday's attendance in the current week's report.
Times are HH:MM; breaks are whole minutes. Use --client to enable client
attendance for the day (company times are copied as the starting point).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			dayIndex, ok := weekdayIndex[strings.ToLower(args[0])]
			if !ok {
				return fmt.Errorf("unknown weekday %q, expected mon..sun or 1..7", args[0])
			}

			report, err := reportService.GetOrCreateWeek(ctx, date)
			if err != nil {
				return err
			}

			var patch service.DayPatch
			if cmd.Flags().Changed("start") {
				patch.StartTime = &startTime
			}
			if cmd.Flags().Changed("end") {
				patch.EndTime = &endTime
			}
			if cmd.Flags().Changed("break") {
				patch.BreakTime = &breakMinutes
			}
			if cmd.Flags().Changed("client") {
				patch.HasClientWork = &clientWork
			}
			if cmd.Flags().Changed("client-start") {
				patch.ClientStartTime = &clientStart
			}
			if cmd.Flags().Changed("client-end") {
				patch.ClientEndTime = &clientEnd
			}
			if cmd.Flags().Changed("client-break") {
				patch.ClientBreakTime = &clientBreak
			}
			if cmd.Flags().Changed("holiday") {
				patch.IsHolidayWork = &holiday
			}
			if cmd.Flags().Changed("remarks") {
				patch.Remarks = &remarks
			}

			if err := reportService.UpdateDay(ctx, report, dayIndex, patch); err != nil {
				return err
			}

			record := report.DailyRecords[dayIndex]
			fmt.Printf("Updated %s (%s)\n", args[0], record.Date.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Any date in the week (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVarP(&startTime, "start", "s", "", "Company start time (HH:MM)")
	cmd.Flags().StringVarP(&endTime, "end", "e", "", "Company end time (HH:MM)")
	cmd.Flags().IntVarP(&breakMinutes, "break", "b", 0, "Company break in minutes")
	cmd.Flags().BoolVar(&clientWork, "client", false, "Enable or disable client attendance")
	cmd.Flags().StringVar(&clientStart, "client-start", "", "Client start time (HH:MM)")
	cmd.Flags().StringVar(&clientEnd, "client-end", "", "Client end time (HH:MM)")
	cmd.Flags().IntVar(&clientBreak, "client-break", 0, "Client break in minutes")
	cmd.Flags().BoolVar(&holiday, "holiday", false, "Mark as legitimate holiday work")
	cmd.Flags().StringVarP(&remarks, "remarks", "r", "", "Per-day remarks")

	return cmd
}
