package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tomoki-abe/shuho/internal/service"
)

func newMoodCmd(reportService *service.ReportService) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "mood <1-5>",
		Short: "Set the weekly mood rating",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			mood, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("mood must be a number between 1 and 5")
			}

			report, err := reportService.GetOrCreateWeek(ctx, date)
			if err != nil {
				return err
			}

			if err := reportService.SetMood(ctx, report, mood); err != nil {
				return err
			}

			fmt.Printf("Set mood to %s\n", report.Mood.Label())
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Any date in the week (YYYY-MM-DD), defaults to today")

	return cmd
}
