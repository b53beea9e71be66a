package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomoki-abe/shuho/internal/service"
)

func newNewCmd(reportService *service.ReportService) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create or open the week's report",
		Long:  "Create a draft report for the week containing the given date, or open the existing one.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			report, err := reportService.GetOrCreateWeek(ctx, date)
			if err != nil {
				return err
			}

			fmt.Printf("Opened weekly report %s (%s)\n", report.WeekRange(), report.Status)
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Any date in the week (YYYY-MM-DD), defaults to today")

	return cmd
}
