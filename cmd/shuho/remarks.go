package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomoki-abe/shuho/internal/service"
)

func newRemarksCmd(reportService *service.ReportService) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "remarks <text>",
		Short: "Set the weekly remarks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			report, err := reportService.GetOrCreateWeek(ctx, date)
			if err != nil {
				return err
			}

			if err := reportService.SetRemarks(ctx, report, strings.Join(args, " ")); err != nil {
				return err
			}

			fmt.Println("Updated weekly remarks")
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Any date in the week (YYYY-MM-DD), defaults to today")

	return cmd
}
