package main

import (
	"github.com/spf13/cobra"

	"github.com/tomoki-abe/shuho/internal/service"
)

func newHoursCmd(reportService *service.ReportService) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "hours",
		Short: "Display the week's hour totals",
		Long:  "Display the weekly hour totals split into company regular/overtime, client and break hours.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportService.ShowTotalHours(cmd.Context(), date)
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Any date in the week (YYYY-MM-DD), defaults to today")

	return cmd
}
