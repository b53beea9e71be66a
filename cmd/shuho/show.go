package main

import (
	"github.com/spf13/cobra"

	"github.com/tomoki-abe/shuho/internal/service"
)

func newShowCmd(reportService *service.ReportService) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the week's report",
		Long:  "Display the full weekly report: per-day attendance, totals and remarks.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportService.ShowReport(cmd.Context(), date)
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Any date in the week (YYYY-MM-DD), defaults to today")

	return cmd
}
