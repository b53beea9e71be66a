package main

import (
	"github.com/spf13/cobra"

	"github.com/tomoki-abe/shuho/internal/service"
)

func newPDFCmd(reportService *service.ReportService) *cobra.Command {
	var date string
	var output string

	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Generate a PDF of the week's report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportService.GeneratePDF(cmd.Context(), date, output)
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Any date in the week (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, defaults to weekly_report_<start date>.pdf")

	return cmd
}
