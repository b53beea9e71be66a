package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomoki-abe/shuho/internal/service"
)

func newExportCmd(reportService *service.ReportService) *cobra.Command {
	var date string
	var output string
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the week's report",
		Long:  "Export the week's daily records as CSV, or the whole report as JSON in the API wire format.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			switch format {
			case "csv":
				return reportService.ExportCSV(ctx, date, output)
			case "json":
				return reportService.ExportJSON(ctx, date, output)
			default:
				return fmt.Errorf("unknown format %q, expected csv or json", format)
			}
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Any date in the week (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, defaults to stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "Export format: csv or json")

	return cmd
}
