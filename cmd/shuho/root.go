package main

import (
	"github.com/spf13/cobra"

	"github.com/tomoki-abe/shuho/internal/service"
)

func newRootCmd(reportService *service.ReportService) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shuho",
		Short: "CLI weekly work report tool",
		Long: `Manage weekly time reports: record company and client attendance per day,
validate the week and submit it once complete. Company hours beyond 8 per day
are tracked as overtime; client hours are tracked separately.`,
	}

	rootCmd.AddCommand(
		newNewCmd(reportService),
		newDayCmd(reportService),
		newRemarksCmd(reportService),
		newMoodCmd(reportService),
		newShowCmd(reportService),
		newHoursCmd(reportService),
		newValidateCmd(reportService),
		newSubmitCmd(reportService),
		newListCmd(reportService),
		newExportCmd(reportService),
		newPDFCmd(reportService),
		newDeleteCmd(reportService),
	)

	return rootCmd
}
