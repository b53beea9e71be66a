package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomoki-abe/shuho/internal/service"
)

func newListCmd(reportService *service.ReportService) *cobra.Command {
	var limit int32

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent weekly reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			reports, err := reportService.ListReports(ctx, limit)
			if err != nil {
				return err
			}

			if len(reports) == 0 {
				fmt.Println("No weekly reports found.")
				return nil
			}

			for _, report := range reports {
				submitted := ""
				if report.SubmittedAt != nil {
					submitted = " | 提出 " + report.SubmittedAt.Format("2006-01-02 15:04")
				}
				fmt.Printf("%s | %-9s | 自社 %.2f h | 客先 %.2f h%s\n",
					report.WeekRange(), report.Status,
					report.TotalWorkHours, report.ClientTotalWorkHours, submitted)
			}
			return nil
		},
	}

	cmd.Flags().Int32VarP(&limit, "limit", "l", 10, "Maximum number of reports to list")

	return cmd
}
