package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomoki-abe/shuho/internal/service"
	"github.com/tomoki-abe/shuho/internal/validator"
)

func newValidateCmd(reportService *service.ReportService) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the week's report",
		Long:  "Run the submission checks without submitting: validation rules plus the same-time warning.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			report, err := reportService.GetWeek(ctx, date)
			if err != nil {
				return err
			}

			result := validator.Validate(report)
			check := validator.CheckSameWorkTimes(report)

			if result.IsValid && !check.HasSameTime {
				fmt.Println("OK")
				return nil
			}

			for field, msg := range result.Errors {
				fmt.Printf("%s: %s\n", field, msg)
			}
			if check.HasSameTime {
				fmt.Printf("警告: %s\n", check.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Any date in the week (YYYY-MM-DD), defaults to today")

	return cmd
}
