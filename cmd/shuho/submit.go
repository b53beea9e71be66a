package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomoki-abe/shuho/internal/message"
	"github.com/tomoki-abe/shuho/internal/service"
)

func newSubmitCmd(reportService *service.ReportService) *cobra.Command {
	var date string
	var draft bool

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit the week's report",
		Long: `Submit the report for the week. Validation must pass and the same-time
warning must not fire. Use --draft to save without submitting; drafts only
need validation to pass.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			report, err := reportService.GetWeek(ctx, date)
			if err != nil {
				return err
			}

			if draft {
				result, err := reportService.SaveDraft(ctx, report)
				if err != nil {
					return err
				}
				if !result.IsValid {
					for field, msg := range result.Errors {
						fmt.Printf("%s: %s\n", field, msg)
					}
					return fmt.Errorf("validation failed")
				}
				fmt.Println(message.MsgDraftSaved)
				return nil
			}

			result, check, err := reportService.SubmitReport(ctx, report)
			if err != nil {
				return err
			}
			if !result.IsValid {
				for field, msg := range result.Errors {
					fmt.Printf("%s: %s\n", field, msg)
				}
				return fmt.Errorf("validation failed")
			}
			if check.HasSameTime {
				return fmt.Errorf("%s", check.Message)
			}

			fmt.Println(message.MsgReportSubmitted)
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Any date in the week (YYYY-MM-DD), defaults to today")
	cmd.Flags().BoolVar(&draft, "draft", false, "Save as draft instead of submitting")

	return cmd
}
