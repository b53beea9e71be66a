package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomoki-abe/shuho/internal/service"
)

func newDeleteCmd(reportService *service.ReportService) *cobra.Command {
	var date string
	var force bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the week's report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !force {
				fmt.Print("Delete this week's report and all its daily records? (y/N): ")
				reader := bufio.NewReader(os.Stdin)
				answer, _ := reader.ReadString('\n')
				if strings.ToLower(strings.TrimSpace(answer)) != "y" {
					fmt.Println("Cancelled.")
					return nil
				}
			}

			if err := reportService.DeleteWeek(ctx, date); err != nil {
				return err
			}

			fmt.Println("Deleted weekly report")
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Any date in the week (YYYY-MM-DD), defaults to today")
	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}
