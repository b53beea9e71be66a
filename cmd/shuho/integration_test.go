package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tomoki-abe/shuho/internal/config"
	"github.com/tomoki-abe/shuho/internal/database"
	"github.com/tomoki-abe/shuho/internal/service"
)

func TestIntegrationReportCommands(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "shuho-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	cfg := &config.Config{
		DatabaseURL:    filepath.Join(tempDir, "test.db"),
		DatabaseDriver: "sqlite3",
		DevMode:        true,
	}

	db, err := database.NewDB(cfg)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	reportService := service.NewReportService(db, cfg)
	rootCmd := newRootCmd(reportService)
	ctx := context.Background()

	// 2026-08-17 is a Monday; every command pins this week.
	week := "2026-08-17"

	t.Run("New Week", func(t *testing.T) {
		output := captureOutput(func() {
			rootCmd.SetArgs([]string{"new", "-d", week})
			if err := rootCmd.ExecuteContext(ctx); err != nil {
				t.Errorf("new command failed: %v", err)
			}
		})

		if !strings.Contains(output, "Opened weekly report") {
			t.Errorf("Expected 'Opened weekly report' in output, got: %s", output)
		}
		if !strings.Contains(output, "2026/08/17 - 2026/08/23") {
			t.Errorf("Expected week range in output, got: %s", output)
		}
	})

	t.Run("Validate Empty Week Fails", func(t *testing.T) {
		output := captureOutput(func() {
			rootCmd.SetArgs([]string{"validate", "-d", week})
			if err := rootCmd.ExecuteContext(ctx); err != nil {
				t.Errorf("validate command failed: %v", err)
			}
		})

		if !strings.Contains(output, "dailyRecords") {
			t.Errorf("Expected dailyRecords error in output, got: %s", output)
		}
	})

	t.Run("Edit Day", func(t *testing.T) {
		output := captureOutput(func() {
			rootCmd.SetArgs([]string{"day", "tue", "-d", week, "-s", "09:00", "-e", "18:00", "-b", "60"})
			if err := rootCmd.ExecuteContext(ctx); err != nil {
				t.Errorf("day command failed: %v", err)
			}
		})

		if !strings.Contains(output, "Updated tue (2026-08-18)") {
			t.Errorf("Expected 'Updated tue (2026-08-18)' in output, got: %s", output)
		}
	})

	t.Run("Hours", func(t *testing.T) {
		output := captureOutput(func() {
			rootCmd.SetArgs([]string{"hours", "-d", week})
			if err := rootCmd.ExecuteContext(ctx); err != nil {
				t.Errorf("hours command failed: %v", err)
			}
		})

		if !strings.Contains(output, "週合計:     8 h") {
			t.Errorf("Expected weekly total of 8 hours in output, got: %s", output)
		}
	})

	t.Run("Show", func(t *testing.T) {
		output := captureOutput(func() {
			rootCmd.SetArgs([]string{"show", "-d", week})
			if err := rootCmd.ExecuteContext(ctx); err != nil {
				t.Errorf("show command failed: %v", err)
			}
		})

		if !strings.Contains(output, "09:00 - 18:00") {
			t.Errorf("Expected day times in output, got: %s", output)
		}
	})

	t.Run("Submit", func(t *testing.T) {
		output := captureOutput(func() {
			rootCmd.SetArgs([]string{"submit", "-d", week})
			if err := rootCmd.ExecuteContext(ctx); err != nil {
				t.Errorf("submit command failed: %v", err)
			}
		})

		if !strings.Contains(output, "週報を提出しました") {
			t.Errorf("Expected submission message in output, got: %s", output)
		}
	})

	t.Run("Submit Twice Fails", func(t *testing.T) {
		rootCmd.SetArgs([]string{"submit", "-d", week})
		if err := rootCmd.ExecuteContext(ctx); err == nil {
			t.Error("Expected error when submitting an already submitted report")
		}
	})

	t.Run("Edit After Submit Fails", func(t *testing.T) {
		rootCmd.SetArgs([]string{"day", "wed", "-d", week, "-s", "09:00", "-e", "18:00"})
		if err := rootCmd.ExecuteContext(ctx); err == nil {
			t.Error("Expected error when editing a submitted report")
		}
	})

	t.Run("Same Time Warning Blocks Submit", func(t *testing.T) {
		nextWeek := "2026-08-24"

		rootCmd.SetArgs([]string{"day", "mon", "-d", nextWeek, "-s", "09:00", "-e", "18:00", "-b", "60"})
		if err := rootCmd.ExecuteContext(ctx); err != nil {
			t.Fatalf("day command failed: %v", err)
		}

		// Client attendance identical to the company attendance.
		rootCmd.SetArgs([]string{"day", "mon", "-d", nextWeek,
			"--client-start", "09:00", "--client-end", "18:00", "--client-break", "60"})
		if err := rootCmd.ExecuteContext(ctx); err != nil {
			t.Fatalf("day command failed: %v", err)
		}

		rootCmd.SetArgs([]string{"submit", "-d", nextWeek})
		if err := rootCmd.ExecuteContext(ctx); err == nil {
			t.Error("Expected same-time warning to block submission")
		}

		// Draft saves stay allowed despite the warning.
		output := captureOutput(func() {
			rootCmd.SetArgs([]string{"submit", "-d", nextWeek, "--draft"})
			if err := rootCmd.ExecuteContext(ctx); err != nil {
				t.Errorf("draft save failed: %v", err)
			}
		})
		if !strings.Contains(output, "下書きとして保存しました") {
			t.Errorf("Expected draft save message in output, got: %s", output)
		}
	})

	t.Run("Export CSV", func(t *testing.T) {
		csvFile := filepath.Join(tempDir, "export.csv")

		output := captureOutput(func() {
			rootCmd.SetArgs([]string{"export", "-d", week, "-o", csvFile, "-f", "csv"})
			if err := rootCmd.ExecuteContext(ctx); err != nil {
				t.Errorf("export command failed: %v", err)
			}
		})

		if !strings.Contains(output, "Exported 7 days") {
			t.Errorf("Expected 'Exported 7 days' in output, got: %s", output)
		}

		content, err := os.ReadFile(csvFile)
		if err != nil {
			t.Fatalf("CSV file was not created: %v", err)
		}
		if !strings.Contains(string(content), "2026-08-18,09:00,18:00,60,8") {
			t.Errorf("Expected Tuesday row in CSV, got: %s", content)
		}
	})

	t.Run("Export JSON", func(t *testing.T) {
		jsonFile := filepath.Join(tempDir, "export.json")

		rootCmd.SetArgs([]string{"export", "-d", week, "-o", jsonFile, "-f", "json"})
		if err := rootCmd.ExecuteContext(ctx); err != nil {
			t.Errorf("export command failed: %v", err)
		}

		content, err := os.ReadFile(jsonFile)
		if err != nil {
			t.Fatalf("JSON file was not created: %v", err)
		}
		if !strings.Contains(string(content), `"total_work_hours": 8`) {
			t.Errorf("Expected total_work_hours in JSON, got: %s", content)
		}
	})

	t.Run("List", func(t *testing.T) {
		output := captureOutput(func() {
			rootCmd.SetArgs([]string{"list"})
			if err := rootCmd.ExecuteContext(ctx); err != nil {
				t.Errorf("list command failed: %v", err)
			}
		})

		if !strings.Contains(output, "2026/08/17 - 2026/08/23") {
			t.Errorf("Expected submitted week in list output, got: %s", output)
		}
		if !strings.Contains(output, "submitted") {
			t.Errorf("Expected submitted status in list output, got: %s", output)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		output := captureOutput(func() {
			rootCmd.SetArgs([]string{"delete", "-d", "2026-08-24", "--force"})
			if err := rootCmd.ExecuteContext(ctx); err != nil {
				t.Errorf("delete command failed: %v", err)
			}
		})

		if !strings.Contains(output, "Deleted weekly report") {
			t.Errorf("Expected 'Deleted weekly report' in output, got: %s", output)
		}
	})
}

// captureOutput redirects stdout while f runs.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf strings.Builder
	io.Copy(&buf, r)
	return buf.String()
}
