package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tomoki-abe/shuho/internal/config"
	"github.com/tomoki-abe/shuho/internal/database"
	"github.com/tomoki-abe/shuho/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("", "")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	reportService := service.NewReportService(db, cfg)

	rootCmd := newRootCmd(reportService)
	return rootCmd.ExecuteContext(context.Background())
}
