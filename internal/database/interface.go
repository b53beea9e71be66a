package database

import (
	"context"

	"github.com/tomoki-abe/shuho/internal/models"
)

type DB interface {
	Close() error

	CreateReport(ctx context.Context, report *models.WeeklyReport) error
	GetReportByStartDate(ctx context.Context, startDate string) (*models.WeeklyReport, error)
	UpdateReport(ctx context.Context, report *models.WeeklyReport) error
	UpdateReportStatus(ctx context.Context, report *models.WeeklyReport) error
	ListReports(ctx context.Context, limit int32) ([]*models.WeeklyReport, error)
	DeleteReport(ctx context.Context, id string) error

	ReplaceDailyRecords(ctx context.Context, reportID string, records []*models.DailyRecord) error
	GetDailyRecords(ctx context.Context, reportID string) ([]*models.DailyRecord, error)
}
