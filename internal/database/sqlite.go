package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/tomoki-abe/shuho/internal/config"
	"github.com/tomoki-abe/shuho/internal/models"
)

type SQLiteDB struct {
	conn *sqlx.DB
}

func NewDB(cfg *config.Config) (*SQLiteDB, error) {
	conn, err := sqlx.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := conn.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &SQLiteDB{conn: conn}, nil
}

func (s *SQLiteDB) Close() error {
	return s.conn.Close()
}

// reportRow mirrors weekly_reports with dates as stored TEXT.
type reportRow struct {
	ID                   string             `db:"id"`
	StartDate            string             `db:"start_date"`
	EndDate              string             `db:"end_date"`
	Status               string             `db:"status"`
	Mood                 int                `db:"mood"`
	WeeklyRemarks        string             `db:"weekly_remarks"`
	TotalWorkHours       float64            `db:"total_work_hours"`
	ClientTotalWorkHours float64            `db:"client_total_work_hours"`
	SubmittedAt          sql.NullTime       `db:"submitted_at"`
	CreatedAt            time.Time          `db:"created_at"`
	UpdatedAt            time.Time          `db:"updated_at"`
}

type dailyRecordRow struct {
	ID              string        `db:"id"`
	WeeklyReportID  string        `db:"weekly_report_id"`
	Date            string        `db:"date"`
	StartTime       string        `db:"start_time"`
	EndTime         string        `db:"end_time"`
	BreakTime       int           `db:"break_time"`
	HasClientWork   bool          `db:"has_client_work"`
	ClientStartTime string        `db:"client_start_time"`
	ClientEndTime   string        `db:"client_end_time"`
	ClientBreakTime sql.NullInt64 `db:"client_break_time"`
	IsHolidayWork   bool          `db:"is_holiday_work"`
	Remarks         string        `db:"remarks"`
	CreatedAt       time.Time     `db:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at"`
}

func (s *SQLiteDB) CreateReport(ctx context.Context, report *models.WeeklyReport) error {
	if report.ID == "" {
		report.ID = models.NewUUID()
	}
	now := time.Now()
	report.CreatedAt = now
	report.UpdatedAt = now

	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO weekly_reports (
			id, start_date, end_date, status, mood, weekly_remarks,
			total_work_hours, client_total_work_hours, submitted_at, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		report.ID,
		report.StartDate.Format("2006-01-02"),
		report.EndDate.Format("2006-01-02"),
		string(report.Status),
		int(report.Mood),
		report.WeeklyRemarks,
		report.TotalWorkHours,
		report.ClientTotalWorkHours,
		report.SubmittedAt,
		report.CreatedAt,
		report.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create weekly report: %w", err)
	}

	return s.ReplaceDailyRecords(ctx, report.ID, report.DailyRecords)
}

func (s *SQLiteDB) GetReportByStartDate(ctx context.Context, startDate string) (*models.WeeklyReport, error) {
	var row reportRow
	err := s.conn.GetContext(ctx, &row, `SELECT * FROM weekly_reports WHERE start_date = ?`, startDate)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get weekly report by start date: %w", err)
	}
	return s.hydrateReport(ctx, &row)
}

func (s *SQLiteDB) UpdateReport(ctx context.Context, report *models.WeeklyReport) error {
	report.UpdatedAt = time.Now()

	_, err := s.conn.ExecContext(ctx, `
		UPDATE weekly_reports SET
			status = ?, mood = ?, weekly_remarks = ?,
			total_work_hours = ?, client_total_work_hours = ?,
			submitted_at = ?, updated_at = ?
		WHERE id = ?`,
		string(report.Status),
		int(report.Mood),
		report.WeeklyRemarks,
		report.TotalWorkHours,
		report.ClientTotalWorkHours,
		report.SubmittedAt,
		report.UpdatedAt,
		report.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update weekly report: %w", err)
	}

	return s.ReplaceDailyRecords(ctx, report.ID, report.DailyRecords)
}

func (s *SQLiteDB) UpdateReportStatus(ctx context.Context, report *models.WeeklyReport) error {
	report.UpdatedAt = time.Now()

	_, err := s.conn.ExecContext(ctx, `
		UPDATE weekly_reports SET status = ?, submitted_at = ?, updated_at = ? WHERE id = ?`,
		string(report.Status),
		report.SubmittedAt,
		report.UpdatedAt,
		report.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update weekly report status: %w", err)
	}
	return nil
}

func (s *SQLiteDB) ListReports(ctx context.Context, limit int32) ([]*models.WeeklyReport, error) {
	var rows []reportRow
	err := s.conn.SelectContext(ctx, &rows, `
		SELECT * FROM weekly_reports ORDER BY start_date DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly reports: %w", err)
	}

	reports := make([]*models.WeeklyReport, len(rows))
	for i := range rows {
		report, err := s.convertReportRow(&rows[i])
		if err != nil {
			return nil, err
		}
		reports[i] = report
	}
	return reports, nil
}

func (s *SQLiteDB) DeleteReport(ctx context.Context, id string) error {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM daily_records WHERE weekly_report_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete daily records: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM weekly_reports WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete weekly report: %w", err)
	}
	return tx.Commit()
}

func (s *SQLiteDB) ReplaceDailyRecords(ctx context.Context, reportID string, records []*models.DailyRecord) error {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM daily_records WHERE weekly_report_id = ?`, reportID); err != nil {
		return fmt.Errorf("failed to delete existing daily records: %w", err)
	}

	now := time.Now()
	for _, record := range records {
		if record.ID == "" {
			record.ID = models.NewUUID()
		}
		record.WeeklyReportID = reportID

		var clientBreak sql.NullInt64
		if record.ClientBreakTime != nil {
			clientBreak = sql.NullInt64{Int64: int64(*record.ClientBreakTime), Valid: true}
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO daily_records (
				id, weekly_report_id, date, start_time, end_time, break_time,
				has_client_work, client_start_time, client_end_time, client_break_time,
				is_holiday_work, remarks, created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			record.ID,
			reportID,
			record.Date.Format("2006-01-02"),
			record.StartTime,
			record.EndTime,
			record.BreakTime,
			record.HasClientWork,
			record.ClientStartTime,
			record.ClientEndTime,
			clientBreak,
			record.IsHolidayWork,
			record.Remarks,
			now,
			now,
		)
		if err != nil {
			return fmt.Errorf("failed to insert daily record: %w", err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteDB) GetDailyRecords(ctx context.Context, reportID string) ([]*models.DailyRecord, error) {
	var rows []dailyRecordRow
	err := s.conn.SelectContext(ctx, &rows, `
		SELECT * FROM daily_records WHERE weekly_report_id = ? ORDER BY date ASC`, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily records: %w", err)
	}

	records := make([]*models.DailyRecord, len(rows))
	for i := range rows {
		record, err := s.convertDailyRecordRow(&rows[i])
		if err != nil {
			return nil, err
		}
		records[i] = record
	}
	return records, nil
}

func (s *SQLiteDB) hydrateReport(ctx context.Context, row *reportRow) (*models.WeeklyReport, error) {
	report, err := s.convertReportRow(row)
	if err != nil {
		return nil, err
	}
	records, err := s.GetDailyRecords(ctx, report.ID)
	if err != nil {
		return nil, err
	}
	report.DailyRecords = records
	return report, nil
}

func (s *SQLiteDB) convertReportRow(row *reportRow) (*models.WeeklyReport, error) {
	startDate, err := time.Parse("2006-01-02", row.StartDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", row.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report end date: %w", err)
	}

	report := &models.WeeklyReport{
		ID:                   row.ID,
		StartDate:            startDate,
		EndDate:              endDate,
		Status:               models.WeeklyReportStatus(row.Status),
		Mood:                 models.MoodStatus(row.Mood),
		WeeklyRemarks:        row.WeeklyRemarks,
		TotalWorkHours:       row.TotalWorkHours,
		ClientTotalWorkHours: row.ClientTotalWorkHours,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}
	if row.SubmittedAt.Valid {
		submitted := row.SubmittedAt.Time
		report.SubmittedAt = &submitted
	}
	return report, nil
}

func (s *SQLiteDB) convertDailyRecordRow(row *dailyRecordRow) (*models.DailyRecord, error) {
	date, err := time.Parse("2006-01-02", row.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse daily record date: %w", err)
	}

	record := &models.DailyRecord{
		ID:              row.ID,
		WeeklyReportID:  row.WeeklyReportID,
		Date:            date,
		StartTime:       row.StartTime,
		EndTime:         row.EndTime,
		BreakTime:       row.BreakTime,
		HasClientWork:   row.HasClientWork,
		ClientStartTime: row.ClientStartTime,
		ClientEndTime:   row.ClientEndTime,
		IsHolidayWork:   row.IsHolidayWork,
		Remarks:         row.Remarks,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
	if row.ClientBreakTime.Valid {
		clientBreak := int(row.ClientBreakTime.Int64)
		record.ClientBreakTime = &clientBreak
	}
	return record, nil
}
