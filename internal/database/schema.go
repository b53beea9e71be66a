package database

const schema = `
CREATE TABLE IF NOT EXISTS weekly_reports (
	id TEXT PRIMARY KEY,
	start_date TEXT NOT NULL UNIQUE,
	end_date TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'draft',
	mood INTEGER NOT NULL DEFAULT 3,
	weekly_remarks TEXT NOT NULL DEFAULT '',
	total_work_hours REAL NOT NULL DEFAULT 0,
	client_total_work_hours REAL NOT NULL DEFAULT 0,
	submitted_at TIMESTAMP,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS daily_records (
	id TEXT PRIMARY KEY,
	weekly_report_id TEXT NOT NULL REFERENCES weekly_reports(id) ON DELETE CASCADE,
	date TEXT NOT NULL,
	start_time TEXT NOT NULL DEFAULT '',
	end_time TEXT NOT NULL DEFAULT '',
	break_time INTEGER NOT NULL DEFAULT 0,
	has_client_work INTEGER NOT NULL DEFAULT 0,
	client_start_time TEXT NOT NULL DEFAULT '',
	client_end_time TEXT NOT NULL DEFAULT '',
	client_break_time INTEGER,
	is_holiday_work INTEGER NOT NULL DEFAULT 0,
	remarks TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_daily_records_report ON daily_records(weekly_report_id);
`
