package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
// set can be re-applied on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS courses (
		id          TEXT PRIMARY KEY,
		code        TEXT NOT NULL DEFAULT '',
		name        TEXT NOT NULL,
		term        TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'active'
		            CHECK(status IN ('active','archived')),
		archived_at TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS course_paces (
		id               TEXT PRIMARY KEY,
		course_id        TEXT NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
		start_date       TEXT NOT NULL,
		calendar_days    INTEGER NOT NULL DEFAULT 0,
		exclude_weekends INTEGER NOT NULL DEFAULT 0,
		days_to_skip     TEXT NOT NULL DEFAULT '',
		workflow_state   TEXT NOT NULL DEFAULT 'unpublished'
		                 CHECK(workflow_state IN ('unpublished','active','archived')),
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS pace_modules (
		id       TEXT PRIMARY KEY,
		pace_id  TEXT NOT NULL REFERENCES course_paces(id) ON DELETE CASCADE,
		name     TEXT NOT NULL,
		position INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS pace_items (
		id         TEXT PRIMARY KEY,
		module_id  TEXT NOT NULL REFERENCES pace_modules(id) ON DELETE CASCADE,
		title      TEXT NOT NULL,
		item_type  TEXT NOT NULL DEFAULT 'other'
		           CHECK(item_type IN ('assignment','discussion_topic','quiz','page','other')),
		duration   INTEGER NOT NULL DEFAULT 0,
		position   INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS blackout_dates (
		id          TEXT PRIMARY KEY,
		course_id   TEXT NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
		event_title TEXT NOT NULL,
		start_date  TEXT NOT NULL,
		end_date    TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_course_paces_course ON course_paces(course_id)`,
	`CREATE INDEX IF NOT EXISTS idx_pace_modules_pace ON pace_modules(pace_id)`,
	`CREATE INDEX IF NOT EXISTS idx_pace_items_module ON pace_items(module_id)`,
	`CREATE INDEX IF NOT EXISTS idx_blackout_dates_course ON blackout_dates(course_id)`,
}
