package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
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
	`CREATE TABLE IF NOT EXISTS subject_progress (
		username        TEXT NOT NULL,
		subject         TEXT NOT NULL COLLATE NOCASE,
		questions_asked INTEGER NOT NULL DEFAULT 0 CHECK(questions_asked >= 0),
		mastery_level   INTEGER NOT NULL DEFAULT 0 CHECK(mastery_level BETWEEN 0 AND 100),
		last_session    TEXT,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL,
		PRIMARY KEY (username, subject)
	)`,

	`CREATE TABLE IF NOT EXISTS progress_sessions (
		id            TEXT PRIMARY KEY,
		username      TEXT NOT NULL,
		subject       TEXT NOT NULL COLLATE NOCASE,
		started_at    TEXT NOT NULL,
		last_activity TEXT NOT NULL,
		duration_sec  INTEGER NOT NULL DEFAULT 0 CHECK(duration_sec >= 0),
		FOREIGN KEY (username, subject) REFERENCES subject_progress(username, subject) ON DELETE CASCADE
	)`,

	`CREATE INDEX IF NOT EXISTS idx_progress_sessions_owner ON progress_sessions(username, subject, started_at)`,

	`CREATE TABLE IF NOT EXISTS progress_session_questions (
		session_id TEXT NOT NULL REFERENCES progress_sessions(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL CHECK(position >= 0),
		question   TEXT NOT NULL,
		PRIMARY KEY (session_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS chat_messages (
		id         TEXT PRIMARY KEY,
		username   TEXT NOT NULL,
		subject    TEXT NOT NULL,
		question   TEXT NOT NULL,
		answer     TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_chat_messages_owner ON chat_messages(username, subject, created_at)`,

	`ALTER TABLE chat_messages ADD COLUMN kind TEXT NOT NULL DEFAULT ''`,
}
