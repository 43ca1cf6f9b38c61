package repository

import (
	"database/sql"
	"time"
)

// parseNullableTime parses a sql.NullString using the given layout.
// Returns the zero time if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) time.Time {
	if !s.Valid || s.String == "" {
		return time.Time{}
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nullableTimeToString converts a time to a value suitable for SQLite storage.
// Returns nil (SQL NULL) for the zero time.
func nullableTimeToString(t time.Time, layout string) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(layout)
}

// parseTime parses a required timestamp column.
func parseTime(s, layout string) time.Time {
	t, _ := time.Parse(layout, s)
	return t
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
