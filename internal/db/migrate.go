package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS reflection_entries (
		seq        INTEGER PRIMARY KEY AUTOINCREMENT,
		id         TEXT NOT NULL UNIQUE,
		text       TEXT NOT NULL,
		risk_score INTEGER NOT NULL CHECK(risk_score BETWEEN 0 AND 10),
		emotion    TEXT NOT NULL,
		confidence REAL NOT NULL,
		crisis     INTEGER NOT NULL DEFAULT 0,
		severity   TEXT NOT NULL CHECK(severity IN ('stable','moderate','high')),
		created_at TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
