package db

import (
	"database/sql"
	"fmt"
)

// migrations are run in order on every open. Each statement must be
// idempotent (CREATE ... IF NOT EXISTS).
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS trips (
		id           TEXT PRIMARY KEY,
		position     INTEGER NOT NULL,
		travel_style TEXT NOT NULL,
		destination  TEXT NOT NULL,
		plan         TEXT NOT NULL,
		answers      TEXT NOT NULL,
		created_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_trips_position ON trips(position)`,
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
