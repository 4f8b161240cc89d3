package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS snapshots (
		id          TEXT PRIMARY KEY,
		source_path TEXT NOT NULL,
		entry_count INTEGER NOT NULL DEFAULT 0,
		imported_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS entries (
		snapshot_id TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
		position    INTEGER NOT NULL,
		entry_id    INTEGER NOT NULL CHECK(entry_id >= 0),
		description TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (snapshot_id, position)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_entries_entry_id ON entries(snapshot_id, entry_id)`,

	`CREATE TABLE IF NOT EXISTS sub_records (
		snapshot_id    TEXT NOT NULL,
		entry_position INTEGER NOT NULL,
		position       INTEGER NOT NULL,
		kind           TEXT NOT NULL
		               CHECK(kind IN ('start','duration','dep','child','res')),
		parent_id      INTEGER NOT NULL,
		start_date     TEXT,
		hour           INTEGER,
		length         INTEGER,
		ref_id         INTEGER,
		name           TEXT,
		PRIMARY KEY (snapshot_id, entry_position, position),
		FOREIGN KEY (snapshot_id, entry_position)
			REFERENCES entries(snapshot_id, position) ON DELETE CASCADE
	)`,
}
