package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
const ExpectedSchemaVersion = 1

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS charts (
					name TEXT PRIMARY KEY,
					location_name TEXT NOT NULL,
					latitude REAL NOT NULL,
					longitude REAL NOT NULL,
					moment DATETIME NOT NULL,
					utc_offset REAL NOT NULL,
					julian_day REAL NOT NULL,
					house_system TEXT NOT NULL,
					ascendant REAL NOT NULL,
					midheaven REAL NOT NULL,
					armc REAL NOT NULL,
					vertex REAL NOT NULL,
					cusps TEXT NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,

				`CREATE TABLE IF NOT EXISTS chart_positions (
					chart_name TEXT NOT NULL,
					position INTEGER NOT NULL,
					body INTEGER NOT NULL,
					longitude REAL NOT NULL,
					latitude REAL NOT NULL,
					distance REAL NOT NULL,
					longitude_speed REAL NOT NULL,
					latitude_speed REAL NOT NULL,
					distance_speed REAL NOT NULL,
					julian_day REAL NOT NULL,
					PRIMARY KEY (chart_name, position),
					FOREIGN KEY (chart_name) REFERENCES charts(name) ON DELETE CASCADE
				)`,
				`CREATE INDEX idx_chart_positions_chart ON chart_positions(chart_name)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate brings the database schema up to the expected version.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
