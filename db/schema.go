// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates the letter table and its unique indexes.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB, driver string) error {
	var stmts []string
	switch driver {
	case DriverPostgres:
		stmts = postgresSchema
	case DriverSQLite:
		stmts = sqliteSchema
	default:
		return fmt.Errorf("unsupported database type %q", driver)
	}

	// One statement per Exec; not every driver accepts multi-statement strings.
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// The table name matches the one used by earlier deployments of the service.
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS letter_model (
    id SERIAL PRIMARY KEY,
    letter VARCHAR(10) NOT NULL,
    value INTEGER NOT NULL,
    strokes INTEGER NOT NULL,
    vowel BOOLEAN NOT NULL DEFAULT FALSE
)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_letter_model_letter_lower ON letter_model (LOWER(letter))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_letter_model_value ON letter_model (value)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS letter_model (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    letter TEXT NOT NULL CHECK (length(letter) <= 10),
    value INTEGER NOT NULL,
    strokes INTEGER NOT NULL,
    vowel BOOLEAN NOT NULL DEFAULT 0
)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_letter_model_letter_fold ON letter_model (` + SQLiteFoldFunc + `(letter))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_letter_model_value ON letter_model (value)`,
}
