// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens database connections and creates the schema.

# Drivers

Two database types are supported, selected by DATABASE_TYPE (or guessed from
the URL with DriverForURL):

  - postgres: github.com/lib/pq
  - sqlite: modernc.org/sqlite (pure Go, also used by the tests)

Open pings the database before returning:

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

# Schema Creation

CreateSchema initializes the letter_model table:

	if err := db.CreateSchema(ctx, conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and indexes.

# Uniqueness

Two unique indexes back the add-letter rules:

  - LOWER(letter): letters are unique regardless of case
  - value

The handlers check both before inserting. The indexes catch the window
between check and insert; IsUniqueViolation recognises the resulting driver
error so the store can report it as a duplicate.

# Placeholders

Queries are written with "?" placeholders. Rebind converts them to "$1",
"$2", ... for Postgres.
*/
package db
