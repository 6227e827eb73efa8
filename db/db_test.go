// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebind(t *testing.T) {
	q := "SELECT id FROM letter_model WHERE value <= ? AND letter = ?"

	assert.Equal(t, "SELECT id FROM letter_model WHERE value <= $1 AND letter = $2", Rebind(DriverPostgres, q))
	assert.Equal(t, q, Rebind(DriverSQLite, q))
}

func TestDriverForURL(t *testing.T) {
	assert.Equal(t, DriverPostgres, DriverForURL("postgres://u:p@localhost/db"))
	assert.Equal(t, DriverPostgres, DriverForURL("postgresql://localhost/db"))
	assert.Equal(t, DriverSQLite, DriverForURL("file:letters.db"))
	assert.Equal(t, DriverSQLite, DriverForURL(":memory:"))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "whatever")
	assert.Error(t, err)
}

func TestCreateSchema_Idempotent(t *testing.T) {
	ctx := context.Background()
	conn, err := Open(ctx, DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer conn.Close()

	for i := 0; i < 3; i++ {
		require.NoError(t, CreateSchema(ctx, conn, DriverSQLite), "iteration %d", i)
	}

	var count int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM letter_model").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestCreateSchema_UniqueIndexes(t *testing.T) {
	ctx := context.Background()
	conn, err := Open(ctx, DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, CreateSchema(ctx, conn, DriverSQLite))

	_, err = conn.Exec("INSERT INTO letter_model (letter, value, strokes, vowel) VALUES ('A', 1, 3, 1)")
	require.NoError(t, err)

	tests := []struct {
		name string
		sql  string
	}{
		{"same letter different case", "INSERT INTO letter_model (letter, value, strokes, vowel) VALUES ('a', 2, 3, 1)"},
		{"same value", "INSERT INTO letter_model (letter, value, strokes, vowel) VALUES ('B', 1, 3, 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := conn.Exec(tt.sql)
			require.Error(t, err)
			assert.True(t, IsUniqueViolation(err), "expected unique violation, got %v", err)
		})
	}
}

func TestIsUniqueViolation_Postgres(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23502"}))
	assert.False(t, IsUniqueViolation(errors.New("plain")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestCreateSchema_UnsupportedDriver(t *testing.T) {
	ctx := context.Background()
	conn, err := Open(ctx, DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer conn.Close()

	assert.Error(t, CreateSchema(ctx, conn, "oracle"))
}

func TestCreateSchema_UniqueIndexFoldsNonASCII(t *testing.T) {
	ctx := context.Background()
	conn, err := Open(ctx, DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, CreateSchema(ctx, conn, DriverSQLite))

	_, err = conn.Exec("INSERT INTO letter_model (letter, value, strokes, vowel) VALUES (?, 1, 2, 1)", "É")
	require.NoError(t, err)

	_, err = conn.Exec("INSERT INTO letter_model (letter, value, strokes, vowel) VALUES (?, 2, 3, 1)", "é")
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err), "expected unique violation, got %v", err)

	var letter string
	require.NoError(t, conn.QueryRow("SELECT letter FROM letter_model WHERE "+FoldFunc(DriverSQLite)+"(letter) = "+FoldFunc(DriverSQLite)+"(?)", "é").Scan(&letter))
	assert.Equal(t, "É", letter)
}

func TestFoldFunc(t *testing.T) {
	assert.Equal(t, "LOWER", FoldFunc(DriverPostgres))
	assert.Equal(t, SQLiteFoldFunc, FoldFunc(DriverSQLite))
	assert.Equal(t, "éω", FoldLetter("Éω"))
	assert.Equal(t, "ng", FoldLetter("NG"))
}
