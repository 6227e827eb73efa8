// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/enstack-letters/db"
	"github.com/danielhkuo/enstack-letters/metrics"
	"github.com/danielhkuo/enstack-letters/models"
)

const letterColumns = "id, letter, value, strokes, vowel"

// SQLStore implements LetterStore on top of database/sql.
type SQLStore struct {
	db     *sql.DB
	driver string
}

var _ LetterStore = (*SQLStore)(nil)

// NewSQLStore wraps an open connection. driver is db.DriverPostgres or
// db.DriverSQLite and selects the placeholder style.
func NewSQLStore(conn *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: conn, driver: driver}
}

func (s *SQLStore) FindByLetter(ctx context.Context, letter string) (l *models.Letter, err error) {
	defer recordQuery("find_by_letter", time.Now(), &err)

	return s.findOne(ctx, "SELECT "+letterColumns+" FROM letter_model WHERE letter = ? LIMIT 1", letter)
}

func (s *SQLStore) FindByLetterFold(ctx context.Context, letter string) (l *models.Letter, err error) {
	defer recordQuery("find_by_letter_fold", time.Now(), &err)

	fold := db.FoldFunc(s.driver)
	return s.findOne(ctx, "SELECT "+letterColumns+" FROM letter_model WHERE "+fold+"(letter) = "+fold+"(?) LIMIT 1", letter)
}

func (s *SQLStore) FindByValue(ctx context.Context, value int) (l *models.Letter, err error) {
	defer recordQuery("find_by_value", time.Now(), &err)

	return s.findOne(ctx, "SELECT "+letterColumns+" FROM letter_model WHERE value = ? LIMIT 1", value)
}

func (s *SQLStore) ListOrderedByValue(ctx context.Context) (letters []models.Letter, err error) {
	defer recordQuery("list_by_value", time.Now(), &err)

	return s.findMany(ctx, "SELECT "+letterColumns+" FROM letter_model ORDER BY value")
}

func (s *SQLStore) ListOrderedByID(ctx context.Context, maxValue int) (letters []models.Letter, err error) {
	defer recordQuery("list_by_id", time.Now(), &err)

	return s.findMany(ctx, "SELECT "+letterColumns+" FROM letter_model WHERE value <= ? ORDER BY id", maxValue)
}

func (s *SQLStore) ListLetters(ctx context.Context) (names []string, err error) {
	defer recordQuery("list_letters", time.Now(), &err)

	rows, err := s.db.QueryContext(ctx, "SELECT letter FROM letter_model ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query letters: %w", err)
	}
	defer rows.Close()

	names = []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan letter: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read letters: %w", err)
	}

	return names, nil
}

func (s *SQLStore) Insert(ctx context.Context, l *models.Letter) (err error) {
	defer recordQuery("insert", time.Now(), &err)

	query := db.Rebind(s.driver, `
		INSERT INTO letter_model (letter, value, strokes, vowel)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`)

	err = s.db.QueryRowContext(ctx, query, l.Letter, l.Value, l.Strokes, l.Vowel).Scan(&l.ID)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return fmt.Errorf("insert %q: %w", l.Letter, ErrDuplicate)
		}
		return fmt.Errorf("failed to insert letter: %w", err)
	}

	return nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) findOne(ctx context.Context, query string, args ...any) (*models.Letter, error) {
	var l models.Letter
	err := s.db.QueryRowContext(ctx, db.Rebind(s.driver, query), args...).
		Scan(&l.ID, &l.Letter, &l.Value, &l.Strokes, &l.Vowel)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query letter: %w", err)
	}
	return &l, nil
}

func (s *SQLStore) findMany(ctx context.Context, query string, args ...any) ([]models.Letter, error) {
	rows, err := s.db.QueryContext(ctx, db.Rebind(s.driver, query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query letters: %w", err)
	}
	defer rows.Close()

	letters := []models.Letter{}
	for rows.Next() {
		var l models.Letter
		if err := rows.Scan(&l.ID, &l.Letter, &l.Value, &l.Strokes, &l.Vowel); err != nil {
			return nil, fmt.Errorf("failed to scan letter: %w", err)
		}
		letters = append(letters, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read letters: %w", err)
	}

	return letters, nil
}

// recordQuery treats ErrNotFound and ErrDuplicate as answers, not failures.
func recordQuery(operation string, start time.Time, errp *error) {
	err := *errp
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicate) {
		err = nil
	}
	metrics.RecordDBQuery(operation, start, err)
}
