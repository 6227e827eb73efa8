// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/danielhkuo/enstack-letters/models"
)

var (
	ErrNotFound  = errors.New("letter not found")
	ErrDuplicate = errors.New("letter violates a unique constraint")
)

// LetterStore is the persistence boundary for letter records.
type LetterStore interface {
	// FindByLetter matches the letter exactly, case included.
	FindByLetter(ctx context.Context, letter string) (*models.Letter, error)

	// FindByLetterFold matches the letter ignoring case.
	FindByLetterFold(ctx context.Context, letter string) (*models.Letter, error)

	FindByValue(ctx context.Context, value int) (*models.Letter, error)

	// ListOrderedByValue returns every letter by ascending value.
	ListOrderedByValue(ctx context.Context) ([]models.Letter, error)

	// ListOrderedByID returns letters with value <= maxValue in insertion order.
	ListOrderedByID(ctx context.Context, maxValue int) ([]models.Letter, error)

	// ListLetters returns only the letter column, in insertion order.
	ListLetters(ctx context.Context) ([]string, error)

	// Insert persists l and sets l.ID.
	Insert(ctx context.Context, l *models.Letter) error

	// Ping checks the store is reachable.
	Ping(ctx context.Context) error
}
