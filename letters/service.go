// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package letters

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/danielhkuo/enstack-letters/metrics"
	"github.com/danielhkuo/enstack-letters/models"
	"github.com/danielhkuo/enstack-letters/store"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is matched by every add-letter rejection.
	ErrDuplicate = errors.New("duplicate letter")

	ErrLetterTaken        = fmt.Errorf("%w: letter already exists", ErrDuplicate)
	ErrValueTaken         = fmt.Errorf("%w: value already exists", ErrDuplicate)
	ErrValueEqualsStrokes = fmt.Errorf("%w: value equals strokes", ErrDuplicate)
)

// NewLetter is a structurally valid add-letter request.
type NewLetter struct {
	Letter  string
	Value   int
	Strokes int
	Vowel   bool
}

// Service applies the letter rules on top of a LetterStore.
type Service struct {
	store store.LetterStore
	intn  IntN
}

func NewService(st store.LetterStore) *Service {
	return &Service{store: st, intn: rand.IntN}
}

// AddLetter persists in unless a rule rejects it. Rules are checked in this
// order: letter taken (ignoring case), value taken, value equal to strokes.
func (s *Service) AddLetter(ctx context.Context, in NewLetter) (*models.Letter, error) {
	l, err := s.addLetter(ctx, in)
	if rule := RejectedRule(err); rule != "" {
		metrics.LetterRejections.WithLabelValues(rule).Inc()
	}
	if err == nil {
		metrics.LettersCreated.Inc()
	}
	return l, err
}

func (s *Service) addLetter(ctx context.Context, in NewLetter) (*models.Letter, error) {
	in.Letter = strings.TrimSpace(in.Letter)

	_, err := s.store.FindByLetterFold(ctx, in.Letter)
	if err == nil {
		return nil, ErrLetterTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("check letter: %w", err)
	}

	_, err = s.store.FindByValue(ctx, in.Value)
	if err == nil {
		return nil, ErrValueTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("check value: %w", err)
	}

	if in.Value == in.Strokes {
		return nil, ErrValueEqualsStrokes
	}

	l := &models.Letter{
		Letter:  in.Letter,
		Value:   in.Value,
		Strokes: in.Strokes,
		Vowel:   in.Vowel,
	}
	if err := s.store.Insert(ctx, l); err != nil {
		// Lost a race with a concurrent insert of the same letter or value.
		if errors.Is(err, store.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %w", ErrDuplicate, err)
		}
		return nil, fmt.Errorf("insert letter: %w", err)
	}

	return l, nil
}

// List returns every letter ordered by value.
func (s *Service) List(ctx context.Context) ([]string, error) {
	all, err := s.store.ListOrderedByValue(ctx)
	if err != nil {
		return nil, fmt.Errorf("list letters: %w", err)
	}
	if len(all) == 0 {
		return nil, ErrNotFound
	}
	return letterNames(all), nil
}

// Get looks up a letter by exact, case-sensitive match.
func (s *Service) Get(ctx context.Context, letter string) (*models.Letter, error) {
	l, err := s.store.FindByLetter(ctx, letter)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get letter: %w", err)
	}
	return l, nil
}

// Filter returns letters whose value is at most maxValue, in insertion order.
func (s *Service) Filter(ctx context.Context, maxValue int) ([]string, error) {
	matched, err := s.store.ListOrderedByID(ctx, maxValue)
	if err != nil {
		return nil, fmt.Errorf("filter letters: %w", err)
	}
	if len(matched) == 0 {
		return nil, ErrNotFound
	}
	return letterNames(matched), nil
}

// Shuffle returns every stored letter concatenated in random order.
func (s *Service) Shuffle(ctx context.Context) (string, error) {
	names, err := s.store.ListLetters(ctx)
	if err != nil {
		return "", fmt.Errorf("shuffle letters: %w", err)
	}
	if len(names) == 0 {
		return "", ErrNotFound
	}

	Shuffle(names, s.intn)
	return strings.Join(names, ""), nil
}

// RejectedRule names the rule behind an add-letter rejection for logs and
// metrics, or "" when err is not a rejection.
func RejectedRule(err error) string {
	switch {
	case errors.Is(err, ErrLetterTaken):
		return "letter"
	case errors.Is(err, ErrValueTaken):
		return "value"
	case errors.Is(err, ErrValueEqualsStrokes):
		return "strokes"
	case errors.Is(err, ErrDuplicate):
		return "constraint"
	default:
		return ""
	}
}

func letterNames(all []models.Letter) []string {
	names := make([]string, len(all))
	for i, l := range all {
		names[i] = l.Letter
	}
	return names
}
