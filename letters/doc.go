// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package letters holds the letter rules and read operations that the HTTP
handlers call.

# Adding a letter

Service.AddLetter takes a request that has already passed structural
validation and checks, in order:

  - ErrLetterTaken: a stored letter matches ignoring case
  - ErrValueTaken: a stored letter has the same value
  - ErrValueEqualsStrokes: value equals strokes

All three match ErrDuplicate with errors.Is, as does a unique constraint
violation raised by the store when two adds race past the checks. Handlers
answer every one of them with the same {"status": 1} body; RejectedRule
recovers which rule fired for logs and metrics.

	l, err := svc.AddLetter(ctx, letters.NewLetter{Letter: "A", Value: 1, Strokes: 3, Vowel: true})
	switch {
	case errors.Is(err, letters.ErrDuplicate):
		// 400 {"status": 1}
	case err != nil:
		// 500
	}

# Reading

List, Get, Filter and Shuffle return ErrNotFound instead of an empty result.
Get is case-sensitive. Filter keeps insertion order while List sorts by value.

# Shuffle

Shuffle is a generic backward Fisher-Yates pass over a slice. It runs in
linear time, swaps in place and takes its random source as a parameter so
tests can seed it. The service uses math/rand/v2.
*/
package letters
