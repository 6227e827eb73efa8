// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON. Every field is a pointer so that a missing
field fails the "required" validation instead of silently becoming zero:

  - AddLetterRequest: letter, value, strokes, vowel
  - LoginRequest: username, password

# Response Types

Types for JSON responses:

  - LetterResponse: id, letter, value, strokes, vowel
  - LettersResponse: letters
  - ShuffleResponse: shuffled_letters
  - AddLetterResponse: status (0 created, 1 rejected)
  - MessageResponse: message
  - ErrorResponse: error, message, fields

# Domain Types

  - Letter: a stored letter record

Letter has no JSON tags; handlers always go through NewLetterResponse:

	middleware.JSONResponse(w, http.StatusOK, models.NewLetterResponse(*letter))

# Constants

Add-letter status markers:

	StatusCreated  = 0
	StatusRejected = 1
*/
package models
