// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validation

import "fmt"

// fieldMessages is what a client sees when a field is missing or unusable.
var fieldMessages = map[string]string{
	"letter":   "Letter cannot be blank",
	"value":    "Value cannot be blank",
	"strokes":  "Strokes cannot be blank",
	"vowel":    "Vowel status must be specified",
	"username": "Username is required",
	"password": "Password is required",
}

// tagMessages overrides fieldMessages for a specific field and tag.
var tagMessages = map[string]string{
	"letter.max": "Letter must be at most 10 characters",
}

// Message returns the client-facing message for a failed field and tag.
func Message(field, tag string) string {
	if msg, ok := tagMessages[field+"."+tag]; ok {
		return msg
	}
	if msg, ok := fieldMessages[field]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", field)
}
