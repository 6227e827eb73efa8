// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MinUsernameLength is counted in characters.
const MinUsernameLength = 4

// usernamePattern must appear in the username as a subsequence.
const usernamePattern = "abc"

var (
	ErrUsernameTooShort = errors.New("Username must be at least 4 characters")
	ErrInvalidUsername  = errors.New("Invalid username")
	ErrPasswordMismatch = errors.New("Password is not equal to the reverse of username")
)

// CheckLogin applies the login rules in order and returns the first one that
// fails. Both inputs are trimmed first. Nothing is persisted or looked up.
func CheckLogin(username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if utf8.RuneCountInString(username) < MinUsernameLength {
		return ErrUsernameTooShort
	}

	if !ContainsSubsequence(username, usernamePattern) {
		return ErrInvalidUsername
	}

	if password != Reverse(username) {
		return ErrPasswordMismatch
	}

	return nil
}

// ContainsSubsequence reports whether every rune of pattern occurs in s in
// the same relative order, not necessarily adjacent.
func ContainsSubsequence(s, pattern string) bool {
	for _, want := range pattern {
		i := strings.IndexRune(s, want)
		if i < 0 {
			return false
		}
		s = s[i+utf8.RuneLen(want):]
	}
	return true
}

// Reverse returns s with its characters in reverse order.
func Reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
