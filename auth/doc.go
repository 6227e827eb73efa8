// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth implements the login check.

# Rules

CheckLogin trims both inputs and applies three rules in order, returning the
first failure:

  - ErrUsernameTooShort: username has fewer than 4 characters
  - ErrInvalidUsername: username does not contain 'a', 'b', 'c' in that order
  - ErrPasswordMismatch: password is not the username reversed

	if err := auth.CheckLogin(username, password); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

The error strings are the messages shown to API clients, which is why they
are capitalised.

# Helpers

ContainsSubsequence and Reverse work on characters (runes), not bytes:

	auth.ContainsSubsequence("xaybzc", "abc") // true
	auth.Reverse("zabcd")                     // "dcbaz"

The login check never touches storage and issues no session or token.
*/
package auth
