// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Enstack Letters API.

# Handler Types

Each handler is a struct holding its dependencies:

  - LetterHandler: list, get, add, shuffle and filter letters (letters.Service)
  - LoginHandler: the login check (no dependencies)
  - HealthHandler: database ping (store.LetterStore)

Home is a plain function serving the HTML banner.

	letterHandler := handlers.NewLetterHandler(letters.NewService(st))

# Adding Letters

POST /letter/add decodes the body field by field, trims the letter and
validates the request before calling the service:

	201 {"status": 0}                       created
	400 {"status": 1}                       letter taken, value taken, or value == strokes
	400 {"error", "message", "fields"}      missing or mistyped fields

Which rule rejected a letter is logged and counted in Prometheus but not
returned.

# Not Found

List, shuffle and filter answer 404 "No letters found in the database" when
nothing matches; get answers 404 "Letter not found". A filter value that is
not a non-negative integer is also a 404.

# Errors

Unexpected store failures are logged with the request ID and answered with
500 "Database error".
*/
package handlers
