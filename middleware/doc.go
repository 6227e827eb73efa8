// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	r.Get("/letters", middleware.WithLogging(h.ListLetters))

Logs request start (method, path, remote) and completion (status,
duration_ms) through logging.Ctx, so each line carries the request and
correlation IDs set by RequestID.

# Router Middleware

These take and return http.Handler for chi's Use:

  - RequestID: reads or generates X-Request-ID and stores IDs in the context
  - CORS: go-chi/cors with the configured origins
  - Prometheus: request count and latency labelled by chi route pattern
  - RateLimit: go-chi/httprate per client IP, 429 as a JSON error

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Letter not found")
	middleware.ValidationErrorResponse(w, verr)

Parse JSON request bodies:

	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

Encoding uses goccy/go-json.

# Client IP Extraction

Get the real client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
