// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Enstack Letters API.

# Route Registration

NewRouter creates a configured chi router with all endpoints:

	handler := router.NewRouter(db, cfg)

# Endpoints

Operations:

	GET /health  - Pings the database; 503 when unreachable
	GET /metrics - Prometheus exposition
	GET /        - HTML banner

Letters:

	GET  /api/letters              - All letters ordered by value
	GET  /api/letter/{letter}      - One letter, case-sensitive
	POST /api/letter/add           - Add a letter
	GET  /api/letter/shuffle       - All letters concatenated in random order
	GET  /api/letter/filter/{val}  - Letters with value <= val, in insertion order

Login check:

	POST /api/login - Validate a username/password pair (rate limited when configured)

{val} must be a non-negative integer; anything else is a 404. The static
/letter routes win over {letter}, so "shuffle" is never looked up as a
letter. GET /api/letter/add has no static GET route and looks up the letter
"add".

# Middleware

Every request passes through RequestID, chi's RealIP and Recoverer, CORS,
and Prometheus. API handlers are also wrapped in WithLogging. Unknown routes
and wrong methods get JSON 404 and 405 bodies.

# Handler Initialization

The router builds the store, service and handlers with dependency injection:

	letterStore := store.NewSQLStore(db, cfg.DatabaseType)
	letterHandler := handlers.NewLetterHandler(letters.NewService(letterStore))
	loginHandler := handlers.NewLoginHandler()
	healthHandler := handlers.NewHealthHandler(letterStore)
*/
package router
