// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Settings are layered with koanf, later layers winning:

 1. built-in defaults
 2. a YAML file (-c, CONFIG_PATH, or ./config.yaml if present)
 3. environment variables
 4. command-line flags

# Config Fields

  - Port: Server listen port (default: 3000)
  - Host: Listen host (default: 0.0.0.0)
  - DatabaseURL: SQLite path or PostgreSQL connection string (required)
  - DatabaseType: sqlite or postgres (default: inferred from DatabaseURL)
  - LogLevel, LogFormat: zerolog level and json|console output
  - CORSOrigins: allowed origins (default: *)
  - LoginRateLimit, LoginRateWindow: per-IP limit on POST /api/login (0 = off)
  - ReadTimeout, WriteTimeout, ShutdownTimeout: HTTP server timeouts

# CLI Flags

	-p  Server port
	-d  Database URL
	-t  Database type (sqlite or postgres)
	-c  YAML config file

# Environment Variables

	PORT               → port
	HOST               → host
	DATABASE_URL       → database_url
	DATABASE_TYPE      → database_type
	LOG_LEVEL          → log_level
	LOG_FORMAT         → log_format
	CORS_ORIGINS       → cors_origins (comma-separated)
	LOGIN_RATE_LIMIT   → login_rate_limit
	LOGIN_RATE_WINDOW  → login_rate_window (e.g. 1m)
	READ_TIMEOUT       → read_timeout
	WRITE_TIMEOUT      → write_timeout
	SHUTDOWN_TIMEOUT   → shutdown_timeout

A .env file in the working directory is loaded by main before ParseFlags.

# Validation

ParseFlags returns an error if:

  - no database URL is given
  - the database type is not sqlite or postgres
  - the port, log format or login rate settings are out of range

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		logging.Fatal().Err(err).Msg("invalid configuration")
	}

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	handler := router.NewRouter(conn, cfg)
*/
package cliparse
