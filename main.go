package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/enstack-letters/cliparse"
	"github.com/danielhkuo/enstack-letters/db"
	"github.com/danielhkuo/enstack-letters/logging"
	"github.com/danielhkuo/enstack-letters/router"
)

func main() {
	// Load .env if present; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.Fatal().Err(err).Msg("Error loading .env")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		logging.Fatal().Err(err).Msg("Error parsing flags")
	}

	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect and verify
	dbConn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal().Err(err).Str("driver", cfg.DatabaseType).Msg("database connection failed")
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(ctx, dbConn, cfg.DatabaseType); err != nil {
		logging.Fatal().Err(err).Msg("schema creation failed")
	}
	logging.Info().Str("driver", cfg.DatabaseType).Msg("Database schema ready")

	// Create server
	server := &http.Server{
		Handler:      router.NewRouter(dbConn, cfg),
		Addr:         cfg.Addr(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		// Wait for Ctrl-C or SIGTERM
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logging.Error().Err(err).Msg("graceful shutdown failed")
			server.Close()
		}
	}()

	// Start server
	logging.Info().Str("addr", server.Addr).Msg("Listening")
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Error().Err(err).Msg("Server closed")
	} else {
		logging.Info().Msg("Server closed")
	}
}
