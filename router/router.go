// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/enstack-letters/cliparse"
	"github.com/danielhkuo/enstack-letters/handlers"
	"github.com/danielhkuo/enstack-letters/letters"
	"github.com/danielhkuo/enstack-letters/middleware"
	"github.com/danielhkuo/enstack-letters/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.Prometheus)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		middleware.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Initialize handlers
	letterStore := store.NewSQLStore(db, cfg.DatabaseType)
	letterHandler := handlers.NewLetterHandler(letters.NewService(letterStore))
	loginHandler := handlers.NewLoginHandler()
	healthHandler := handlers.NewHealthHandler(letterStore)

	r.Get("/health", healthHandler.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/letters", middleware.WithLogging(letterHandler.ListLetters))

		// Static /letter/* routes take priority over /letter/{letter}.
		r.Post("/letter/add", middleware.WithLogging(letterHandler.AddLetter))
		r.Get("/letter/shuffle", middleware.WithLogging(letterHandler.ShuffleLetters))
		r.With(chiPathValue).Get("/letter/filter/{val:[0-9]+}", middleware.WithLogging(letterHandler.FilterLetters))
		r.With(chiPathValue).Get("/letter/{letter}", middleware.WithLogging(letterHandler.GetLetter))

		r.With(middleware.RateLimit(cfg.LoginRateLimit, cfg.LoginRateWindow)).
			Post("/login", middleware.WithLogging(loginHandler.Login))
	})

	// Root endpoint
	r.Get("/", handlers.Home)

	return r
}

// chiPathValue copies chi URL params into the request so handlers can use
// r.PathValue, as they would behind http.ServeMux.
func chiPathValue(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			for i, key := range rctx.URLParams.Keys {
				if i < len(rctx.URLParams.Values) {
					r.SetPathValue(key, rctx.URLParams.Values[i])
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
