// Package http assembles the chi router for the widget-facing API.
package http

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"scorepulse/internal/http/handlers"
	"scorepulse/internal/http/middleware"
	"scorepulse/internal/metrics"
)

// requestTimeout covers the slowest admitted lookup: a schedule scan plus a
// summary fetch, each retried once.
const requestTimeout = 20 * time.Second

// NewRouter builds the HTTP route table with the full middleware stack.
func NewRouter(h *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder, corsOrigins []string) nethttp.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.SecurityHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(middleware.Logging(logger, recorder))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(requestTimeout))

	r.NotFound(handlers.NotFound(logger))
	r.MethodNotAllowed(handlers.MethodNotAllowed(logger))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Route("/api", func(r chi.Router) {
		r.Get("/teams/{sport}", h.Teams)
		r.Get("/scores/{sport}/{team}", h.Scores)
		r.Get("/game-details/{sport}/{team}", h.GameDetails)
	})

	return r
}
