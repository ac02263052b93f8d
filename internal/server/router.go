// Package server exposes notification dispatch over HTTP.
package server

import (
	"net/http"

	"returns-notifier/internal/common/config"
	"returns-notifier/internal/common/logger"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps holds the collaborators the router needs.
type Deps struct {
	Dispatcher Dispatcher
	Health     []HealthChecker
	Logger     logger.Logger
}

// NewRouter builds the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"POST", "GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	notifH := NewNotificationHandler(deps.Dispatcher, deps.Logger)
	healthH := NewHealthHandler(deps.Health)

	r.Get("/healthz", healthH.Check)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/notifications/return-status", notifH.Dispatch)
	})

	return r
}
