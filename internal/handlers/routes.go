package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/uikit/internal/middleware"
)

// Routes builds the router. Metrics collected through reg are served from
// gatherer on /metrics.
func (h *Handlers) Routes(logger *slog.Logger, reg prometheus.Registerer, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.NewMetrics(reg).Handler)

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Get("/", h.Board)
	r.Get("/board.json", h.BoardJSON)
	r.Post("/cards", h.AddCard)
	r.Post("/cards/{id}/move", h.MoveCard)

	return r
}
