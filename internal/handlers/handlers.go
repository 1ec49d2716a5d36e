package handlers

import (
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/uikit/internal/board"
)

const tracerName = "github.com/vango-dev/uikit/internal/handlers"

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	mu      sync.RWMutex // guards board
	board   *board.Board
	logger  *slog.Logger
	tracer  trace.Tracer
	renders prometheus.Histogram
}

// Option customises Handlers.
type Option func(*Handlers)

// WithTracerProvider sets where board render spans go. The global provider
// is used by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(h *Handlers) { h.tracer = tp.Tracer(tracerName) }
}

// New creates a new Handlers instance serving b. The render histogram is
// registered with reg.
func New(b *board.Board, logger *slog.Logger, reg prometheus.Registerer, opts ...Option) *Handlers {
	h := &Handlers{
		board:  b,
		logger: logger,
		tracer: otel.Tracer(tracerName),
		renders: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "uikit",
			Subsystem: "board",
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering the board page.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		}),
	}
	for _, opt := range opts {
		opt(h)
	}
	reg.MustRegister(h.renders)
	return h
}
