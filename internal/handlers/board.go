package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vango-dev/uikit/internal/board"
)

// Board renders the board page.
func (h *Handlers) Board(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.Render(r.Context(), &buf); err != nil {
		h.logger.Error("render board", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// Render writes the board page to w inside a trace span and records the
// render time.
func (h *Handlers) Render(ctx context.Context, w io.Writer) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ctx, span := h.tracer.Start(ctx, "board.render")
	defer span.End()

	span.SetAttributes(
		attribute.String("board.id", h.board.ID),
		attribute.Int("board.columns", len(h.board.Columns)),
		attribute.Int("board.cards", h.board.CardCount()),
	)

	start := time.Now()
	err := board.Page(h.board).Render(ctx, w)
	h.renders.Observe(time.Since(start).Seconds())

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return err
	}
	return nil
}

// BoardJSON returns the board model, identity keys included, so a client
// can match rendered elements to cards.
func (h *Handlers) BoardJSON(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.board); err != nil {
		h.logger.Error("encode board", "error", err)
	}
}

// Health reports that the server is up.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}
