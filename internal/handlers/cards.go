package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/uikit/internal/board"
)

// AddCard creates a card from the new-card form and redirects to the board.
func (h *Handlers) AddCard(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	card, err := h.board.AddCard(r.PostForm.Get("column"), r.PostForm.Get("title"))
	h.mu.Unlock()
	if err != nil {
		h.editError(w, err)
		return
	}

	h.logger.Info("card added", "card", card.ID, "key", card.IdentityKey)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// MoveCard handles a drop from the sortable column hook.
func (h *Handlers) MoveCard(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	index, err := strconv.Atoi(r.PostForm.Get("index"))
	if err != nil {
		http.Error(w, "index must be a number", http.StatusBadRequest)
		return
	}
	cardID := chi.URLParam(r, "id")

	h.mu.Lock()
	err = h.board.MoveCard(cardID, r.PostForm.Get("column"), index)
	h.mu.Unlock()
	if err != nil {
		h.editError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) editError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, board.ErrColumnNotFound), errors.Is(err, board.ErrCardNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, board.ErrEmptyTitle):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Error("edit board", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
