package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"comunidad/internal/store"
	dErrors "comunidad/pkg/domain-errors"
)

type bookRequest struct {
	Space     store.Space `json:"space"`
	Date      string      `json:"date"`
	StartTime string      `json:"startTime"`
}

func (h *Handler) handleListReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.reservations.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservations)
}

func (h *Handler) handleBookReservation(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	reservation, err := h.reservations.Book(r.Context(), req.Space, req.Date, req.StartTime)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, reservation)
}

func (h *Handler) handleCancelReservation(w http.ResponseWriter, r *http.Request) {
	if err := h.reservations.Cancel(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
