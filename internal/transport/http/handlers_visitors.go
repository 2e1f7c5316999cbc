package httpapi

import (
	"encoding/json"
	"net/http"

	dErrors "comunidad/pkg/domain-errors"
)

type registerVisitorRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (h *Handler) handleListVisitors(w http.ResponseWriter, r *http.Request) {
	visitors, err := h.visitors.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, visitors)
}

func (h *Handler) handleRegisterVisitor(w http.ResponseWriter, r *http.Request) {
	var req registerVisitorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	visitor, err := h.visitors.Register(r.Context(), req.FirstName, req.LastName)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, visitor)
}

func (h *Handler) handleVisitorSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.visitors.MonthlySummary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
