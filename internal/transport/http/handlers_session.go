package httpapi

import (
	"encoding/json"
	"net/http"

	"comunidad/internal/platform/middleware"
	"comunidad/internal/portal/session"
	dErrors "comunidad/pkg/domain-errors"
)

type loginRequest struct {
	Rut            string `json:"rut"`
	Address        string `json:"address"`
	BuildingNumber string `json:"buildingNumber"`
}

type adminLoginRequest struct {
	Rut      string `json:"rut"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid login request",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	resident, err := h.session.Login(ctx, session.LoginRequest{
		Rut:            req.Rut,
		Address:        req.Address,
		BuildingNumber: req.BuildingNumber,
		Device:         deviceLabel(r.UserAgent()),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resident)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Logout(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCurrentSession(w http.ResponseWriter, r *http.Request) {
	resident, err := h.session.Current(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resident)
}

func (h *Handler) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	admin, err := h.session.LoginAdmin(ctx, session.AdminLoginRequest{
		Rut:      req.Rut,
		Address:  req.Address,
		Password: req.Password,
		Device:   deviceLabel(r.UserAgent()),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, admin)
}

func (h *Handler) handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.session.LogoutAdmin(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCurrentAdmin(w http.ResponseWriter, r *http.Request) {
	admin, err := h.session.CurrentAdmin(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, admin)
}
