package httpapi

import (
	"encoding/json"
	"net/http"

	"comunidad/internal/store"
	dErrors "comunidad/pkg/domain-errors"
)

type publishAnnouncementRequest struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Type        store.AnnouncementType `json:"type"`
}

type publishStatementRequest struct {
	Month   string `json:"month"`
	Amount  int    `json:"amount"`
	Details string `json:"details"`
}

type publishProjectRequest struct {
	ProjectName   string `json:"projectName"`
	Area          string `json:"area"`
	EstimatedDate string `json:"estimatedDate"`
	Budget        int    `json:"budget"`
	Description   string `json:"description"`
}

func (h *Handler) handleListAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.board.Announcements(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, announcements)
}

func (h *Handler) handlePublishAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req publishAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	announcement, err := h.board.PublishAnnouncement(r.Context(), req.Title, req.Description, req.Type)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, announcement)
}

func (h *Handler) handleListStatements(w http.ResponseWriter, r *http.Request) {
	statements, err := h.board.BillingStatements(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statements)
}

func (h *Handler) handlePublishStatement(w http.ResponseWriter, r *http.Request) {
	var req publishStatementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	statement, err := h.board.PublishBillingStatement(r.Context(), req.Month, req.Amount, req.Details)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, statement)
}

func (h *Handler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.board.MaintenanceProjects(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *Handler) handlePublishProject(w http.ResponseWriter, r *http.Request) {
	var req publishProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	project, err := h.board.PublishMaintenanceProject(r.Context(), store.MaintenanceProject{
		ProjectName:   req.ProjectName,
		Area:          req.Area,
		EstimatedDate: req.EstimatedDate,
		Budget:        req.Budget,
		Description:   req.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, project)
}
