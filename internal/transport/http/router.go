package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"comunidad/internal/platform/metrics"
	"comunidad/internal/platform/middleware"
	"comunidad/internal/portal/billing"
	"comunidad/internal/portal/board"
	"comunidad/internal/portal/reservations"
	"comunidad/internal/portal/session"
	"comunidad/internal/portal/visitors"
)

// Handler bundles the portal services behind the HTTP surface.
type Handler struct {
	logger       *slog.Logger
	metrics      *metrics.Metrics
	session      *session.Service
	billing      *billing.Service
	reservations *reservations.Service
	visitors     *visitors.Service
	board        *board.Service
}

func NewHandler(
	logger *slog.Logger,
	m *metrics.Metrics,
	sessionSvc *session.Service,
	billingSvc *billing.Service,
	reservationsSvc *reservations.Service,
	visitorsSvc *visitors.Service,
	boardSvc *board.Service,
) *Handler {
	return &Handler{
		logger:       logger,
		metrics:      m,
		session:      sessionSvc,
		billing:      billingSvc,
		reservations: reservationsSvc,
		visitors:     visitorsSvc,
		board:        boardSvc,
	}
}

// NewRouter wires all public endpoints with the shared middleware chain.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(h.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)

	r.Get("/health", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/session", func(r chi.Router) {
		r.Post("/login", h.handleLogin)
		r.Post("/logout", h.handleLogout)
		r.Get("/", h.handleCurrentSession)
		r.Post("/admin/login", h.handleAdminLogin)
		r.Post("/admin/logout", h.handleAdminLogout)
		r.Get("/admin", h.handleCurrentAdmin)
	})

	r.Route("/invoices", func(r chi.Router) {
		r.Get("/", h.handleListInvoices)
		r.Post("/{id}/pay", h.handlePayInvoice)
	})

	r.Route("/reservations", func(r chi.Router) {
		r.Get("/", h.handleListReservations)
		r.Post("/", h.handleBookReservation)
		r.Delete("/{id}", h.handleCancelReservation)
	})

	r.Route("/visitors", func(r chi.Router) {
		r.Get("/", h.handleListVisitors)
		r.Post("/", h.handleRegisterVisitor)
		r.Get("/summary", h.handleVisitorSummary)
	})

	r.Route("/board", func(r chi.Router) {
		r.Get("/announcements", h.handleListAnnouncements)
		r.Post("/announcements", h.handlePublishAnnouncement)
		r.Get("/billing-statements", h.handleListStatements)
		r.Post("/billing-statements", h.handlePublishStatement)
		r.Get("/maintenance-projects", h.handleListProjects)
		r.Post("/maintenance-projects", h.handlePublishProject)
	})

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
