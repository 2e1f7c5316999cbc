// Package board is the announcement board plus the two admin publications
// that feed it: publishing a billing statement or a maintenance project also
// posts the matching announcement, in that order, so residents always see an
// entry for anything published.
package board

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"comunidad/internal/audit"
	"comunidad/internal/platform/metrics"
	"comunidad/internal/store"
	dErrors "comunidad/pkg/domain-errors"
)

type Service struct {
	store   *store.Store
	metrics *metrics.Metrics
	audit   *audit.Publisher
	now     func() time.Time
}

func New(st *store.Store, m *metrics.Metrics, publisher *audit.Publisher) *Service {
	return &Service{store: st, metrics: m, audit: publisher, now: time.Now}
}

// WithClock overrides the service clock. Tests use it to pin dates.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Announcements returns board entries newest first.
func (s *Service) Announcements(ctx context.Context) ([]store.Announcement, error) {
	announcements, err := s.store.Announcements(ctx)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "read announcements", err)
	}
	out := make([]store.Announcement, 0, len(announcements))
	for i := len(announcements) - 1; i >= 0; i-- {
		out = append(out, announcements[i])
	}
	return out, nil
}

func (s *Service) BillingStatements(ctx context.Context) ([]store.BillingStatement, error) {
	statements, err := s.store.BillingStatements(ctx)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "read billing statements", err)
	}
	return statements, nil
}

func (s *Service) MaintenanceProjects(ctx context.Context) ([]store.MaintenanceProject, error) {
	projects, err := s.store.MaintenanceProjects(ctx)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "read maintenance projects", err)
	}
	return projects, nil
}

// PublishAnnouncement posts a standalone board entry.
func (s *Service) PublishAnnouncement(ctx context.Context, title, description string, typ store.AnnouncementType) (store.Announcement, error) {
	if title == "" {
		return store.Announcement{}, dErrors.New(dErrors.CodeBadRequest, "title is required")
	}
	switch typ {
	case store.AnnouncementMaintenance, store.AnnouncementBilling, store.AnnouncementGeneral:
	default:
		return store.Announcement{}, dErrors.New(dErrors.CodeBadRequest, "unknown announcement type")
	}

	announcement := store.Announcement{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Date:        s.now().Format("2006-01-02"),
		Type:        typ,
	}
	if err := s.appendAnnouncement(ctx, announcement); err != nil {
		return store.Announcement{}, err
	}

	s.metrics.Publications.WithLabelValues("announcement").Inc()
	_ = s.audit.Emit(ctx, audit.Event{
		Action:  audit.ActionAnnouncementPosted,
		Subject: title,
	})

	return announcement, nil
}

// PublishBillingStatement records the statement and posts the matching
// billing announcement.
func (s *Service) PublishBillingStatement(ctx context.Context, month string, amount int, details string) (store.BillingStatement, error) {
	if month == "" {
		return store.BillingStatement{}, dErrors.New(dErrors.CodeBadRequest, "month is required")
	}
	if amount < 0 {
		return store.BillingStatement{}, dErrors.New(dErrors.CodeBadRequest, "amount must be non-negative")
	}

	statements, err := s.store.BillingStatements(ctx)
	if err != nil {
		return store.BillingStatement{}, dErrors.Wrap(dErrors.CodeInternal, "read billing statements", err)
	}

	statement := store.BillingStatement{
		ID:          uuid.NewString(),
		Month:       month,
		Amount:      amount,
		Details:     details,
		CreatedDate: s.now().Format("2006-01-02"),
	}
	if err := s.store.SetBillingStatements(ctx, append(statements, statement)); err != nil {
		return store.BillingStatement{}, dErrors.Wrap(dErrors.CodeInternal, "persist billing statements", err)
	}

	announcement := store.Announcement{
		ID:          uuid.NewString(),
		Title:       fmt.Sprintf("Gastos Comunes - %s", month),
		Description: fmt.Sprintf("Se ha publicado la rendición de cuentas de %s. Monto: $%d. %s", month, amount, details),
		Date:        statement.CreatedDate,
		Type:        store.AnnouncementBilling,
	}
	if err := s.appendAnnouncement(ctx, announcement); err != nil {
		return store.BillingStatement{}, err
	}

	s.metrics.Publications.WithLabelValues("billing_statement").Inc()
	_ = s.audit.Emit(ctx, audit.Event{
		Action:  audit.ActionStatementPosted,
		Subject: month,
	})

	return statement, nil
}

// PublishMaintenanceProject records the project and posts the matching
// maintenance announcement.
func (s *Service) PublishMaintenanceProject(ctx context.Context, p store.MaintenanceProject) (store.MaintenanceProject, error) {
	if p.ProjectName == "" || p.Area == "" {
		return store.MaintenanceProject{}, dErrors.New(dErrors.CodeBadRequest, "project name and area are required")
	}
	if p.Budget < 0 {
		return store.MaintenanceProject{}, dErrors.New(dErrors.CodeBadRequest, "budget must be non-negative")
	}

	projects, err := s.store.MaintenanceProjects(ctx)
	if err != nil {
		return store.MaintenanceProject{}, dErrors.Wrap(dErrors.CodeInternal, "read maintenance projects", err)
	}

	p.ID = uuid.NewString()
	p.CreatedDate = s.now().Format("2006-01-02")
	if err := s.store.SetMaintenanceProjects(ctx, append(projects, p)); err != nil {
		return store.MaintenanceProject{}, dErrors.Wrap(dErrors.CodeInternal, "persist maintenance projects", err)
	}

	announcement := store.Announcement{
		ID:          uuid.NewString(),
		Title:       fmt.Sprintf("Mantenimiento: %s", p.ProjectName),
		Description: fmt.Sprintf("Se realizará mantenimiento en %s. Fecha estimada: %s. Presupuesto: $%d. %s", p.Area, p.EstimatedDate, p.Budget, p.Description),
		Date:        p.CreatedDate,
		Type:        store.AnnouncementMaintenance,
	}
	if err := s.appendAnnouncement(ctx, announcement); err != nil {
		return store.MaintenanceProject{}, err
	}

	s.metrics.Publications.WithLabelValues("maintenance_project").Inc()
	_ = s.audit.Emit(ctx, audit.Event{
		Action:  audit.ActionProjectPosted,
		Subject: p.ProjectName,
	})

	return p, nil
}

func (s *Service) appendAnnouncement(ctx context.Context, a store.Announcement) error {
	announcements, err := s.store.Announcements(ctx)
	if err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "read announcements", err)
	}
	if err := s.store.SetAnnouncements(ctx, append(announcements, a)); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "persist announcements", err)
	}
	return nil
}
