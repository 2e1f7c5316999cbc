// Package visitors registers building visitors against the logged-in
// resident's unit and summarizes visits for the administrator.
package visitors

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"comunidad/internal/audit"
	"comunidad/internal/platform/metrics"
	"comunidad/internal/store"
	dErrors "comunidad/pkg/domain-errors"
	"comunidad/pkg/platform/sentinel"
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

// Register appends a visitor stamped with the current date, time, and the
// logged-in resident's unit. A resident session is required: the unit on the
// visitor record is what the admin summary groups by.
func (s *Service) Register(ctx context.Context, firstName, lastName string) (store.Visitor, error) {
	if firstName == "" || lastName == "" {
		return store.Visitor{}, dErrors.New(dErrors.CodeBadRequest, "first and last name are required")
	}

	resident, err := s.store.Resident(ctx)
	if errors.Is(err, sentinel.ErrNotFound) {
		return store.Visitor{}, dErrors.New(dErrors.CodeUnauthorized, "no resident session")
	}
	if err != nil {
		return store.Visitor{}, dErrors.Wrap(dErrors.CodeInternal, "read resident", err)
	}

	visitors, err := s.store.Visitors(ctx)
	if err != nil {
		return store.Visitor{}, dErrors.Wrap(dErrors.CodeInternal, "read visitors", err)
	}

	now := s.now()
	visitor := store.Visitor{
		ID:        uuid.NewString(),
		FirstName: firstName,
		LastName:  lastName,
		Unit:      resident.BuildingNumber,
		EntryDate: now.Format("2006-01-02"),
		EntryTime: now.Format("15:04"),
	}
	if err := s.store.SetVisitors(ctx, append(visitors, visitor)); err != nil {
		return store.Visitor{}, dErrors.Wrap(dErrors.CodeInternal, "persist visitors", err)
	}

	s.metrics.Visitors.Inc()
	_ = s.audit.Emit(ctx, audit.Event{
		Rut:     resident.Rut,
		Action:  audit.ActionVisitorRegistered,
		Subject: visitor.Unit,
	})

	return visitor, nil
}

// List returns visitors newest first.
func (s *Service) List(ctx context.Context) ([]store.Visitor, error) {
	visitors, err := s.store.Visitors(ctx)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "read visitors", err)
	}
	out := make([]store.Visitor, 0, len(visitors))
	for i := len(visitors) - 1; i >= 0; i-- {
		out = append(out, visitors[i])
	}
	return out, nil
}

// MonthlySummary groups visitors by entry month (YYYY-MM) and then by the
// unit they visited.
func (s *Service) MonthlySummary(ctx context.Context) (map[string]map[string][]store.Visitor, error) {
	visitors, err := s.store.Visitors(ctx)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "read visitors", err)
	}

	summary := make(map[string]map[string][]store.Visitor)
	for _, v := range visitors {
		month := v.EntryDate
		if len(month) >= 7 {
			month = month[:7]
		}
		if summary[month] == nil {
			summary[month] = make(map[string][]store.Visitor)
		}
		summary[month][v.Unit] = append(summary[month][v.Unit], v)
	}
	return summary, nil
}
