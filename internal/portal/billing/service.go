// Package billing lists common-expense invoices and marks them paid.
package billing

import (
	"context"
	"time"

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

// Invoices returns the invoice collection, seeding the default records on the
// very first read.
func (s *Service) Invoices(ctx context.Context) ([]store.Invoice, error) {
	invoices, err := s.store.BootstrapInvoices(ctx, s.now())
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "read invoices", err)
	}
	return invoices, nil
}

// Pay marks the invoice paid as of today. Paying an already paid invoice is a
// conflict, not an idempotent success, so double submissions surface.
func (s *Service) Pay(ctx context.Context, id string) (store.Invoice, error) {
	invoices, err := s.store.BootstrapInvoices(ctx, s.now())
	if err != nil {
		return store.Invoice{}, dErrors.Wrap(dErrors.CodeInternal, "read invoices", err)
	}

	idx := -1
	for i := range invoices {
		if invoices[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return store.Invoice{}, dErrors.New(dErrors.CodeNotFound, "invoice not found")
	}
	if invoices[idx].Paid {
		return store.Invoice{}, dErrors.New(dErrors.CodeConflict, "invoice already paid")
	}

	invoices[idx].Paid = true
	invoices[idx].PaidDate = s.now().Format("2006-01-02")
	if err := s.store.SetInvoices(ctx, invoices); err != nil {
		return store.Invoice{}, dErrors.Wrap(dErrors.CodeInternal, "persist invoices", err)
	}

	s.metrics.Payments.Inc()
	_ = s.audit.Emit(ctx, audit.Event{
		Action:  audit.ActionInvoicePaid,
		Subject: id,
		Detail:  invoices[idx].Month,
	})

	return invoices[idx], nil
}
