package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"comunidad/internal/audit"
	"comunidad/internal/platform/metrics"
	"comunidad/internal/portal/billing"
	"comunidad/internal/storage"
	"comunidad/internal/store"
	dErrors "comunidad/pkg/domain-errors"
)

var testMetrics = metrics.New()

type BillingSuite struct {
	suite.Suite
	st  *store.Store
	svc *billing.Service
}

func (s *BillingSuite) SetupTest() {
	s.st = store.New(storage.NewMemory())
	s.svc = billing.New(s.st, testMetrics, audit.NewPublisher(audit.NewInMemoryStore())).
		WithClock(func() time.Time {
			return time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)
		})
}

func TestBillingSuite(t *testing.T) {
	suite.Run(t, new(BillingSuite))
}

func (s *BillingSuite) TestFirstReadSeedsDefaults() {
	invoices, err := s.svc.Invoices(context.Background())
	s.Require().NoError(err)
	s.Require().Len(invoices, 4)

	unpaid := 0
	for _, inv := range invoices {
		if !inv.Paid {
			unpaid++
			s.Equal(85000, inv.Amount)
			s.Equal("2026-09-15", inv.DueDate)
		}
	}
	s.Equal(1, unpaid)
}

func (s *BillingSuite) TestPay() {
	ctx := context.Background()

	s.Run("marks the unpaid invoice paid today", func() {
		paid, err := s.svc.Pay(ctx, "1")
		s.Require().NoError(err)
		s.True(paid.Paid)
		s.Equal("2026-09-01", paid.PaidDate)

		invoices, err := s.st.Invoices(ctx)
		s.Require().NoError(err)
		s.True(invoices[0].Paid)
	})

	s.Run("paying twice is a conflict", func() {
		_, err := s.svc.Pay(ctx, "1")
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeConflict))
	})

	s.Run("unknown invoice is not found", func() {
		_, err := s.svc.Pay(ctx, "nope")
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeNotFound))
	})
}
