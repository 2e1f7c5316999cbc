package visitors_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"comunidad/internal/audit"
	"comunidad/internal/platform/metrics"
	"comunidad/internal/portal/visitors"
	"comunidad/internal/storage"
	"comunidad/internal/store"
	dErrors "comunidad/pkg/domain-errors"
)

var testMetrics = metrics.New()

type VisitorsSuite struct {
	suite.Suite
	st    *store.Store
	svc   *visitors.Service
	clock time.Time
}

func (s *VisitorsSuite) SetupTest() {
	s.st = store.New(storage.NewMemory())
	s.clock = time.Date(2026, time.September, 1, 18, 30, 0, 0, time.UTC)
	s.svc = visitors.New(s.st, testMetrics, audit.NewPublisher(audit.NewInMemoryStore())).
		WithClock(func() time.Time { return s.clock })
}

func TestVisitorsSuite(t *testing.T) {
	suite.Run(t, new(VisitorsSuite))
}

func (s *VisitorsSuite) login(unit string) {
	s.T().Helper()
	s.Require().NoError(s.st.SetResident(context.Background(), store.Resident{
		Rut:            "12.345.678-5",
		Address:        "Av. Providencia 1234",
		BuildingNumber: unit,
	}))
}

func (s *VisitorsSuite) TestRegister() {
	ctx := context.Background()

	s.Run("requires a resident session", func() {
		_, err := s.svc.Register(ctx, "Ana", "Rojas")
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeUnauthorized))
	})

	s.Run("stamps entry and the resident's unit", func() {
		s.login("Depto 1203")

		v, err := s.svc.Register(ctx, "Ana", "Rojas")
		s.Require().NoError(err)
		s.Equal("Depto 1203", v.Unit)
		s.Equal("2026-09-01", v.EntryDate)
		s.Equal("18:30", v.EntryTime)
	})

	s.Run("requires both names", func() {
		s.login("Depto 1203")
		_, err := s.svc.Register(ctx, "", "Rojas")
		s.True(dErrors.Is(err, dErrors.CodeBadRequest))
	})
}

func (s *VisitorsSuite) TestListNewestFirst() {
	ctx := context.Background()
	s.login("Depto 1203")

	first, err := s.svc.Register(ctx, "Ana", "Rojas")
	s.Require().NoError(err)
	s.clock = s.clock.Add(time.Hour)
	second, err := s.svc.Register(ctx, "Benito", "Soto")
	s.Require().NoError(err)

	got, err := s.svc.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(second.ID, got[0].ID)
	s.Equal(first.ID, got[1].ID)
}

func (s *VisitorsSuite) TestMonthlySummaryGroupsByUnit() {
	ctx := context.Background()

	s.login("Depto 401")
	_, err := s.svc.Register(ctx, "Ana", "Rojas")
	s.Require().NoError(err)

	s.login("Depto 1203")
	_, err = s.svc.Register(ctx, "Benito", "Soto")
	s.Require().NoError(err)

	s.clock = time.Date(2026, time.October, 3, 11, 0, 0, 0, time.UTC)
	_, err = s.svc.Register(ctx, "Carla", "Muñoz")
	s.Require().NoError(err)

	summary, err := s.svc.MonthlySummary(ctx)
	s.Require().NoError(err)

	s.Require().Len(summary, 2)
	s.Len(summary["2026-09"]["Depto 401"], 1)
	s.Len(summary["2026-09"]["Depto 1203"], 1)
	s.Len(summary["2026-10"]["Depto 1203"], 1)
}
