package reservations_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"comunidad/internal/audit"
	"comunidad/internal/platform/metrics"
	"comunidad/internal/portal/reservations"
	"comunidad/internal/storage"
	"comunidad/internal/store"
	dErrors "comunidad/pkg/domain-errors"
)

var testMetrics = metrics.New()

type ReservationsSuite struct {
	suite.Suite
	st  *store.Store
	svc *reservations.Service
}

func (s *ReservationsSuite) SetupTest() {
	s.st = store.New(storage.NewMemory())
	s.svc = reservations.New(s.st, testMetrics, audit.NewPublisher(audit.NewInMemoryStore()))
}

func TestReservationsSuite(t *testing.T) {
	suite.Run(t, new(ReservationsSuite))
}

func (s *ReservationsSuite) TestBook() {
	ctx := context.Background()

	s.Run("derives the end time one hour after start", func() {
		r, err := s.svc.Book(ctx, store.SpacePool, "2026-09-05", "10:00")
		s.Require().NoError(err)
		s.Equal("11:00", r.EndTime)
		s.NotEmpty(r.ID)
	})

	s.Run("rejects a duplicate slot before writing", func() {
		before, err := s.st.Reservations(ctx)
		s.Require().NoError(err)

		_, err = s.svc.Book(ctx, store.SpacePool, "2026-09-05", "10:00")
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeConflict))

		after, err := s.st.Reservations(ctx)
		s.Require().NoError(err)
		s.Equal(before, after)
	})

	s.Run("same slot in another space is fine", func() {
		_, err := s.svc.Book(ctx, store.SpaceTerrace, "2026-09-05", "10:00")
		s.NoError(err)
	})

	s.Run("same space at another time is fine", func() {
		_, err := s.svc.Book(ctx, store.SpacePool, "2026-09-05", "11:00")
		s.NoError(err)
	})

	s.Run("rejects unknown space", func() {
		_, err := s.svc.Book(ctx, store.Space("jacuzzi"), "2026-09-05", "10:00")
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeBadRequest))
	})

	s.Run("rejects malformed date and time", func() {
		_, err := s.svc.Book(ctx, store.SpacePool, "05-09-2026", "10:00")
		s.True(dErrors.Is(err, dErrors.CodeBadRequest))

		_, err = s.svc.Book(ctx, store.SpacePool, "2026-09-05", "10am")
		s.True(dErrors.Is(err, dErrors.CodeBadRequest))
	})
}

func (s *ReservationsSuite) TestEndTimeWrapsMidnight() {
	r, err := s.svc.Book(context.Background(), store.SpaceEventRoom, "2026-09-05", "23:30")
	s.Require().NoError(err)
	s.Equal("00:30", r.EndTime)
}

func (s *ReservationsSuite) TestCancel() {
	ctx := context.Background()

	r, err := s.svc.Book(ctx, store.SpacePool, "2026-09-05", "10:00")
	s.Require().NoError(err)
	keep, err := s.svc.Book(ctx, store.SpacePool, "2026-09-05", "12:00")
	s.Require().NoError(err)

	s.Run("removes exactly the cancelled reservation", func() {
		s.Require().NoError(s.svc.Cancel(ctx, r.ID))

		remaining, err := s.svc.List(ctx)
		s.Require().NoError(err)
		s.Require().Len(remaining, 1)
		s.Equal(keep.ID, remaining[0].ID)
	})

	s.Run("cancelling an unknown id is not found", func() {
		err := s.svc.Cancel(ctx, "missing")
		s.Require().Error(err)
		s.True(dErrors.Is(err, dErrors.CodeNotFound))
	})

	s.Run("the slot can be booked again", func() {
		_, err := s.svc.Book(ctx, store.SpacePool, "2026-09-05", "10:00")
		s.NoError(err)
	})
}
