// Package reservations books the shared amenities. Reservations run exactly
// one hour and a (space, date, start time) slot can be taken once; the
// conflict check happens here, before anything reaches the store.
package reservations

import (
	"context"
	"time"

	"github.com/google/uuid"

	"comunidad/internal/audit"
	"comunidad/internal/platform/metrics"
	"comunidad/internal/store"
	dErrors "comunidad/pkg/domain-errors"
)

const slotDuration = time.Hour

type Service struct {
	store   *store.Store
	metrics *metrics.Metrics
	audit   *audit.Publisher
}

func New(st *store.Store, m *metrics.Metrics, publisher *audit.Publisher) *Service {
	return &Service{store: st, metrics: m, audit: publisher}
}

func (s *Service) List(ctx context.Context) ([]store.Reservation, error) {
	reservations, err := s.store.Reservations(ctx)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "read reservations", err)
	}
	return reservations, nil
}

// Book reserves space on date at startTime (HH:MM). The end time is derived,
// never supplied by the caller.
func (s *Service) Book(ctx context.Context, space store.Space, date, startTime string) (store.Reservation, error) {
	if !space.Valid() {
		return store.Reservation{}, dErrors.New(dErrors.CodeBadRequest, "unknown space")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return store.Reservation{}, dErrors.New(dErrors.CodeBadRequest, "date must be YYYY-MM-DD")
	}
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return store.Reservation{}, dErrors.New(dErrors.CodeBadRequest, "start time must be HH:MM")
	}

	reservations, err := s.store.Reservations(ctx)
	if err != nil {
		return store.Reservation{}, dErrors.Wrap(dErrors.CodeInternal, "read reservations", err)
	}

	for _, r := range reservations {
		if r.Space == space && r.Date == date && r.StartTime == startTime {
			s.metrics.Reservations.WithLabelValues("conflict").Inc()
			return store.Reservation{}, dErrors.New(dErrors.CodeConflict, "slot already reserved")
		}
	}

	reservation := store.Reservation{
		ID:        uuid.NewString(),
		Space:     space,
		Date:      date,
		StartTime: startTime,
		EndTime:   start.Add(slotDuration).Format("15:04"),
	}
	if err := s.store.SetReservations(ctx, append(reservations, reservation)); err != nil {
		return store.Reservation{}, dErrors.Wrap(dErrors.CodeInternal, "persist reservations", err)
	}

	s.metrics.Reservations.WithLabelValues("booked").Inc()
	_ = s.audit.Emit(ctx, audit.Event{
		Action:  audit.ActionReservationBooked,
		Subject: string(space),
		Detail:  date + " " + startTime,
	})

	return reservation, nil
}

// Cancel removes one reservation by id. This is the portal's only deletion
// path besides logout.
func (s *Service) Cancel(ctx context.Context, id string) error {
	reservations, err := s.store.Reservations(ctx)
	if err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "read reservations", err)
	}

	remaining := reservations[:0:0]
	var cancelled *store.Reservation
	for _, r := range reservations {
		if r.ID == id {
			c := r
			cancelled = &c
			continue
		}
		remaining = append(remaining, r)
	}
	if cancelled == nil {
		return dErrors.New(dErrors.CodeNotFound, "reservation not found")
	}

	if err := s.store.SetReservations(ctx, remaining); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "persist reservations", err)
	}

	_ = s.audit.Emit(ctx, audit.Event{
		Action:  audit.ActionReservationCancel,
		Subject: string(cancelled.Space),
		Detail:  cancelled.Date + " " + cancelled.StartTime,
	})

	return nil
}
