// Package store exposes the portal's typed collections over a key-value
// substrate. Each collection lives under one key as a JSON document; reads
// parse the full document every time and writes replace it whole, so the
// substrate is the single source of truth and callers never observe live
// aliasing of persisted state.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"comunidad/internal/storage"
	"comunidad/pkg/platform/sentinel"
)

// Substrate keys. One record-collection document per key; the two session
// keys hold a single object or are absent.
const (
	KeyResident            = "resident"
	KeyAdministrator       = "administrator"
	KeyInvoices            = "invoices"
	KeyReservations        = "reservations"
	KeyVisitors            = "visitors"
	KeyAnnouncements       = "announcements"
	KeyBillingStatements   = "billing_statements"
	KeyMaintenanceProjects = "maintenance_projects"
)

var tracer trace.Tracer = otel.Tracer("comunidad/internal/store")

// Store is the typed accessor layer. It owns the schema: a payload that does
// not decode as its collection's shape fails closed with sentinel.ErrCorrupt
// instead of propagating garbage into the portal.
type Store struct {
	kv storage.KV
}

func New(kv storage.KV) *Store {
	return &Store{kv: kv}
}

// getObject reads a singular key. Absence maps to sentinel.ErrNotFound.
func getObject[T any](ctx context.Context, s *Store, key string) (T, error) {
	ctx, span := tracer.Start(ctx, "store.get "+key)
	defer span.End()

	var out T
	data, ok, err := s.kv.Read(ctx, key)
	if err != nil {
		return out, err
	}
	if !ok {
		return out, fmt.Errorf("%w: %s", sentinel.ErrNotFound, key)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("%w: %s: %v", sentinel.ErrCorrupt, key, err)
	}
	return out, nil
}

// getList reads a collection key. Absence maps to an empty list.
func getList[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	ctx, span := tracer.Start(ctx, "store.get "+key)
	defer span.End()

	data, ok, err := s.kv.Read(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", sentinel.ErrCorrupt, key, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func set(ctx context.Context, s *Store, key string, value any) error {
	ctx, span := tracer.Start(ctx, "store.set "+key)
	defer span.End()

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.kv.Write(ctx, key, data)
}

func (s *Store) Resident(ctx context.Context) (Resident, error) {
	return getObject[Resident](ctx, s, KeyResident)
}

func (s *Store) SetResident(ctx context.Context, r Resident) error {
	return set(ctx, s, KeyResident, r)
}

// ClearResident removes the resident session record and nothing else.
func (s *Store) ClearResident(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "store.clear "+KeyResident)
	defer span.End()
	return s.kv.Delete(ctx, KeyResident)
}

func (s *Store) AdminUser(ctx context.Context) (AdminUser, error) {
	return getObject[AdminUser](ctx, s, KeyAdministrator)
}

func (s *Store) SetAdminUser(ctx context.Context, a AdminUser) error {
	return set(ctx, s, KeyAdministrator, a)
}

func (s *Store) ClearAdminUser(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "store.clear "+KeyAdministrator)
	defer span.End()
	return s.kv.Delete(ctx, KeyAdministrator)
}

// Invoices is the pure read: absent means empty, never a bootstrap. Use
// BootstrapInvoices when the caller wants the first-read default records.
func (s *Store) Invoices(ctx context.Context) ([]Invoice, error) {
	return getList[Invoice](ctx, s, KeyInvoices)
}

func (s *Store) SetInvoices(ctx context.Context, invoices []Invoice) error {
	return set(ctx, s, KeyInvoices, invoices)
}

func (s *Store) Reservations(ctx context.Context) ([]Reservation, error) {
	return getList[Reservation](ctx, s, KeyReservations)
}

func (s *Store) SetReservations(ctx context.Context, reservations []Reservation) error {
	return set(ctx, s, KeyReservations, reservations)
}

func (s *Store) Visitors(ctx context.Context) ([]Visitor, error) {
	return getList[Visitor](ctx, s, KeyVisitors)
}

func (s *Store) SetVisitors(ctx context.Context, visitors []Visitor) error {
	return set(ctx, s, KeyVisitors, visitors)
}

func (s *Store) Announcements(ctx context.Context) ([]Announcement, error) {
	return getList[Announcement](ctx, s, KeyAnnouncements)
}

func (s *Store) SetAnnouncements(ctx context.Context, announcements []Announcement) error {
	return set(ctx, s, KeyAnnouncements, announcements)
}

func (s *Store) BillingStatements(ctx context.Context) ([]BillingStatement, error) {
	return getList[BillingStatement](ctx, s, KeyBillingStatements)
}

func (s *Store) SetBillingStatements(ctx context.Context, statements []BillingStatement) error {
	return set(ctx, s, KeyBillingStatements, statements)
}

func (s *Store) MaintenanceProjects(ctx context.Context) ([]MaintenanceProject, error) {
	return getList[MaintenanceProject](ctx, s, KeyMaintenanceProjects)
}

func (s *Store) SetMaintenanceProjects(ctx context.Context, projects []MaintenanceProject) error {
	return set(ctx, s, KeyMaintenanceProjects, projects)
}
