// Package session owns resident and administrator session lifecycle. There is
// no credential verification anywhere in the portal: presenting a structurally
// valid RUT is what "logging in" means, and the admin password is carried as
// presentational data only.
package session

import (
	"context"
	"errors"

	"comunidad/internal/audit"
	"comunidad/internal/platform/metrics"
	"comunidad/internal/rut"
	"comunidad/internal/store"
	dErrors "comunidad/pkg/domain-errors"
	"comunidad/pkg/platform/sentinel"
)

// LoginRequest carries resident login input. Device is a display label parsed
// from the client's user agent; it only feeds the audit trail.
type LoginRequest struct {
	Rut            string
	Address        string
	BuildingNumber string
	Device         string
}

// AdminLoginRequest carries administrator login input.
type AdminLoginRequest struct {
	Rut      string
	Address  string
	Password string
	Device   string
}

type Service struct {
	store   *store.Store
	metrics *metrics.Metrics
	audit   *audit.Publisher
}

func New(st *store.Store, m *metrics.Metrics, publisher *audit.Publisher) *Service {
	return &Service{store: st, metrics: m, audit: publisher}
}

// Login validates the RUT, canonicalizes it, and persists the resident
// session record. Exactly one resident is stored at a time; a second login
// replaces the first.
func (s *Service) Login(ctx context.Context, req LoginRequest) (store.Resident, error) {
	if !rut.Validate(req.Rut) {
		return store.Resident{}, dErrors.New(dErrors.CodeBadRequest, "invalid rut")
	}
	if req.Address == "" || req.BuildingNumber == "" {
		return store.Resident{}, dErrors.New(dErrors.CodeBadRequest, "address and building number are required")
	}

	resident := store.Resident{
		Rut:            rut.Format(req.Rut),
		Address:        req.Address,
		BuildingNumber: req.BuildingNumber,
	}
	if err := s.store.SetResident(ctx, resident); err != nil {
		return store.Resident{}, dErrors.Wrap(dErrors.CodeInternal, "persist resident", err)
	}

	s.metrics.Logins.Inc()
	_ = s.audit.Emit(ctx, audit.Event{
		Rut:    resident.Rut,
		Action: audit.ActionLogin,
		Device: req.Device,
	})

	return resident, nil
}

// Current returns the logged-in resident, or CodeUnauthorized when no session
// record exists.
func (s *Service) Current(ctx context.Context) (store.Resident, error) {
	resident, err := s.store.Resident(ctx)
	if errors.Is(err, sentinel.ErrNotFound) {
		return store.Resident{}, dErrors.New(dErrors.CodeUnauthorized, "no resident session")
	}
	if err != nil {
		return store.Resident{}, dErrors.Wrap(dErrors.CodeInternal, "read resident", err)
	}
	return resident, nil
}

// Logout clears exactly the resident session record; every other collection
// is left untouched.
func (s *Service) Logout(ctx context.Context) error {
	resident, err := s.store.Resident(ctx)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(dErrors.CodeInternal, "read resident", err)
	}
	if err := s.store.ClearResident(ctx); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "clear resident", err)
	}
	_ = s.audit.Emit(ctx, audit.Event{Rut: resident.Rut, Action: audit.ActionLogout})
	return nil
}

// LoginAdmin persists the administrator session record. The password is
// stored as supplied; nothing verifies it.
func (s *Service) LoginAdmin(ctx context.Context, req AdminLoginRequest) (store.AdminUser, error) {
	if !rut.Validate(req.Rut) {
		return store.AdminUser{}, dErrors.New(dErrors.CodeBadRequest, "invalid rut")
	}

	admin := store.AdminUser{
		Rut:      rut.Format(req.Rut),
		Address:  req.Address,
		Password: req.Password,
	}
	if err := s.store.SetAdminUser(ctx, admin); err != nil {
		return store.AdminUser{}, dErrors.Wrap(dErrors.CodeInternal, "persist admin", err)
	}

	_ = s.audit.Emit(ctx, audit.Event{
		Rut:    admin.Rut,
		Action: audit.ActionAdminLogin,
		Device: req.Device,
	})

	return admin, nil
}

// CurrentAdmin returns the logged-in administrator, or CodeUnauthorized when
// no session record exists.
func (s *Service) CurrentAdmin(ctx context.Context) (store.AdminUser, error) {
	admin, err := s.store.AdminUser(ctx)
	if errors.Is(err, sentinel.ErrNotFound) {
		return store.AdminUser{}, dErrors.New(dErrors.CodeUnauthorized, "no admin session")
	}
	if err != nil {
		return store.AdminUser{}, dErrors.Wrap(dErrors.CodeInternal, "read admin", err)
	}
	return admin, nil
}

// LogoutAdmin clears exactly the administrator session record.
func (s *Service) LogoutAdmin(ctx context.Context) error {
	admin, err := s.store.AdminUser(ctx)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(dErrors.CodeInternal, "read admin", err)
	}
	if err := s.store.ClearAdminUser(ctx); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "clear admin", err)
	}
	_ = s.audit.Emit(ctx, audit.Event{Rut: admin.Rut, Action: audit.ActionAdminLogout})
	return nil
}
