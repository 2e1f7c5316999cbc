package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Storage backends and the typed
// store return these (optionally wrapped) so services can translate them into
// domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: record does not exist under its key
// - ErrConflict: a write would collide with an existing record
// - ErrCorrupt: persisted payload exists but does not decode as its schema
// - ErrInvalidState: record in wrong state for requested operation
// - ErrUnavailable: backend temporarily unreachable
//
// For validation errors (bad input, missing fields), use pkg/domain-errors.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrCorrupt      = errors.New("corrupt record")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
