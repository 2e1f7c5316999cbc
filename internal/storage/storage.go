// Package storage provides the key-value substrate the typed store persists
// into. One key holds one JSON document; writes replace the whole document.
// Backends are interchangeable: memory for tests, file for a single local
// profile, redis or postgres when the portal is deployed against shared
// infrastructure.
package storage

import "context"

//go:generate mockgen -source=storage.go -destination=mocks/mocks.go -package=mocks KV

// KV is the persistence substrate contract. Read reports absence through the
// second return value rather than an error; absent keys are an expected state.
type KV interface {
	Read(ctx context.Context, key string) (value []byte, ok bool, err error)
	Write(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
