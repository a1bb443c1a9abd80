// Package metadata is a small key/value store in the local database. It keeps
// the PIN salt and verifier used to seal a remembered session.
package metadata

import (
	"context"
)

// Well-known keys.
const (
	KeySalt     = "pin_salt"
	KeyVerifier = "pin_verifier"
)

// Repository stores opaque byte values by key.
type Repository interface {
	// Get returns common.ErrorNotFound when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
