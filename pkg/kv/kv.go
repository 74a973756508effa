// Package kv provides the narrow key-value slot the cart store persists
// snapshots through. Backends exist for memory, the local filesystem and
// Redis; callers see the same three operations either way.
package kv

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("kv: key not found")

type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
