package app

import "context"

// SnapshotStore is the durable slot cart snapshots are written to. Any
// pkg/kv backend satisfies it.
type SnapshotStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
