// internal/storage/storage.go
package storage

import (
	"context"
	"errors"
)

// ErrNoSnapshot is returned by Load when no snapshot exists for a key.
var ErrNoSnapshot = errors.New("no snapshot for key")

// Snapshots persists full serialized store states keyed by a storage
// key, last write wins. Writes are best-effort from the stores' point of
// view: a failed Save never rolls back in-memory state.
type Snapshots interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
