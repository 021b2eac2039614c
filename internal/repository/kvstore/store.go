package kvstore

import (
	"context"
	"errors"

	"github.com/medicore/hospital-api/internal/model"
)

// ErrNotFound is returned by Get when no record exists under the key.
var ErrNotFound = errors.New("key not found")

// Store is a namespaced key-value view over the persistence layer. Keys are
// formatted <prefix><id>, e.g. patient:1718000000000-a1b2c3d4e.
//
// Writes are durable immediately and last-write-wins: there is no version
// column and no conditional write, so a concurrent read-modify-write can
// silently clobber an earlier update. Callers must not depend on the order
// of GetByPrefix results.
type Store interface {
	Get(ctx context.Context, key string) (model.Record, error)
	Set(ctx context.Context, key string, value model.Record) error
	Delete(ctx context.Context, key string) error
	GetByPrefix(ctx context.Context, prefix string) ([]model.Record, error)
}
