// Package store is the client's durable local storage: serialized
// sessions and shopping carts under fixed keys. Writes are plain
// overwrites with no TTL; the last writer wins.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no value.
var ErrNotFound = errors.New("store: key not found")

// Store persists small JSON blobs by key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
