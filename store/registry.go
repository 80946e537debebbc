// Package store persists serialized bloom filters addressed by integer id
// and exposes the create/query service surface on top of the bloomer core.
package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no filter exists under the requested id.
	ErrNotFound = errors.New("store: filter id not found")

	// ErrWriteFailure is returned when a filter blob could not be persisted.
	ErrWriteFailure = errors.New("store: failed to persist filter")

	// ErrClosed is returned when a registry is used after Close.
	ErrClosed = errors.New("store: registry is closed")
)

// Registry is the persistence boundary for serialized filters. It treats
// blobs as opaque bytes; ids are allocated by the registry on Save and are
// immutable once written — there is no update or delete.
type Registry interface {
	// Save persists blob and returns the id allocated for it.
	Save(ctx context.Context, blob []byte) (int64, error)

	// Load returns the blob stored under id, or ErrNotFound.
	Load(ctx context.Context, id int64) ([]byte, error)

	// Close releases any resources held by the registry.
	Close() error
}
