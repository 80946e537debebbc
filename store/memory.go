package store

import (
	"context"
	"fmt"
	"sync"
)

// Compile-time interface check.
var _ Registry = (*MemoryRegistry)(nil)

// MemoryRegistry keeps filter blobs in process memory. It mirrors the
// SQLiteRegistry contract (dense positive ids starting at 1) and is intended
// for tests and short-lived embedded use.
type MemoryRegistry struct {
	mu     sync.RWMutex
	blobs  map[int64][]byte
	nextID int64
	closed bool
}

// NewMemoryRegistry creates an empty in-memory registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		blobs:  make(map[int64][]byte),
		nextID: 1,
	}
}

// Save stores a copy of blob and returns its id.
func (r *MemoryRegistry) Save(ctx context.Context, blob []byte) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return 0, fmt.Errorf("%w: %v", ErrWriteFailure, ErrClosed)
	}

	buf := make([]byte, len(blob))
	copy(buf, blob)

	id := r.nextID
	r.nextID++
	r.blobs[id] = buf
	return id, nil
}

// Load returns a copy of the blob stored under id.
func (r *MemoryRegistry) Load(ctx context.Context, id int64) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, ErrClosed
	}

	blob, ok := r.blobs[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

// Close marks the registry closed; subsequent calls fail.
func (r *MemoryRegistry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.blobs = nil
	return nil
}
