package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stella3d/bloomer/store"
)

func TestMemoryRegistrySaveLoad(t *testing.T) {
	ctx := context.Background()
	reg := store.NewMemoryRegistry()
	defer func() { _ = reg.Close() }()

	id, err := reg.Save(ctx, []byte("blob-one"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	id2, err := reg.Save(ctx, []byte("blob-two"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), id2)

	got, err := reg.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []byte("blob-one"), got)

	got, err = reg.Load(ctx, id2)
	require.NoError(t, err)
	assert.Equal(t, []byte("blob-two"), got)
}

func TestMemoryRegistryNotFound(t *testing.T) {
	ctx := context.Background()
	reg := store.NewMemoryRegistry()
	defer func() { _ = reg.Close() }()

	_, err := reg.Load(ctx, 42)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestMemoryRegistryCopiesBlobs(t *testing.T) {
	ctx := context.Background()
	reg := store.NewMemoryRegistry()
	defer func() { _ = reg.Close() }()

	blob := []byte{0x01, 0x02, 0x03}
	id, err := reg.Save(ctx, blob)
	require.NoError(t, err)

	// Mutating the caller's slice must not reach stored state.
	blob[0] = 0xFF
	got, err := reg.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, got)

	// Mutating a loaded slice must not corrupt later loads.
	got[1] = 0xFF
	again, err := reg.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, again)
}

func TestMemoryRegistryClosed(t *testing.T) {
	ctx := context.Background()
	reg := store.NewMemoryRegistry()

	id, err := reg.Save(ctx, []byte("x"))
	require.NoError(t, err)
	require.NoError(t, reg.Close())

	_, err = reg.Load(ctx, id)
	assert.ErrorIs(t, err, store.ErrClosed)

	_, err = reg.Save(ctx, []byte("y"))
	assert.ErrorIs(t, err, store.ErrWriteFailure)
}
