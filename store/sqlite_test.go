package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stella3d/bloomer/store"
)

func testDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "filters.db")
}

func TestSQLiteRegistrySaveLoad(t *testing.T) {
	ctx := context.Background()
	reg, err := store.OpenSQLite(testDBPath(t))
	require.NoError(t, err)
	defer func() { _ = reg.Close() }()

	blob := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	id, err := reg.Save(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := reg.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, blob, got)
}

func TestSQLiteRegistryIDsMonotonic(t *testing.T) {
	ctx := context.Background()
	reg, err := store.OpenSQLite(testDBPath(t))
	require.NoError(t, err)
	defer func() { _ = reg.Close() }()

	var last int64
	for i := 0; i < 5; i++ {
		id, err := reg.Save(ctx, []byte{byte(i)})
		require.NoError(t, err)
		assert.Greater(t, id, last)
		last = id
	}
}

func TestSQLiteRegistryNotFound(t *testing.T) {
	ctx := context.Background()
	reg, err := store.OpenSQLite(testDBPath(t))
	require.NoError(t, err)
	defer func() { _ = reg.Close() }()

	_, err = reg.Load(ctx, 999)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSQLiteRegistrySurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := testDBPath(t)

	reg, err := store.OpenSQLite(path)
	require.NoError(t, err)

	blob := []byte("durable filter blob")
	id, err := reg.Save(ctx, blob)
	require.NoError(t, err)
	require.NoError(t, reg.Close())

	reopened, err := store.OpenSQLite(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, blob, got)
}
