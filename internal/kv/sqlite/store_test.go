package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data", "directory.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() { _ = store.Close() })

	return store, path
}

func TestNewStore_EmptyPath(t *testing.T) {
	_, err := NewStore("")
	assert.Error(t, err)
}

func TestStore_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	store, path := setupTestStore(t)
	assert.Equal(t, path, store.Path())

	_, ok, err := store.Get(ctx, "banners")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "banners", `[{"id":"1"}]`))
	require.NoError(t, store.Set(ctx, "banners", `[{"id":"2"}]`))

	v, ok, err := store.Get(ctx, "banners")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"2"}]`, v)

	require.NoError(t, store.Remove(ctx, "banners"))
	_, ok, err = store.Get(ctx, "banners")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "directory.db")

	store, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "user", `{"id":"1"}`))
	require.NoError(t, store.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, "user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":"1"}`, v)
}
