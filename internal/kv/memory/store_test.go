package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetGet(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, ok, err := s.Get(ctx, "categories")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "categories", "[]"))
	v, ok, err := s.Get(ctx, "categories")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)

	require.NoError(t, s.Set(ctx, "categories", `[{"id":"cat_x"}]`))
	v, _, _ = s.Get(ctx, "categories")
	assert.Equal(t, `[{"id":"cat_x"}]`, v)
	assert.Equal(t, 1, s.Len())
}

func TestStore_Remove(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.Set(ctx, "user", "{}"))
	require.NoError(t, s.Remove(ctx, "user"))
	require.NoError(t, s.Remove(ctx, "user"))

	_, ok, err := s.Get(ctx, "user")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Close(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Set(context.Background(), "k", "v"))
	require.NoError(t, s.Close())
	assert.Equal(t, 0, s.Len())
}
