package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_PutGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	require.NoError(t, store.Put(ctx, "a", []byte("hello")))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)

	// Mutating the returned slice must not affect the store.
	got[0] = 'X'
	got2, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got2)
}

func TestMemory_GetMissing(t *testing.T) {
	store := NewMemory()

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_Overwrite(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	require.NoError(t, store.Put(ctx, "a", []byte("v1")))
	require.NoError(t, store.Put(ctx, "a", []byte("v2")))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
	assert.Equal(t, 1, store.Len())
}

func TestMemory_DeleteAndList(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	require.NoError(t, store.Put(ctx, "pages/1", []byte("a")))
	require.NoError(t, store.Put(ctx, "pages/2", []byte("b")))
	require.NoError(t, store.Put(ctx, "other/3", []byte("c")))

	names, err := store.List(ctx, "pages/")
	require.NoError(t, err)
	assert.Equal(t, []string{"pages/1", "pages/2"}, names)

	require.NoError(t, store.Delete(ctx, "pages/1"))
	require.NoError(t, store.Delete(ctx, "pages/1")) // idempotent

	names, err = store.List(ctx, "pages/")
	require.NoError(t, err)
	assert.Equal(t, []string{"pages/2"}, names)
}
