package blobstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore wraps Memory and counts inner Get calls.
type countingStore struct {
	*Memory
	mu   sync.Mutex
	gets int
}

func (c *countingStore) Get(ctx context.Context, name string) ([]byte, error) {
	c.mu.Lock()
	c.gets++
	c.mu.Unlock()
	return c.Memory.Get(ctx, name)
}

func (c *countingStore) getCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gets
}

func TestCaching_ReadThrough(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{Memory: NewMemory()}
	require.NoError(t, inner.Put(ctx, "a", []byte("hello")))

	store := NewCaching(inner, 1<<20)

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
	assert.Equal(t, 1, inner.getCount())

	// Second read is served from cache.
	got, err = store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
	assert.Equal(t, 1, inner.getCount())

	hits, misses := store.CacheStats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestCaching_PutUpdatesCache(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{Memory: NewMemory()}
	store := NewCaching(inner, 1<<20)

	require.NoError(t, store.Put(ctx, "a", []byte("v1")))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)
	assert.Equal(t, 0, inner.getCount()) // warmed by Put

	require.NoError(t, store.Put(ctx, "a", []byte("v2")))
	got, err = store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestCaching_DeleteInvalidates(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{Memory: NewMemory()}
	store := NewCaching(inner, 1<<20)

	require.NoError(t, store.Put(ctx, "a", []byte("v1")))
	require.NoError(t, store.Delete(ctx, "a"))

	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCaching_EvictsAtCapacity(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{Memory: NewMemory()}
	store := NewCaching(inner, 8) // two 4-byte blobs max

	require.NoError(t, store.Put(ctx, "a", []byte("aaaa")))
	require.NoError(t, store.Put(ctx, "b", []byte("bbbb")))
	require.NoError(t, store.Put(ctx, "c", []byte("cccc"))) // evicts "a"

	_, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.getCount()) // had to fall through
}

func TestCaching_Preload(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{Memory: NewMemory()}
	require.NoError(t, inner.Put(ctx, "a", []byte("1")))
	require.NoError(t, inner.Put(ctx, "b", []byte("2")))

	store := NewCaching(inner, 1<<20)
	require.NoError(t, store.Preload(ctx, "a", "b", "missing"))

	before := inner.getCount()
	_, err := store.Get(ctx, "a")
	require.NoError(t, err)
	_, err = store.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, before, inner.getCount())
}
