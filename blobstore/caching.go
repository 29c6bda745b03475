package blobstore

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Caching wraps a Store and adds a read-through LRU cache over whole blobs.
// Useful in front of remote stores where a re-loaded page would otherwise
// pay a network round trip.
type Caching struct {
	inner Store
	cache *lruCache
}

// NewCaching creates a caching store with the given capacity in bytes.
// capacity defaults to 32 MiB if <= 0.
func NewCaching(inner Store, capacity int64) *Caching {
	if capacity <= 0 {
		capacity = 32 << 20
	}
	return &Caching{
		inner: inner,
		cache: newLRUCache(capacity),
	}
}

// Put writes through and updates the cache.
func (s *Caching) Put(ctx context.Context, name string, data []byte) error {
	if err := s.inner.Put(ctx, name, data); err != nil {
		s.cache.remove(name)
		return err
	}

	copied := make([]byte, len(data))
	copy(copied, data)
	s.cache.set(name, copied)
	return nil
}

// Get returns the cached blob or falls through to the inner store.
func (s *Caching) Get(ctx context.Context, name string) ([]byte, error) {
	if data, ok := s.cache.get(name); ok {
		copied := make([]byte, len(data))
		copy(copied, data)
		return copied, nil
	}

	data, err := s.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	copied := make([]byte, len(data))
	copy(copied, data)
	s.cache.set(name, copied)
	return data, nil
}

// Delete removes the blob and invalidates the cache entry.
func (s *Caching) Delete(ctx context.Context, name string) error {
	s.cache.remove(name)
	return s.inner.Delete(ctx, name)
}

// List passes through to the inner store.
func (s *Caching) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Preload warms the cache with the named blobs, fetching misses from the
// inner store in parallel. Missing blobs are skipped.
func (s *Caching) Preload(ctx context.Context, names ...string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for _, name := range names {
		if _, ok := s.cache.get(name); ok {
			continue
		}
		g.Go(func() error {
			data, err := s.inner.Get(ctx, name)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					return nil
				}
				return err
			}
			s.cache.set(name, data)
			return nil
		})
	}
	return g.Wait()
}

// CacheStats reports cache hit/miss counts.
func (s *Caching) CacheStats() (hits, misses int64) {
	return s.cache.hits.Load(), s.cache.misses.Load()
}
