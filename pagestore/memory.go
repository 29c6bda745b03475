package pagestore

import (
	"context"
	"sync"
)

// Memory is an in-memory Store implementation.
// It keeps every saved page in a map and is safe for concurrent use,
// though the vector itself is single-threaded.
type Memory[T any] struct {
	mu    sync.RWMutex
	pages map[uint64][]T
}

// NewMemory creates a new in-memory page store.
func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{
		pages: make(map[uint64][]T),
	}
}

// Save stores a copy of the page.
func (m *Memory[T]) Save(_ context.Context, pageNumber uint64, items []T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]T, len(items))
	copy(copied, items)
	m.pages[pageNumber] = copied
	return nil
}

// Load returns a copy of the saved page, or ErrNotFound.
func (m *Memory[T]) Load(_ context.Context, pageNumber uint64) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items, ok := m.pages[pageNumber]
	if !ok {
		return nil, ErrNotFound
	}

	copied := make([]T, len(items))
	copy(copied, items)
	return copied, nil
}

// Len returns the number of pages currently held by the store.
func (m *Memory[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.pages)
}

// Page returns the saved contents for pageNumber without copying.
// Intended for test assertions.
func (m *Memory[T]) Page(pageNumber uint64) ([]T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items, ok := m.pages[pageNumber]
	return items, ok
}
