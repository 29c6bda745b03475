package pagestore

import (
	"context"
	"os"
)

// ErrNotFound is returned by Load when no page has been saved under the
// requested page number.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store persists evicted vector pages and retrieves them on demand.
//
// Save may be called multiple times for the same page number, each time with
// the page's up-to-date contents; the last write wins. Load is only invoked
// for page numbers that were previously saved — a vector never loads a page
// it has not evicted at least once.
type Store[T any] interface {
	// Save persists the page under pageNumber. The items slice is only
	// valid for the duration of the call; implementations that retain the
	// data must copy it.
	Save(ctx context.Context, pageNumber uint64, items []T) error

	// Load retrieves the most recently saved contents for pageNumber.
	// The returned length must equal the length passed to the last Save
	// for that page number.
	Load(ctx context.Context, pageNumber uint64) ([]T, error)
}
