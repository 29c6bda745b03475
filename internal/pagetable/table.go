package pagetable

import (
	"context"
	"errors"
	"fmt"

	"github.com/sigabrtio/gosoup/pagestore"
)

// StoreError reports a backing store failure during a residency change.
type StoreError struct {
	Op         string // "save" or "load"
	PageNumber uint64
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("page store %s of page %d failed: %v", e.Op, e.PageNumber, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Slot holds one resident page. The buffer is allocated lazily on first use
// and reused across evictions; it never shrinks.
type Slot[T any] struct {
	buf        []T
	used       int
	valid      bool
	pageNumber uint64
}

// PageNumber returns the number of the resident page.
func (s *Slot[T]) PageNumber() uint64 { return s.pageNumber }

// Used returns the number of populated items in the resident page.
func (s *Slot[T]) Used() int { return s.used }

// At returns a copy of the item at off. The caller guarantees off < Used().
func (s *Slot[T]) At(off uint64) T { return s.buf[off] }

// Set overwrites the item at off. The caller guarantees off < Used().
func (s *Slot[T]) Set(off uint64, item T) { s.buf[off] = item }

// Append writes item at the first free offset of the resident page. The
// caller guarantees the page is not full.
func (s *Slot[T]) Append(item T) {
	s.buf[s.used] = item
	s.used++
}

// Items returns the populated prefix of the resident page. The returned
// slice aliases the slot buffer.
func (s *Slot[T]) Items() []T { return s.buf[:s.used] }

// Table is a direct-mapped page table: at most one resident page per slot,
// placement decided purely by the page number's low bits.
//
// Table is not safe for concurrent use; gosoup.Vector serializes access.
type Table[T any] struct {
	tr    Translator
	store pagestore.Store[T]

	slots    []Slot[T]
	numPages uint64 // pages ever created, monotonic
}

// New returns an empty table. No slot buffers are allocated until pages
// become resident.
func New[T any](tr Translator, store pagestore.Store[T]) *Table[T] {
	return &Table[T]{
		tr:    tr,
		store: store,
		slots: make([]Slot[T], tr.TableSize()),
	}
}

// Translator returns the table's address translator.
func (t *Table[T]) Translator() Translator { return t.tr }

// NumPages returns the number of pages ever created.
func (t *Table[T]) NumPages() uint64 { return t.numPages }

// IsResident reports whether pageNumber currently occupies its slot.
func (t *Table[T]) IsResident(pageNumber uint64) bool {
	s := &t.slots[pageNumber&t.tr.slotMask]
	return s.valid && s.pageNumber == pageNumber
}

// ResidentPages returns the number of valid slots.
func (t *Table[T]) ResidentPages() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].valid {
			n++
		}
	}
	return n
}

// EnsureResident makes pageNumber resident in its slot and returns the slot.
// If the slot holds a different page, that page is saved first; eviction
// failure aborts the operation and leaves the old occupant in place. A page
// seen for the first time is allocated empty, an existing one is loaded from
// the store.
//
// Evicted is true when a save was performed.
func (t *Table[T]) EnsureResident(ctx context.Context, pageNumber uint64) (slot *Slot[T], evicted bool, err error) {
	s := &t.slots[pageNumber&t.tr.slotMask]

	if s.valid && s.pageNumber == pageNumber {
		return s, false, nil
	}

	if s.valid {
		if err := t.store.Save(ctx, s.pageNumber, s.buf[:s.used]); err != nil {
			return nil, false, &StoreError{Op: "save", PageNumber: s.pageNumber, Err: err}
		}
		evicted = true
	}

	if s.buf == nil {
		s.buf = make([]T, t.tr.pageSize)
	}

	if pageNumber < t.numPages {
		items, err := t.store.Load(ctx, pageNumber)
		if err != nil {
			// The eviction above already happened; mark the slot empty so a
			// retry does not save stale data under the old page number.
			s.valid = false
			s.used = 0
			return nil, evicted, &StoreError{Op: "load", PageNumber: pageNumber, Err: err}
		}
		if uint64(len(items)) > t.tr.pageSize {
			s.valid = false
			s.used = 0
			return nil, evicted, &StoreError{
				Op:         "load",
				PageNumber: pageNumber,
				Err:        fmt.Errorf("store returned %d items for a %d item page", len(items), t.tr.pageSize),
			}
		}
		copy(s.buf, items)
		s.used = len(items)
	} else {
		s.used = 0
		t.numPages = pageNumber + 1
	}

	s.valid = true
	s.pageNumber = pageNumber
	return s, evicted, nil
}

// FlushAll saves every resident page. Failures do not stop the sweep; the
// joined error is returned.
func (t *Table[T]) FlushAll(ctx context.Context) error {
	var errs []error

	for i := range t.slots {
		s := &t.slots[i]
		if !s.valid {
			continue
		}
		if err := t.store.Save(ctx, s.pageNumber, s.buf[:s.used]); err != nil {
			errs = append(errs, &StoreError{Op: "save", PageNumber: s.pageNumber, Err: err})
		}
	}

	return errors.Join(errs...)
}

// Reset invalidates every slot and forgets all pages. Buffers are released.
func (t *Table[T]) Reset() {
	t.slots = make([]Slot[T], t.tr.TableSize())
	t.numPages = 0
}
