package gosoup

import (
	"context"
	"sync"
	"time"
	"unsafe"

	"github.com/sigabrtio/gosoup/internal/pagetable"
	"github.com/sigabrtio/gosoup/pagestore"
)

// Vector is an append-only, index-addressable vector backed by a page store.
// Only 2^indexBits pages are ever held in memory; everything else lives in
// the backing store and is faulted back in on access.
//
// Vector is safe for concurrent use; all operations serialize on an internal
// mutex because any access may change page residency.
type Vector[T any] struct {
	mu    sync.Mutex
	table *pagetable.Table[T]
	store pagestore.Store[T]

	size   uint64 // total items appended
	closed bool

	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty vector on top of the given backing store.
//
// offsetBits fixes the page size (2^offsetBits items per page) and indexBits
// fixes the page table size (2^indexBits resident pages). Both must be
// positive and their sum must stay below the index width.
func New[T any](store pagestore.Store[T], offsetBits, indexBits uint, optFns ...Option) (*Vector[T], error) {
	opts := applyOptions(optFns)

	tr, err := pagetable.NewTranslator(offsetBits, indexBits)
	if err != nil {
		return nil, &ErrInvalidGeometry{OffsetBits: offsetBits, IndexBits: indexBits, cause: err}
	}

	return &Vector[T]{
		table:   pagetable.New(tr, store),
		store:   store,
		logger:  opts.logger,
		metrics: opts.metricsCollector,
	}, nil
}

// Append adds item at index Len(). On a slot conflict the current occupant
// is written back first; if that write fails the append is aborted and the
// vector is unchanged.
func (v *Vector[T]) Append(ctx context.Context, item T) error {
	start := time.Now()

	v.mu.Lock()
	idx := v.size
	err := v.append(ctx, item)
	v.mu.Unlock()

	v.metrics.RecordAppend(time.Since(start), err)
	v.logger.LogAppend(ctx, idx, err)
	return err
}

func (v *Vector[T]) append(ctx context.Context, item T) error {
	if v.closed {
		return ErrClosed
	}

	pageNumber, _, _ := v.table.Translator().Translate(v.size)

	slot, err := v.ensureResident(ctx, pageNumber)
	if err != nil {
		return err
	}

	slot.Append(item)
	v.size++
	return nil
}

// At returns a copy of the item at idx. Faulting the owning page back in may
// evict another page.
func (v *Vector[T]) At(ctx context.Context, idx uint64) (T, error) {
	start := time.Now()

	v.mu.Lock()
	item, err := v.at(ctx, idx)
	v.mu.Unlock()

	v.metrics.RecordRead(time.Since(start), err)
	v.logger.LogRead(ctx, idx, err)
	return item, err
}

func (v *Vector[T]) at(ctx context.Context, idx uint64) (T, error) {
	var zero T

	if v.closed {
		return zero, ErrClosed
	}
	if idx >= v.size {
		return zero, &ErrIndexOutOfRange{Index: idx, Size: v.size}
	}

	pageNumber, pageOffset, _ := v.table.Translator().Translate(idx)

	slot, err := v.ensureResident(ctx, pageNumber)
	if err != nil {
		return zero, err
	}

	return slot.At(pageOffset), nil
}

// Set overwrites the item at idx. The index must already have been appended.
func (v *Vector[T]) Set(ctx context.Context, idx uint64, item T) error {
	start := time.Now()

	v.mu.Lock()
	err := v.set(ctx, idx, item)
	v.mu.Unlock()

	v.metrics.RecordAppend(time.Since(start), err)
	return err
}

func (v *Vector[T]) set(ctx context.Context, idx uint64, item T) error {
	if v.closed {
		return ErrClosed
	}
	if idx >= v.size {
		return &ErrIndexOutOfRange{Index: idx, Size: v.size}
	}

	pageNumber, pageOffset, _ := v.table.Translator().Translate(idx)

	slot, err := v.ensureResident(ctx, pageNumber)
	if err != nil {
		return err
	}

	slot.Set(pageOffset, item)
	return nil
}

// Partition returns the populated items of page pageNumber. The returned
// slice aliases the resident page buffer: it is valid until the next
// operation on the vector and must not be retained. Copy it if you need it
// to outlive the call site.
func (v *Vector[T]) Partition(ctx context.Context, pageNumber uint64) ([]T, error) {
	start := time.Now()

	v.mu.Lock()
	items, err := v.partition(ctx, pageNumber)
	v.mu.Unlock()

	v.metrics.RecordRead(time.Since(start), err)
	return items, err
}

func (v *Vector[T]) partition(ctx context.Context, pageNumber uint64) ([]T, error) {
	if v.closed {
		return nil, ErrClosed
	}

	numPartitions := v.numPartitions()
	if pageNumber >= numPartitions {
		return nil, &ErrPartitionOutOfRange{Partition: pageNumber, NumPartitions: numPartitions}
	}

	slot, err := v.ensureResident(ctx, pageNumber)
	if err != nil {
		return nil, err
	}

	return slot.Items(), nil
}

// ensureResident faults pageNumber in, recording evictions and loads.
// Callers hold v.mu.
func (v *Vector[T]) ensureResident(ctx context.Context, pageNumber uint64) (*pagetable.Slot[T], error) {
	loading := !v.table.IsResident(pageNumber) && pageNumber < v.table.NumPages()

	slot, evicted, err := v.table.EnsureResident(ctx, pageNumber)
	if evicted {
		v.metrics.RecordEviction(pageNumber)
		v.logger.LogEvict(ctx, pageNumber)
	}
	if err != nil {
		return nil, translateError(err)
	}
	if loading {
		v.metrics.RecordPageLoad(pageNumber)
	}

	return slot, nil
}

// Len returns the number of items appended so far.
func (v *Vector[T]) Len() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.size
}

// NumPartitions returns the number of pages the vector spans,
// ceil(Len() / PageSize).
func (v *Vector[T]) NumPartitions() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.numPartitions()
}

func (v *Vector[T]) numPartitions() uint64 {
	pageSize := v.table.Translator().PageSize()
	return (v.size + pageSize - 1) / pageSize
}

// PageSize returns the number of items per page.
func (v *Vector[T]) PageSize() uint64 {
	return v.table.Translator().PageSize()
}

// Bytes returns the total item storage footprint across memory and the
// backing store: pages ever created times the in-memory page size.
func (v *Vector[T]) Bytes() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()

	var item T
	return v.table.NumPages() * v.table.Translator().PageSize() * uint64(unsafe.Sizeof(item))
}

// Flush writes every resident page to the backing store. Residency is
// unchanged; the sweep continues past individual failures and the joined
// error is returned.
func (v *Vector[T]) Flush(ctx context.Context) error {
	start := time.Now()

	v.mu.Lock()
	var err error
	pages := 0
	if v.closed {
		err = ErrClosed
	} else {
		pages = v.table.ResidentPages()
		err = translateError(v.table.FlushAll(ctx))
	}
	v.mu.Unlock()

	v.metrics.RecordFlush(pages, time.Since(start), err)
	v.logger.LogFlush(ctx, pages, err)
	return err
}

// Move transfers the vector's pages and counters to a new vector and resets
// the receiver to an empty vector on the same backing store. The returned
// vector is the only owner of the previous contents.
func (v *Vector[T]) Move() *Vector[T] {
	v.mu.Lock()
	defer v.mu.Unlock()

	moved := &Vector[T]{
		table:   v.table,
		store:   v.store,
		size:    v.size,
		closed:  v.closed,
		logger:  v.logger,
		metrics: v.metrics,
	}

	v.table = pagetable.New(v.table.Translator(), v.store)
	v.size = 0

	return moved
}

// Close writes every resident page back to the store and releases the page
// table. The write-back is best-effort: failures are logged and returned,
// but the vector is closed regardless. Close is idempotent.
func (v *Vector[T]) Close(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return nil
	}

	err := translateError(v.table.FlushAll(ctx))
	v.logger.LogClose(ctx, err)

	v.table.Reset()
	v.closed = true
	return err
}
