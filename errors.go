package gosoup

import (
	"errors"
	"fmt"

	"github.com/sigabrtio/gosoup/internal/pagetable"
)

var (
	// ErrClosed is returned by operations on a closed or moved-from vector
	// after Close.
	ErrClosed = errors.New("vector is closed")
)

// ErrInvalidGeometry indicates an unusable offsetBits/indexBits combination.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidGeometry struct {
	OffsetBits uint
	IndexBits  uint
	cause      error
}

func (e *ErrInvalidGeometry) Error() string {
	return fmt.Sprintf("invalid geometry: offset_bits=%d index_bits=%d", e.OffsetBits, e.IndexBits)
}

func (e *ErrInvalidGeometry) Unwrap() error { return e.cause }

// ErrIndexOutOfRange indicates an element access past the end of the vector.
type ErrIndexOutOfRange struct {
	Index uint64
	Size  uint64
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range for size %d", e.Index, e.Size)
}

// ErrPartitionOutOfRange indicates a partition access past the last page.
type ErrPartitionOutOfRange struct {
	Partition     uint64
	NumPartitions uint64
}

func (e *ErrPartitionOutOfRange) Error() string {
	return fmt.Sprintf("partition %d out of range for %d partitions", e.Partition, e.NumPartitions)
}

// ErrBackingStore indicates a save or load failure in the backing store. The
// operation that triggered the page fault is aborted; the vector itself stays
// usable.
//
// The store's original error can be accessed via errors.Unwrap.
type ErrBackingStore struct {
	Op         string // "save" or "load"
	PageNumber uint64
	cause      error
}

func (e *ErrBackingStore) Error() string {
	return fmt.Sprintf("backing store %s of page %d failed", e.Op, e.PageNumber)
}

func (e *ErrBackingStore) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var se *pagetable.StoreError
	if errors.As(err, &se) {
		return &ErrBackingStore{Op: se.Op, PageNumber: se.PageNumber, cause: err}
	}

	return err
}
