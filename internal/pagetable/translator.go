package pagetable

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrGeometry is returned when the page geometry is unrepresentable.
var ErrGeometry = errors.New("offset and index bits must be positive and sum to less than the index width")

// Translator maps a flat element index to (page number, page offset, slot
// index) using pure bit arithmetic. It is immutable after construction.
type Translator struct {
	offsetBits uint
	indexBits  uint

	pageSize  uint64 // items per page, 1 << offsetBits
	tableSize uint64 // resident slots, 1 << indexBits

	offsetMask uint64
	slotMask   uint64
}

// NewTranslator validates the geometry and precomputes the masks.
// offsetBits fixes the page size (2^offsetBits items); indexBits fixes the
// number of simultaneously resident pages (2^indexBits slots).
func NewTranslator(offsetBits, indexBits uint) (Translator, error) {
	if offsetBits == 0 || indexBits == 0 || offsetBits+indexBits >= uint(bits.UintSize) {
		return Translator{}, fmt.Errorf("offset_bits=%d index_bits=%d: %w", offsetBits, indexBits, ErrGeometry)
	}

	pageSize := uint64(1) << offsetBits
	tableSize := uint64(1) << indexBits

	return Translator{
		offsetBits: offsetBits,
		indexBits:  indexBits,
		pageSize:   pageSize,
		tableSize:  tableSize,
		offsetMask: pageSize - 1,
		slotMask:   tableSize - 1,
	}, nil
}

// Translate splits idx into its page number, the offset inside that page,
// and the slot the page is direct-mapped to. Pure and total.
func (t Translator) Translate(idx uint64) (pageNumber, pageOffset, slotIndex uint64) {
	pageNumber = idx >> t.offsetBits
	pageOffset = idx & t.offsetMask
	slotIndex = pageNumber & t.slotMask
	return pageNumber, pageOffset, slotIndex
}

// PageSize returns the number of items per page.
func (t Translator) PageSize() uint64 { return t.pageSize }

// TableSize returns the number of slots.
func (t Translator) TableSize() uint64 { return t.tableSize }

// OffsetBits returns the configured page offset width.
func (t Translator) OffsetBits() uint { return t.offsetBits }

// IndexBits returns the configured slot index width.
func (t Translator) IndexBits() uint { return t.indexBits }
