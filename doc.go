// Package gosoup provides an append-only, index-addressable vector that keeps
// only a bounded working set of pages in memory and spills everything else to
// a pluggable backing store.
//
// The vector is parameterized by two bit widths: offsetBits fixes the page
// size (2^offsetBits items) and indexBits fixes the number of simultaneously
// resident pages (2^indexBits). Address translation is pure bit arithmetic
// and the page table is direct-mapped: each page has exactly one slot it can
// live in, so a conflicting access evicts the current occupant (saving it to
// the backing store) before the requested page is loaded or allocated.
//
// Backing stores implement pagestore.Store. The pagestore package ships an
// in-memory store and a blob-backed store that composes a codec, optional
// block compression and any blobstore.Store (local disk, S3, MinIO,
// DynamoDB).
//
//	store := pagestore.NewMemory[int]()
//	vec, err := gosoup.New[int](store, 12, 4) // 4096-item pages, 16 resident
//	if err != nil { ... }
//	defer vec.Close(ctx)
//
//	if err := vec.Append(ctx, 42); err != nil { ... }
//	item, err := vec.At(ctx, 0)
package gosoup
