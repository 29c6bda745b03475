// Package pagetable implements the address translation and direct-mapped
// residency bookkeeping behind gosoup.Vector.
//
// A flat element index splits into (page number, page offset); the page
// number maps to exactly one slot (pageNumber mod tableSize). Every
// residency change funnels through Table.EnsureResident, which performs the
// evict-then-load-or-allocate dance against the backing page store.
package pagetable
