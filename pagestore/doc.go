// Package pagestore defines the persistence contract used by gosoup.Vector
// to offload evicted pages, together with the built-in implementations.
//
// A Store receives full pages on eviction and must hand them back verbatim
// on a later Load: the returned slice length must equal the number of items
// the vector had written to that page when it was last saved. A length
// mismatch is a contract violation and produces undefined read results.
//
// # Built-in Implementations
//
//   - Memory: in-memory map, useful for tests and small data sets
//   - Blob: persists pages as encoded (optionally compressed) byte blobs
//     through any blobstore.Store (local disk, MinIO, S3, DynamoDB)
//
// Stores are never retried internally; retry policy belongs to the
// implementation (or a wrapping decorator).
package pagestore
