// Package blobstore provides the byte-level storage abstraction used by
// pagestore.Blob to persist encoded vector pages.
//
// Store is the interface for reading and writing named blobs. One evicted
// page maps to one blob, so values are small and bounded; the interface is
// therefore whole-value (Put/Get) rather than streaming.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - Memory: in-memory map for tests
//   - Local: local filesystem with atomic writes and directory sync
//   - minio.Store: MinIO and S3-compatible object storage
//   - s3.Store: Amazon S3 with managed uploads
//   - dynamo.Store: DynamoDB item-per-page storage for small pages
//
// # Decorators
//
//   - Throttled: rate-limits Put/Get throughput so swap traffic cannot
//     saturate a shared link
//   - Caching: read-through LRU cache for remote stores
package blobstore
