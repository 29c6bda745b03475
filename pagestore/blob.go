package pagestore

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/sigabrtio/gosoup/blobstore"
	"github.com/sigabrtio/gosoup/codec"
)

// BlobOptions configures a Blob page store.
type BlobOptions struct {
	// Codec encodes pages to bytes. Defaults to codec.Default.
	Codec codec.Codec

	// Compression is applied to encoded pages. Defaults to CompressionNone.
	Compression Compression

	// Prefix is prepended to every blob name (e.g. "vectors/ids/").
	Prefix string
}

// Blob persists pages as encoded, optionally compressed byte blobs through a
// byte-level blobstore.Store. One page maps to one blob.
type Blob[T any] struct {
	blobs       blobstore.Store
	codec       codec.Codec
	compression Compression
	prefix      string
}

// NewBlob creates a Blob page store on top of the given blob store.
func NewBlob[T any](blobs blobstore.Store, optFns ...func(o *BlobOptions)) *Blob[T] {
	opts := BlobOptions{
		Codec:       codec.Default,
		Compression: CompressionNone,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Codec == nil {
		opts.Codec = codec.Default
	}

	return &Blob[T]{
		blobs:       blobs,
		codec:       opts.Codec,
		compression: opts.Compression,
		prefix:      opts.Prefix,
	}
}

func (b *Blob[T]) name(pageNumber uint64) string {
	return path.Join(b.prefix, fmt.Sprintf("page-%012d", pageNumber))
}

// Save encodes, compresses and writes the page.
func (b *Blob[T]) Save(ctx context.Context, pageNumber uint64, items []T) error {
	encoded, err := b.codec.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode page %d: %w", pageNumber, err)
	}

	block, err := compressBlock(encoded, b.compression)
	if err != nil {
		return fmt.Errorf("compress page %d: %w", pageNumber, err)
	}

	return b.blobs.Put(ctx, b.name(pageNumber), block)
}

// Load reads, decompresses and decodes the page.
func (b *Blob[T]) Load(ctx context.Context, pageNumber uint64) ([]T, error) {
	block, err := b.blobs.Get(ctx, b.name(pageNumber))
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return nil, fmt.Errorf("page %d: %w", pageNumber, ErrNotFound)
		}
		return nil, err
	}

	encoded, err := decompressBlock(block, b.compression)
	if err != nil {
		return nil, fmt.Errorf("decompress page %d: %w", pageNumber, err)
	}

	var items []T
	if err := b.codec.Unmarshal(encoded, &items); err != nil {
		return nil, fmt.Errorf("decode page %d: %w", pageNumber, err)
	}
	return items, nil
}
