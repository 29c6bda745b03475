package pagestore

import (
	"context"
	"testing"

	"github.com/sigabrtio/gosoup/blobstore"
	"github.com/sigabrtio/gosoup/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID    uint64  `json:"id"`
	Score float64 `json:"score"`
}

func TestBlob_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()

	for _, compression := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		blobs := blobstore.NewMemory()
		store := NewBlob[record](blobs, func(o *BlobOptions) {
			o.Compression = compression
		})

		page := []record{{ID: 1, Score: 0.5}, {ID: 2, Score: 0.25}}
		require.NoError(t, store.Save(ctx, 7, page))

		got, err := store.Load(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, page, got)
	}
}

func TestBlob_LoadMissing(t *testing.T) {
	store := NewBlob[record](blobstore.NewMemory())

	_, err := store.Load(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBlob_PrefixNamespacesPages(t *testing.T) {
	ctx := context.Background()
	blobs := blobstore.NewMemory()

	ids := NewBlob[uint64](blobs, func(o *BlobOptions) { o.Prefix = "ids" })
	scores := NewBlob[float64](blobs, func(o *BlobOptions) { o.Prefix = "scores" })

	require.NoError(t, ids.Save(ctx, 0, []uint64{1, 2}))
	require.NoError(t, scores.Save(ctx, 0, []float64{0.5}))

	names, err := blobs.List(ctx, "ids/")
	require.NoError(t, err)
	assert.Equal(t, []string{"ids/page-000000000000"}, names)

	got, err := ids.Load(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2}, got)
}

func TestBlob_CodecOption(t *testing.T) {
	ctx := context.Background()
	blobs := blobstore.NewMemory()

	store := NewBlob[record](blobs, func(o *BlobOptions) {
		o.Codec = codec.JSON{}
	})

	page := []record{{ID: 9, Score: 1.0}}
	require.NoError(t, store.Save(ctx, 0, page))

	got, err := store.Load(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, page, got)
}
