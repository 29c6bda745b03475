package gosoup

import (
	"context"
	"errors"
	"testing"

	"github.com/sigabrtio/gosoup/pagestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_WalksInIndexOrder(t *testing.T) {
	ctx := context.Background()

	// Two resident pages of four items: a 20 item walk crosses slot
	// conflicts repeatedly.
	vec, err := New[int](pagestore.NewMemory[int](), 2, 1)
	require.NoError(t, err)

	const n = 20
	for i := 0; i < n; i++ {
		require.NoError(t, vec.Append(ctx, i*2))
	}

	c := vec.Cursor()
	var got []int
	for {
		item, ok, err := c.Next(ctx)
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, item)
	}

	require.Len(t, got, n)
	for i, item := range got {
		assert.Equal(t, i*2, item)
	}

	// Exhausted cursor stays exhausted.
	_, ok, err := c.Next(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	c.Reset()
	item, ok, err := c.Next(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0, item)
}

func TestCursor_EmptyVector(t *testing.T) {
	vec, err := New[int](pagestore.NewMemory[int](), 2, 2)
	require.NoError(t, err)

	_, ok, err := vec.Cursor().Next(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCursor_SeesItemsAppendedAfterCreation(t *testing.T) {
	ctx := context.Background()

	vec, err := New[int](pagestore.NewMemory[int](), 2, 2)
	require.NoError(t, err)
	require.NoError(t, vec.Append(ctx, 1))

	c := vec.Cursor()
	_, ok, err := c.Next(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = c.Next(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, vec.Append(ctx, 2))

	item, ok, err := c.Next(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, item)
}

func TestEach_VisitsEveryItem(t *testing.T) {
	ctx := context.Background()

	vec, err := New[string](pagestore.NewMemory[string](), 2, 1)
	require.NoError(t, err)

	want := []string{"a", "b", "c", "d", "e"}
	for _, s := range want {
		require.NoError(t, vec.Append(ctx, s))
	}

	var got []string
	var indices []uint64
	err = vec.Each(ctx, func(idx uint64, item string) error {
		indices = append(indices, idx)
		got = append(got, item)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.Equal(t, []uint64{0, 1, 2, 3, 4}, indices)
}

func TestEach_StopsOnCallbackError(t *testing.T) {
	ctx := context.Background()

	vec, err := New[int](pagestore.NewMemory[int](), 2, 2)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		require.NoError(t, vec.Append(ctx, i))
	}

	stop := errors.New("stop")
	visited := 0
	err = vec.Each(ctx, func(idx uint64, item int) error {
		visited++
		if visited == 3 {
			return stop
		}
		return nil
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, visited)
}
