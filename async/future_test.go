package async

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromise_Resolve(t *testing.T) {
	p := NewPromise[int]()
	f := p.Future()

	assert.False(t, f.Ready())

	p.Resolve(42)
	assert.True(t, f.Ready())

	value, err := f.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestPromise_Reject(t *testing.T) {
	boom := errors.New("boom")

	p := NewPromise[int]()
	p.Reject(boom)

	_, err := p.Future().Get(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestPromise_RejectNilError(t *testing.T) {
	p := NewPromise[int]()
	p.Reject(nil)

	_, err := p.Future().Get(context.Background())
	assert.ErrorIs(t, err, ErrRejected)
}

func TestPromise_FirstCompletionWins(t *testing.T) {
	p := NewPromise[int]()
	p.Resolve(1)
	p.Resolve(2)
	p.Reject(errors.New("late"))

	value, err := p.Future().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, value)
}

func TestFuture_GetRespectsContext(t *testing.T) {
	p := NewPromise[int]()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := p.Future().Get(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFuture_GetUnblocksOnResolve(t *testing.T) {
	p := NewPromise[string]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		p.Resolve("hello")
	}()

	value, err := p.Future().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello", value)
}

func TestReadyAndFailedHelpers(t *testing.T) {
	f := Ready("done")
	require.True(t, f.Ready())

	value, err := f.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "done", value)

	boom := errors.New("boom")
	bad := Failed[string](boom)
	require.True(t, bad.Ready())

	_, err = bad.Get(context.Background())
	assert.ErrorIs(t, err, boom)
}
