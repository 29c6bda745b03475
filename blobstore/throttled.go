package blobstore

import (
	"context"

	"golang.org/x/time/rate"
)

// Throttled wraps a Store and rate-limits Put/Get throughput in bytes per
// second. Evicting a cold vector walks pages sequentially; the limiter keeps
// that swap traffic from saturating a shared link.
type Throttled struct {
	inner   Store
	limiter *rate.Limiter
}

// NewThrottled creates a throttled store.
// bytesPerSec <= 0 disables limiting.
func NewThrottled(inner Store, bytesPerSec int) *Throttled {
	var limiter *rate.Limiter
	if bytesPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec)
	}
	return &Throttled{inner: inner, limiter: limiter}
}

func (s *Throttled) wait(ctx context.Context, n int) error {
	if s.limiter == nil || n <= 0 {
		return nil
	}
	burst := s.limiter.Burst()
	// Requests larger than the burst are consumed in chunks.
	for n > 0 {
		chunk := n
		if chunk > burst {
			chunk = burst
		}
		if err := s.limiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

func (s *Throttled) Put(ctx context.Context, name string, data []byte) error {
	if err := s.wait(ctx, len(data)); err != nil {
		return err
	}
	return s.inner.Put(ctx, name, data)
}

func (s *Throttled) Get(ctx context.Context, name string) ([]byte, error) {
	data, err := s.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.wait(ctx, len(data)); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *Throttled) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}

func (s *Throttled) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}
