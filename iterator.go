package gosoup

import (
	"context"
)

// Cursor walks the vector in index order. Each step may fault a page in, so
// walking a vector larger than its resident set causes store traffic.
//
// A cursor observes appends made after its creation: it simply stops once it
// reaches the current length.
type Cursor[T any] struct {
	v   *Vector[T]
	idx uint64
}

// Cursor returns a cursor positioned at index 0.
func (v *Vector[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{v: v}
}

// Next returns the item at the cursor position and advances. ok is false
// once the cursor has passed the last item. On a backing store failure the
// cursor does not advance, so Next can be retried.
func (c *Cursor[T]) Next(ctx context.Context) (item T, ok bool, err error) {
	if c.idx >= c.v.Len() {
		return item, false, nil
	}

	item, err = c.v.At(ctx, c.idx)
	if err != nil {
		return item, false, err
	}

	c.idx++
	return item, true, nil
}

// Index returns the position of the next item Next would return.
func (c *Cursor[T]) Index() uint64 { return c.idx }

// Reset rewinds the cursor to index 0.
func (c *Cursor[T]) Reset() { c.idx = 0 }

// Each calls fn for every item in index order. Iteration stops at the first
// error from the store or from fn.
func (v *Vector[T]) Each(ctx context.Context, fn func(idx uint64, item T) error) error {
	c := v.Cursor()
	for {
		item, ok, err := c.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(c.Index()-1, item); err != nil {
			return err
		}
	}
}
