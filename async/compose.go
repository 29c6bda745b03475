package async

// Pair is the result type of Join.
type Pair[T any, U any] struct {
	First  T
	Second U
}

// Map schedules a task that waits for f and applies fn to its value. Errors
// from f or fn propagate to the returned future.
func Map[T any, U any](exec *Executor, f *Future[T], fn func(T) (U, error)) *Future[U] {
	p := NewPromise[U]()

	exec.ScheduleFunc(func() bool {
		if !f.Ready() {
			return false
		}

		value, err := f.result()
		if err != nil {
			p.Reject(err)
			return true
		}

		mapped, err := fn(value)
		if err != nil {
			p.Reject(err)
			return true
		}
		p.Resolve(mapped)
		return true
	})

	return p.Future()
}

// FlatMap schedules a task that waits for f, calls fn to obtain a second
// future, waits for that one too and completes the returned future with its
// outcome. The task stays queued until the second future completes, so long
// flat-map chains keep their intermediate tasks alive.
func FlatMap[T any, U any](exec *Executor, f *Future[T], fn func(T) *Future[U]) *Future[U] {
	p := NewPromise[U]()

	var next *Future[U]
	exec.ScheduleFunc(func() bool {
		if next == nil {
			if !f.Ready() {
				return false
			}

			value, err := f.result()
			if err != nil {
				p.Reject(err)
				return true
			}
			next = fn(value)
		}

		if !next.Ready() {
			return false
		}

		value, err := next.result()
		if err != nil {
			p.Reject(err)
			return true
		}
		p.Resolve(value)
		return true
	})

	return p.Future()
}

// Join schedules a task that waits for both futures and combines their
// values into a Pair. The first error wins.
func Join[T any, U any](exec *Executor, left *Future[T], right *Future[U]) *Future[Pair[T, U]] {
	p := NewPromise[Pair[T, U]]()

	exec.ScheduleFunc(func() bool {
		if !left.Ready() || !right.Ready() {
			return false
		}

		l, err := left.result()
		if err != nil {
			p.Reject(err)
			return true
		}
		r, err := right.result()
		if err != nil {
			p.Reject(err)
			return true
		}

		p.Resolve(Pair[T, U]{First: l, Second: r})
		return true
	})

	return p.Future()
}

// Collect schedules a task that waits for every future and gathers the
// values in input order. The first error rejects the whole collection.
func Collect[T any](exec *Executor, futures []*Future[T]) *Future[[]T] {
	p := NewPromise[[]T]()

	exec.ScheduleFunc(func() bool {
		for _, f := range futures {
			if !f.Ready() {
				return false
			}
		}

		values := make([]T, 0, len(futures))
		for _, f := range futures {
			value, err := f.result()
			if err != nil {
				p.Reject(err)
				return true
			}
			values = append(values, value)
		}

		p.Resolve(values)
		return true
	})

	return p.Future()
}
