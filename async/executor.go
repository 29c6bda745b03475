package async

import (
	"container/list"
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Task is one unit of cooperative work. Resume runs a slice of the task and
// reports whether the task has finished; unfinished tasks are resumed again
// on the next sweep.
type Task interface {
	Resume() (done bool)
}

// TaskFunc adapts a function to the Task interface.
type TaskFunc func() bool

// Resume implements Task.
func (f TaskFunc) Resume() bool { return f() }

// Executor runs tasks with round-robin scheduling: every Step resumes each
// queued task once and drops the finished ones. Tasks must not block inside
// Resume; they poll and yield, which keeps one sweeping goroutine sufficient
// for any number of in-flight tasks.
//
// Scheduling while a sweep is in progress waits for the sweep to finish.
type Executor struct {
	mu    sync.Mutex
	tasks *list.List

	running atomic.Bool
	open    atomic.Int64
}

// NewExecutor creates an idle executor.
func NewExecutor() *Executor {
	return &Executor{
		tasks: list.New(),
	}
}

// Schedule queues a task for execution.
func (e *Executor) Schedule(task Task) {
	e.mu.Lock()
	e.tasks.PushBack(task)
	e.mu.Unlock()
	e.open.Add(1)
}

// ScheduleFunc queues fn as a task.
func (e *Executor) ScheduleFunc(fn func() bool) {
	e.Schedule(TaskFunc(fn))
}

// Step sweeps the queue once, resuming every task and removing the ones
// that report done. The queue is locked for the whole sweep.
func (e *Executor) Step() {
	e.mu.Lock()
	defer e.mu.Unlock()

	elem := e.tasks.Front()
	for elem != nil {
		next := elem.Next()
		if elem.Value.(Task).Resume() {
			e.tasks.Remove(elem)
			e.open.Add(-1)
		}
		elem = next
	}
}

// Start launches the sweep loop in a background goroutine. The loop runs
// until Stop is called or the context is cancelled; the returned channel is
// closed when the loop exits. The executor stays valid after stopping and
// can be started again.
func (e *Executor) Start(ctx context.Context) <-chan struct{} {
	e.running.Store(true)

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		for e.running.Load() {
			select {
			case <-ctx.Done():
				return
			default:
			}

			e.Step()

			if e.Len() == 0 {
				// Idle backoff; new tasks arrive through Schedule.
				time.Sleep(100 * time.Microsecond)
			}
		}
	}()
	return stopped
}

// Stop signals the sweep loop to exit after the current sweep. Queued tasks
// are kept.
func (e *Executor) Stop() {
	e.running.Store(false)
}

// Len returns the number of queued tasks, including finished tasks not yet
// swept away.
func (e *Executor) Len() int {
	return int(e.open.Load())
}
