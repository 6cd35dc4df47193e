// SPDX-License-Identifier: MIT

package parallel

import (
	"context"
	"sync"

	"github.com/eapache/queue"
	"github.com/katalvlaran/concurrency/matrix"
)

// taskQueue is a worker's inbound queue: many producers, one consumer.
type taskQueue[T matrix.Number] interface {
	// push enqueues t; it may block only for bounded queues.
	push(ctx context.Context, t Task[T]) error
	// pop blocks until a task is available. It reports false once the
	// queue is closed and fully drained.
	pop() (Task[T], bool)
	// close stops further pushes; queued tasks remain poppable.
	close()
}

func newTaskQueue[T matrix.Number](capacity int) taskQueue[T] {
	if capacity > 0 {
		return newBoundedQueue[T](capacity)
	}

	return newUnboundedQueue[T]()
}

// unboundedQueue grows without limit over a ring buffer.
type unboundedQueue[T matrix.Number] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  *queue.Queue
	closed bool
}

func newUnboundedQueue[T matrix.Number]() *unboundedQueue[T] {
	q := &unboundedQueue[T]{items: queue.New()}
	q.cond = sync.NewCond(&q.mu)

	return q
}

func (q *unboundedQueue[T]) push(ctx context.Context, t Task[T]) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrPoolClosed
	}
	q.items.Add(t)
	q.cond.Signal()

	return nil
}

func (q *unboundedQueue[T]) pop() (Task[T], bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.items.Length() == 0 && !q.closed {
		q.cond.Wait()
	}
	if q.items.Length() == 0 {
		var zero Task[T]
		return zero, false
	}

	return q.items.Remove().(Task[T]), true
}

func (q *unboundedQueue[T]) close() {
	q.mu.Lock()
	q.closed = true
	q.cond.Broadcast()
	q.mu.Unlock()
}

// boundedQueue applies backpressure: push blocks while the buffer is full.
// The read lock held across a blocked send keeps close from closing the
// channel under a pending sender.
type boundedQueue[T matrix.Number] struct {
	mu     sync.RWMutex
	ch     chan Task[T]
	closed bool
}

func newBoundedQueue[T matrix.Number](capacity int) *boundedQueue[T] {
	return &boundedQueue[T]{ch: make(chan Task[T], capacity)}
}

func (q *boundedQueue[T]) push(ctx context.Context, t Task[T]) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrPoolClosed
	}
	select {
	case q.ch <- t:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *boundedQueue[T]) pop() (Task[T], bool) {
	t, ok := <-q.ch
	return t, ok
}

func (q *boundedQueue[T]) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.ch)
	}
}
