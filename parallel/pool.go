// SPDX-License-Identifier: MIT

// Package parallel - Worker Pool.
//
// Purpose:
//   - Own exactly N long-lived worker goroutines, each bound to its own inbound queue.
//   - Route tasks statically: task Index goes to worker Index mod N.
//   - Guarantee teardown: Close closes every queue and joins every worker.
//
// Failure model:
//   - A worker never dies on a bad task. Kernel errors and panics are recovered
//     and converted into a failed completion, so the collector observes
//     ErrChannelClosed instead of blocking forever.
//   - Once the pool context is done, workers skip computation and fail the
//     remaining queued tasks quickly.

package parallel

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/concurrency/matrix"
	"github.com/katalvlaran/concurrency/metrics"
	"golang.org/x/sync/errgroup"
)

// kernel computes one output cell from a row and a column.
type kernel[T matrix.Number] func(row, col matrix.Vector[T]) (T, error)

// Pool is a fixed set of workers consuming per-worker task queues.
// A Pool is an owned resource: create it, Submit tasks, then Close it on
// every exit path. It is safe for concurrent Submit calls.
type Pool[T matrix.Number] struct {
	ctx      context.Context
	queues   []taskQueue[T]
	group    errgroup.Group
	compute  kernel[T]
	log      *slog.Logger
	counters metrics.Counter

	closeOnce sync.Once
	closed    atomic.Bool
	closeErr  error
}

// NewPool starts the workers immediately and returns the running pool.
// Workers observe ctx between tasks; cancelling ctx does not close the pool,
// it only makes workers fail outstanding tasks instead of computing them.
// Options: WithWorkers, WithQueueCapacity, WithCounters, WithLogger
// (WithCollectOrder is ignored here, it only affects Multiply).
func NewPool[T matrix.Number](ctx context.Context, opts ...Option) *Pool[T] {
	return newPool[T](ctx, gatherOptions(opts...), matrix.DotProduct[T])
}

func newPool[T matrix.Number](ctx context.Context, o Options, k kernel[T]) *Pool[T] {
	p := &Pool[T]{
		ctx:      ctx,
		queues:   make([]taskQueue[T], o.workers),
		compute:  k,
		log:      o.logger,
		counters: o.counters,
	}
	for id := range p.queues {
		p.queues[id] = newTaskQueue[T](o.capacity)
	}
	for id := range p.queues {
		p.group.Go(func() error {
			p.work(id)
			return nil
		})
	}
	p.log.Debug("pool started", "workers", o.workers, "queue_capacity", o.capacity)

	return p
}

// Workers returns N, the number of worker goroutines.
func (p *Pool[T]) Workers() int { return len(p.queues) }

// Route returns the worker that receives the task with the given index.
func (p *Pool[T]) Route(index int) int {
	return index % len(p.queues)
}

// Submit enqueues t on worker Route(t.Index).
// Errors:
//   - matrix.ErrOutOfRange for a negative index;
//   - ErrInvalidTask for a Task not built by NewTask;
//   - ErrTaskSubmitted when t (or a copy of it) was already accepted;
//   - ErrPoolClosed after Close;
//   - ctx.Err() when ctx ends first (bounded queues block while full).
func (p *Pool[T]) Submit(ctx context.Context, t Task[T]) error {
	if t.Index < 0 {
		return parallelErrorf(opSubmit, fmt.Errorf("task index %d: %w", t.Index, matrix.ErrOutOfRange))
	}
	if t.done.ch == nil || t.done.claimed == nil {
		return parallelErrorf(opSubmit, ErrInvalidTask)
	}
	if p.closed.Load() {
		return parallelErrorf(opSubmit, ErrPoolClosed)
	}
	if !t.done.claim() {
		return parallelErrorf(opSubmit, fmt.Errorf("task %d: %w", t.Index, ErrTaskSubmitted))
	}
	if err := p.queues[p.Route(t.Index)].push(ctx, t); err != nil {
		t.done.release()
		return parallelErrorf(opSubmit, err)
	}
	p.count(CounterDispatched)

	return nil
}

// Close closes every worker queue and waits for all workers to exit.
// Tasks already queued are still processed (or failed, if the pool context
// is done). Idempotent; later calls return the first result.
func (p *Pool[T]) Close() error {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		for _, q := range p.queues {
			q.close()
		}
		p.closeErr = p.group.Wait()
		p.log.Debug("pool stopped", "workers", len(p.queues))
	})

	return p.closeErr
}

// work is the receive loop of one worker; it ends when its queue is closed and drained.
func (p *Pool[T]) work(id int) {
	q := p.queues[id]
	for {
		t, ok := q.pop()
		if !ok {
			return
		}
		p.run(id, t)
	}
}

// run computes a single task and settles its completion exactly once.
func (p *Pool[T]) run(id int, t Task[T]) {
	settled := false
	defer func() {
		if r := recover(); r != nil {
			p.log.Warn("task panicked", "worker", id, "index", t.Index, "panic", r)
			if !settled {
				p.failTask(id, t)
			}
		}
	}()

	if err := p.ctx.Err(); err != nil {
		settled = true
		p.failTask(id, t)
		return
	}
	v, err := p.compute(t.Row, t.Col)
	if err != nil {
		p.log.Warn("task failed", "worker", id, "index", t.Index, "err", err)
		settled = true
		p.failTask(id, t)
		return
	}
	settled = true
	t.done.deliver(TaskResult[T]{Index: t.Index, Value: v, Worker: id})
	p.count(CounterCompleted)
}

func (p *Pool[T]) failTask(id int, t Task[T]) {
	t.done.fail(t.Index, id)
	p.count(CounterFailed)
}

func (p *Pool[T]) count(name string) {
	if p.counters == nil {
		return
	}
	if err := p.counters.Inc(name); err != nil {
		p.log.Debug("counter update failed", "counter", name, "err", err)
	}
}
