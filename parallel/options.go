// SPDX-License-Identifier: MIT

// Package parallel: functional configuration for the worker pool and the
// parallel product. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state; routing never depends on options
//     other than the worker count.
//   - Every flag impacts behavior and is covered by tests.
package parallel

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/concurrency/metrics"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers is the pool size used when WithWorkers is not given.
	DefaultWorkers = 4

	// DefaultQueueCapacity of 0 makes every worker queue unbounded (no backpressure).
	DefaultQueueCapacity = 0

	// DefaultCollectOrder collects results in dispatch order.
	DefaultCollectOrder = CollectInDispatchOrder
)

// Counter names published through WithCounters.
const (
	CounterDispatched = "tasks.dispatched"
	CounterCompleted  = "tasks.completed"
	CounterFailed     = "tasks.failed"
)

// CounterKeys lists every counter the engine may touch; pass it to
// metrics.NewAtomicMap to build a fixed-key counter for the engine.
var CounterKeys = []string{CounterDispatched, CounterCompleted, CounterFailed}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid  = "parallel: WithWorkers: n must be > 0"
	panicCapacityInvalid = "parallel: WithQueueCapacity: n must be >= 0"
	panicOrderInvalid    = "parallel: WithCollectOrder: unknown order"
	panicLoggerNil       = "parallel: WithLogger: logger must be non-nil"
)

// CollectOrder selects how the collector waits for results.
type CollectOrder int

const (
	// CollectInDispatchOrder blocks on each task's own completion channel in
	// the order tasks were issued. A slow task stalls collection of later,
	// already finished tasks.
	CollectInDispatchOrder CollectOrder = iota

	// CollectInCompletionOrder fans every result into one shared channel and
	// counts pending tasks down, writing each result by index as it arrives.
	CollectInCompletionOrder
)

// String returns a short name for logs and flags.
func (o CollectOrder) String() string {
	switch o {
	case CollectInDispatchOrder:
		return "dispatch"
	case CollectInCompletionOrder:
		return "completion"
	default:
		return "unknown"
	}
}

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	workers  int             // > 0; DefaultWorkers
	capacity int             // >= 0; DefaultQueueCapacity (0 = unbounded)
	order    CollectOrder    // DefaultCollectOrder
	counters metrics.Counter // optional; nil disables instrumentation
	logger   *slog.Logger    // never nil after gatherOptions
}

// WithWorkers sets the number of worker goroutines (N in index mod N).
// Panics when n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithQueueCapacity bounds every worker's inbound queue to n tasks; dispatch
// then blocks while the target queue is full. n == 0 restores unbounded queues.
// Panics when n < 0.
func WithQueueCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = n }
}

// WithCollectOrder selects the collection strategy.
// Panics on values other than the declared CollectOrder constants.
func WithCollectOrder(order CollectOrder) Option {
	if order != CollectInDispatchOrder && order != CollectInCompletionOrder {
		panic(panicOrderInvalid)
	}

	return func(o *Options) { o.order = order }
}

// WithCounters publishes CounterDispatched/CounterCompleted/CounterFailed
// into c. Counter errors are logged at debug level and otherwise ignored.
func WithCounters(c metrics.Counter) Option {
	return func(o *Options) { o.counters = c }
}

// WithLogger routes pool lifecycle and task failure events to l.
// Panics when l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// discardLogger keeps the library silent unless WithLogger is supplied.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// gatherOptions applies user setters on top of the defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:  DefaultWorkers,
		capacity: DefaultQueueCapacity,
		order:    DefaultCollectOrder,
		logger:   discardLogger,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
