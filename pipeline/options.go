// SPDX-License-Identifier: MIT

package pipeline

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"time"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultProducers is the number of producer goroutines.
	DefaultProducers = 3

	// DefaultMinDelay and DefaultMaxDelay bound the pause between sends.
	DefaultMinDelay = 100 * time.Millisecond
	DefaultMaxDelay = 3 * time.Second

	// DefaultStopEvery ends a producer when value % DefaultStopEvery == 0.
	DefaultStopEvery = 10
)

const (
	panicProducersInvalid = "pipeline: WithProducers: n must be > 0"
	panicDelayInvalid     = "pipeline: WithDelay: need 0 <= min <= max"
	panicStopInvalid      = "pipeline: WithStopEvery: n must be > 0"
	panicLoggerNil        = "pipeline: WithLogger: logger must be non-nil"
)

// Option mutates producer options.
type Option func(*options)

type options struct {
	producers int
	minDelay  time.Duration
	maxDelay  time.Duration
	stopEvery uint64
	seed      uint64
	seeded    bool
	logger    *slog.Logger
}

// WithProducers sets the number of producers. Panics when n <= 0.
func WithProducers(n int) Option {
	if n <= 0 {
		panic(panicProducersInvalid)
	}

	return func(o *options) { o.producers = n }
}

// WithDelay sets the pause range [lower, upper) between sends; lower == upper
// pauses exactly lower. Panics on negative or inverted bounds.
func WithDelay(lower, upper time.Duration) Option {
	if lower < 0 || upper < lower {
		panic(panicDelayInvalid)
	}

	return func(o *options) { o.minDelay, o.maxDelay = lower, upper }
}

// WithStopEvery sets the exit modulus. Panics when n == 0.
func WithStopEvery(n uint64) Option {
	if n == 0 {
		panic(panicStopInvalid)
	}

	return func(o *options) { o.stopEvery = n }
}

// WithSeed makes every producer's sequence reproducible: producer id draws
// from PCG(seed, id).
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed, o.seeded = seed, true }
}

// WithLogger routes producer exit events to l. Panics when l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = l }
}

func gatherOptions(user ...Option) options {
	o := options{
		producers: DefaultProducers,
		minDelay:  DefaultMinDelay,
		maxDelay:  DefaultMaxDelay,
		stopEvery: DefaultStopEvery,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, set := range user {
		set(&o)
	}
	if !o.seeded {
		o.seed = rand.Uint64()
	}

	return o
}
