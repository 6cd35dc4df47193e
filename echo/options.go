// SPDX-License-Identifier: MIT

package echo

import (
	"io"
	"log/slog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAddr is the listen address used by the CLI.
	DefaultAddr = "127.0.0.1:6379"

	// DefaultBufferSize is the maximum number of bytes consumed per read.
	DefaultBufferSize = 1024

	// DefaultReply is written back after every read.
	DefaultReply = "+OK\r\n"
)

const (
	panicBufferInvalid = "echo: WithBufferSize: n must be > 0"
	panicLoggerNil     = "echo: WithLogger: logger must be non-nil"
)

// Option mutates server options.
type Option func(*options)

type options struct {
	bufferSize int
	reply      []byte
	logger     *slog.Logger
}

// WithBufferSize sets the per-read buffer. Panics when n <= 0.
func WithBufferSize(n int) Option {
	if n <= 0 {
		panic(panicBufferInvalid)
	}

	return func(o *options) { o.bufferSize = n }
}

// WithReply replaces the reply written after each read.
func WithReply(reply string) Option {
	return func(o *options) { o.reply = []byte(reply) }
}

// WithLogger routes connection events to l. Panics when l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = l }
}

func gatherOptions(user ...Option) options {
	o := options{
		bufferSize: DefaultBufferSize,
		reply:      []byte(DefaultReply),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
