// SPDX-License-Identifier: MIT
// Package parallel: sentinel error set.
// Shape errors are NOT redefined here: the engine returns matrix.ErrDimensionMismatch
// and matrix.ErrNilMatrix (wrapped with "parallel.Multiply") so callers match the same
// sentinel for the serial and parallel products.

package parallel

import (
	"errors"
	"fmt"
)

var (
	// ErrChannelClosed signals that a task's completion channel was closed
	// without a result: the worker panicked or its kernel failed. The whole
	// multiplication fails; no partial result is returned.
	ErrChannelClosed = errors.New("parallel: completion channel closed")

	// ErrCancelled signals that the caller's context ended before every
	// result was collected. It is joined with ctx.Err().
	ErrCancelled = errors.New("parallel: cancelled")

	// ErrPoolClosed is returned by Submit after Close.
	ErrPoolClosed = errors.New("parallel: pool closed")

	// ErrInvalidTask is returned by Submit for a Task without a completion
	// channel (a zero Task rather than one built by NewTask).
	ErrInvalidTask = errors.New("parallel: task has no completion channel")

	// ErrTaskSubmitted is returned by Submit for a task that was already
	// accepted once; its completion can be settled only one time.
	ErrTaskSubmitted = errors.New("parallel: task already submitted")
)

// parallelErrorf wraps err with an operation tag ("parallel.Multiply: ...").
func parallelErrorf(op string, err error) error {
	return fmt.Errorf("parallel.%s: %w", op, err)
}

// cancelledError joins ErrCancelled with the context cause.
func cancelledError(cause error) error {
	return fmt.Errorf("%w: %w", ErrCancelled, cause)
}
