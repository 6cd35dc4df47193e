// SPDX-License-Identifier: MIT

package parallel

import (
	"context"

	"github.com/katalvlaran/concurrency/matrix"
)

// Operation tags used in error wrappers.
const (
	opMultiply = "Multiply"
	opSubmit   = "Submit"
)

// Multiply returns a × b computed by a fresh pool of worker goroutines.
// It is MultiplyContext with context.Background().
func Multiply[T matrix.Number](a, b *matrix.Matrix[T], opts ...Option) (*matrix.Matrix[T], error) {
	return MultiplyContext(context.Background(), a, b, opts...)
}

// MultiplyContext returns a × b computed by a fresh pool of worker goroutines.
// MAIN DESCRIPTION:
//   - One task per output cell, routed to worker index mod N, results written
//     into a pre-allocated output by the calling goroutine only.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible before any goroutine is started.
//   - Stage 2: allocate the output; start a Pool bound to a call-scoped context.
//   - Stage 3: dispatch every cell (dispatcher.go).
//   - Stage 4: collect in dispatch order (default) or completion order.
//   - Stage 5 (deferred, every exit path): cancel the call context, close every
//     queue and join every worker.
//
// Errors:
//   - matrix.ErrDimensionMismatch / matrix.ErrNilMatrix: shape precondition.
//   - ErrChannelClosed: a worker failed (panic or kernel error) on some task.
//   - ErrCancelled (joined with ctx.Err()): ctx ended before collection finished.
//
// Behavior highlights:
//   - All or nothing: on any error the result is nil.
//   - Deterministic: identical inputs yield bit-identical outputs for any
//     worker count, queue capacity or collection order.
//   - No goroutine started here outlives the call.
func MultiplyContext[T matrix.Number](ctx context.Context, a, b *matrix.Matrix[T], opts ...Option) (*matrix.Matrix[T], error) {
	return multiply(ctx, a, b, matrix.DotProduct[T], opts...)
}

func multiply[T matrix.Number](ctx context.Context, a, b *matrix.Matrix[T], k kernel[T], opts ...Option) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, parallelErrorf(opMultiply, err)
	}
	o := gatherOptions(opts...)
	out, err := matrix.Zeros[T](a.Rows(), b.Cols())
	if err != nil {
		return nil, parallelErrorf(opMultiply, err)
	}

	callCtx, cancel := context.WithCancel(ctx)
	p := newPool(callCtx, o, k)
	defer func() {
		cancel()
		_ = p.Close() // workers always return nil
	}()

	c, err := dispatch(callCtx, p, a, b, o.order)
	if err != nil {
		if cerr := ctx.Err(); cerr != nil {
			return nil, parallelErrorf(opMultiply, cancelledError(cerr))
		}
		return nil, parallelErrorf(opMultiply, err)
	}
	if err = c.collect(callCtx, out); err != nil {
		o.logger.Warn("parallel multiply failed", "rows", a.Rows(), "cols", b.Cols(), "err", err)
		return nil, parallelErrorf(opMultiply, err)
	}

	return out, nil
}
