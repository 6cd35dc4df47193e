// SPDX-License-Identifier: MIT

package parallel

import (
	"context"

	"github.com/katalvlaran/concurrency/matrix"
)

// collector waits for every dispatched task and writes results into out.
type collector[T matrix.Number] interface {
	collect(ctx context.Context, out *matrix.Matrix[T]) error
}

// dispatch enumerates every output cell of a×b in row-major order, builds one
// Task per cell and submits it to the pool. It returns the collector matching
// the requested order.
// MAIN DESCRIPTION:
//   - index = i*b.Cols() + j; row = copy of a row i; col = copy of b column j.
//
// Implementation:
//   - Stage 1: extract each input row once and each input column once.
//   - Stage 2: for every (i,j), copy row and column into the task's own
//     vectors (NewVector) so no task aliases another.
//   - Stage 3: create the completion (per-task channel, or the shared fan-in
//     channel) and Submit; routing is Pool.Route(index).
//
// Errors:
//   - Submit errors (ctx.Err, ErrPoolClosed) abort dispatch. Tasks already
//     queued are settled by the workers and drained by Pool.Close.
//
// Complexity:
//   - Time O(r*c*n) copies, Space O(r*c*n) in flight for unbounded queues.
func dispatch[T matrix.Number](ctx context.Context, p *Pool[T], a, b *matrix.Matrix[T], order CollectOrder) (collector[T], error) {
	rows, cols := a.Rows(), b.Cols()
	total := rows * cols

	aRows := make([][]T, rows)
	for i := range aRows {
		aRows[i], _ = a.Row(i) // i < rows by construction
	}
	bCols := make([][]T, cols)
	for j := range bCols {
		bCols[j], _ = b.Column(j)
	}

	var (
		ordered *orderedCollector[T]
		shared  *completionCollector[T]
	)
	switch order {
	case CollectInCompletionOrder:
		shared = &completionCollector[T]{ch: make(chan TaskResult[T], total), pending: total}
	default:
		ordered = &orderedCollector[T]{chans: make([]chan TaskResult[T], 0, total)}
	}

	var i, j, idx int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			idx = i*cols + j
			t := Task[T]{
				Index: idx,
				Row:   matrix.NewVector(aRows[i]),
				Col:   matrix.NewVector(bCols[j]),
			}
			if shared != nil {
				t.done = newCompletion(shared.ch, true)
			} else {
				ch := make(chan TaskResult[T], 1)
				ordered.chans = append(ordered.chans, ch)
				t.done = newCompletion(ch, false)
			}
			if err := p.Submit(ctx, t); err != nil {
				return nil, err
			}
		}
	}

	if shared != nil {
		return shared, nil
	}

	return ordered, nil
}
