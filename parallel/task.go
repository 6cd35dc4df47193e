// SPDX-License-Identifier: MIT

package parallel

import (
	"sync/atomic"

	"github.com/katalvlaran/concurrency/matrix"
)

// Task is the unit of work for one output cell.
// Row and Col are private copies owned by the task; nothing is shared with
// the input matrices or with other tasks.
// Lifecycle: created by the dispatcher or NewTask, submitted once, consumed
// exactly once by one worker. Copies of a Task share its completion, so a
// second Submit of any copy fails with ErrTaskSubmitted.
type Task[T matrix.Number] struct {
	Index int              // row-major position in the output: i*cols + j
	Row   matrix.Vector[T] // copy of input row i
	Col   matrix.Vector[T] // copy of input column j
	done  completion[T]
}

// TaskResult carries one computed cell back to the collector.
type TaskResult[T matrix.Number] struct {
	Index  int // same Index as the originating Task
	Value  T   // row · col
	Worker int // worker that computed the value (Index mod N)
	failed bool
}

// NewTask builds a standalone task with its own single-use completion channel.
// The channel receives exactly one TaskResult, or is closed without a value
// when the worker fails to compute it.
func NewTask[T matrix.Number](index int, row, col []T) (Task[T], <-chan TaskResult[T]) {
	ch := make(chan TaskResult[T], 1)

	return Task[T]{
		Index: index,
		Row:   matrix.NewVector(row),
		Col:   matrix.NewVector(col),
		done:  newCompletion(ch, false),
	}, ch
}

// completion is the write end handed to a worker.
//   - per-task (shared=false): capacity-1 channel; failure closes it empty.
//   - shared (shared=true): one fan-in channel for all tasks of a call; failure
//     is signalled with a marked result because the channel cannot be closed
//     while other workers still write to it.
type completion[T matrix.Number] struct {
	ch      chan TaskResult[T]
	shared  bool
	claimed *atomic.Bool // set by the first successful Submit
}

func newCompletion[T matrix.Number](ch chan TaskResult[T], shared bool) completion[T] {
	return completion[T]{ch: ch, shared: shared, claimed: new(atomic.Bool)}
}

// claim reserves the completion for one submission.
func (c completion[T]) claim() bool { return c.claimed.CompareAndSwap(false, true) }

// release undoes claim after a submission that never reached a queue.
func (c completion[T]) release() { c.claimed.Store(false) }

// deliver posts the result. The channel always has room, so it never blocks.
func (c completion[T]) deliver(r TaskResult[T]) {
	c.ch <- r
}

// fail signals that no value will ever be delivered for index.
func (c completion[T]) fail(index, worker int) {
	if c.shared {
		c.ch <- TaskResult[T]{Index: index, Worker: worker, failed: true}
		return
	}
	close(c.ch)
}
