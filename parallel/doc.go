// Package parallel computes matrix products on a fixed pool of worker goroutines.
//
// Each call to Multiply spawns a fresh Pool of N workers (WithWorkers, default
// DefaultWorkers), each with its own inbound queue:
//
//	caller ── dispatch (row-major) ──► queue[index mod N] ──► worker
//	   ▲                                                        │
//	   └──── collect (dispatch order) ◄── completion channel ◄──┘
//
// Every output cell (i, j) becomes one Task with index i*cols+j carrying private
// copies of row i of A and column j of B. Workers compute matrix.DotProduct and
// post a TaskResult on the task's single-use completion channel. The calling
// goroutine is the only writer of the output matrix.
//
// Lifecycle: the pool is closed and every worker joined before Multiply returns,
// on success and on every error path.
//
// Failure: a panicking or failing task closes its completion channel without a
// value and the call fails with ErrChannelClosed; there are no retries and no
// partial results. MultiplyContext fails with ErrCancelled when its context ends.
//
// Tuning:
//
//   - WithQueueCapacity bounds each queue so dispatch blocks when a worker falls
//     behind (backpressure); the default is unbounded.
//   - WithCollectOrder(CollectInCompletionOrder) avoids convoy stalls behind a
//     slow task by collecting from one shared channel in any order.
//   - WithCounters and WithLogger expose task counts and failures.
package parallel
