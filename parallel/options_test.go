// SPDX-License-Identifier: MIT
package parallel_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/concurrency/matrix"
	"github.com/katalvlaran/concurrency/parallel"
	"github.com/stretchr/testify/require"
)

// TestOptionPanics checks that nonsensical option values panic at construction.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { parallel.WithWorkers(0) })
	require.Panics(t, func() { parallel.WithWorkers(-3) })
	require.Panics(t, func() { parallel.WithQueueCapacity(-1) })
	require.Panics(t, func() { parallel.WithCollectOrder(parallel.CollectOrder(42)) })
	require.Panics(t, func() { parallel.WithLogger(nil) })

	require.NotPanics(t, func() { parallel.WithQueueCapacity(0) })
}

// TestCollectOrderString checks flag-friendly names.
func TestCollectOrderString(t *testing.T) {
	require.Equal(t, "dispatch", parallel.CollectInDispatchOrder.String())
	require.Equal(t, "completion", parallel.CollectInCompletionOrder.String())
	require.Equal(t, "unknown", parallel.CollectOrder(9).String())
}

// TestWithLoggerReportsFailures checks that task failures reach the logger.
func TestWithLoggerReportsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	a := constant(t, 2, 2, 1)
	b := constant(t, 2, 2, 1)
	_, err := parallel.Multiply(a, b, parallel.WithLogger(logger))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "pool started")
	require.Contains(t, buf.String(), "pool stopped")

	buf.Reset()
	p := parallel.NewPool[int](t.Context(), parallel.WithLogger(logger))
	task, done := parallel.NewTask(3, []int{1, 2}, []int{1})
	require.NoError(t, p.Submit(t.Context(), task))
	<-done
	require.NoError(t, p.Close())
	require.Contains(t, buf.String(), "task failed")
	require.Contains(t, buf.String(), matrix.ErrDimensionMismatch.Error())
}
