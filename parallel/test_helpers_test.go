// SPDX-License-Identifier: MIT
// Package parallel_test contains test helpers shared by the engine tests.

package parallel_test

import (
	"math/rand"
	"runtime"
	"testing"
	"time"

	"github.com/katalvlaran/concurrency/matrix"
	"github.com/stretchr/testify/require"
)

// mustNew builds a rows×cols matrix from data or fails the test.
func mustNew[T matrix.Number](tb testing.TB, data []T, rows, cols int) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.New(data, rows, cols)
	require.NoError(tb, err)

	return m
}

// constant builds a rows×cols matrix with every element equal to v.
func constant[T matrix.Number](tb testing.TB, rows, cols int, v T) *matrix.Matrix[T] {
	tb.Helper()
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = v
	}

	return mustNew(tb, data, rows, cols)
}

// randInt returns a deterministic rows×cols matrix with values in [-50, 50).
func randInt(tb testing.TB, rows, cols int, seed int64) *matrix.Matrix[int64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]int64, rows*cols)
	for i := range data {
		data[i] = rng.Int63n(100) - 50
	}

	return mustNew(tb, data, rows, cols)
}

// randFloat returns a deterministic rows×cols matrix with values in [-1, 1).
func randFloat(tb testing.TB, rows, cols int, seed int64) *matrix.Matrix[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}

	return mustNew(tb, data, rows, cols)
}

// requireNoLeak waits until the goroutine count settles back to baseline.
// It polls on the test goroutine itself: require.Eventually would evaluate the
// count on an extra goroutine of its own.
func requireNoLeak(t *testing.T, baseline int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	n := runtime.NumGoroutine()
	for n > baseline && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
		n = runtime.NumGoroutine()
	}
	require.LessOrEqual(t, n, baseline, "worker goroutines outlived the call")
}
