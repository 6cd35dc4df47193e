// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for constructors and kernels.

package matrix_test

import (
	"math/rand"
	"testing"

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

// mustFill builds a rows×cols matrix whose elements are produced by f(i,j).
func mustFill[T matrix.Number](tb testing.TB, rows, cols int, f func(i, j int) T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.Zeros[T](rows, cols)
	require.NoError(tb, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(tb, m.Set(i, j, f(i, j)))
		}
	}

	return m
}

// randFloat returns a deterministic rows×cols matrix with values in [-1, 1).
func randFloat(tb testing.TB, rows, cols int, seed int64) *matrix.Matrix[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))

	return mustFill(tb, rows, cols, func(_, _ int) float64 { return rng.Float64()*2 - 1 })
}
