// SPDX-License-Identifier: MIT
// Package metrics_test runs the shared Counter contract against every implementation.
package metrics_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/concurrency/metrics"
	"github.com/stretchr/testify/require"
)

var contractKeys = []string{"a", "b", "c"}

// implementations returns fresh counters under test, keyed by name.
func implementations() map[string]func() metrics.Counter {
	return map[string]func() metrics.Counter{
		"LockedMap":  func() metrics.Counter { return metrics.NewLockedMap() },
		"ShardedMap": func() metrics.Counter { return metrics.NewShardedMap() },
		"AtomicMap":  func() metrics.Counter { return metrics.NewAtomicMap(contractKeys...) },
	}
}

// TestCounterIncDec checks basic arithmetic and the snapshot copy.
func TestCounterIncDec(t *testing.T) {
	for name, mk := range implementations() {
		t.Run(name, func(t *testing.T) {
			c := mk()
			require.NoError(t, c.Inc("a"))
			require.NoError(t, c.Inc("a"))
			require.NoError(t, c.Dec("b"))

			snap, err := c.Snapshot()
			require.NoError(t, err)
			require.Equal(t, int64(2), snap["a"])
			require.Equal(t, int64(-1), snap["b"])

			// the snapshot is a copy
			snap["a"] = 100
			again, err := c.Snapshot()
			require.NoError(t, err)
			require.Equal(t, int64(2), again["a"])
		})
	}
}

// TestCounterConcurrent hammers each implementation from many goroutines.
func TestCounterConcurrent(t *testing.T) {
	const workers, rounds = 16, 500
	for name, mk := range implementations() {
		t.Run(name, func(t *testing.T) {
			c := mk()
			var wg sync.WaitGroup
			wg.Add(workers)
			for w := 0; w < workers; w++ {
				go func(id int) {
					defer wg.Done()
					key := contractKeys[id%len(contractKeys)]
					for i := 0; i < rounds; i++ {
						_ = c.Inc(key)
						_ = c.Inc("c")
						_ = c.Dec("c")
					}
				}(w)
			}
			wg.Wait()

			snap, err := c.Snapshot()
			require.NoError(t, err)
			// the extra Inc/Dec pair on "c" nets to zero
			require.Equal(t, int64(workers*rounds), snap["a"]+snap["b"]+snap["c"])
		})
	}
}

// TestCounterString checks the sorted "{k: v}" rendering.
func TestCounterString(t *testing.T) {
	for name, mk := range implementations() {
		t.Run(name, func(t *testing.T) {
			c := mk()
			require.NoError(t, c.Inc("b"))
			require.NoError(t, c.Inc("a"))
			require.NoError(t, c.Inc("a"))
			s := fmt.Sprint(c)
			if name == "AtomicMap" {
				require.Equal(t, "{a: 2, b: 1, c: 0}", s)
				return
			}
			require.Equal(t, "{a: 2, b: 1}", s)
		})
	}
}

// TestAtomicMapUnknownKey checks the fixed key set.
func TestAtomicMapUnknownKey(t *testing.T) {
	m := metrics.NewAtomicMap("x", "y", "x")
	require.Equal(t, []string{"x", "y"}, m.Keys())
	require.ErrorIs(t, m.Inc("z"), metrics.ErrUnknownKey)
	require.ErrorIs(t, m.Dec("z"), metrics.ErrUnknownKey)
}

// TestZeroValue ensures the zero values of the growable maps are usable.
func TestZeroValue(t *testing.T) {
	var locked metrics.LockedMap
	var sharded metrics.ShardedMap
	for name, c := range map[string]metrics.Counter{"locked": &locked, "sharded": &sharded} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, c.Inc("k"))
			require.NoError(t, c.Inc("k"))
			require.NoError(t, c.Dec("j"))
			snap, err := c.Snapshot()
			require.NoError(t, err)
			require.Equal(t, map[string]int64{"k": 2, "j": -1}, snap)
		})
	}

	var empty metrics.ShardedMap
	require.Equal(t, "{}", empty.String())
}
