// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/samber/lo"
	"golang.org/x/sys/cpu"
)

// paddedCounter keeps each hot counter on its own cache line.
type paddedCounter struct {
	_ cpu.CacheLinePad
	n atomic.Int64
	_ cpu.CacheLinePad
}

// AtomicMap is a Counter over a key set fixed at construction.
// The map itself is never written after NewAtomicMap, so lookups take no lock;
// each counter is a lock-free atomic.
type AtomicMap struct {
	data map[string]*paddedCounter
}

var _ Counter = (*AtomicMap)(nil)

// NewAtomicMap creates counters for every name in keys, all starting at zero.
// Duplicate names collapse into one counter.
func NewAtomicMap(keys ...string) *AtomicMap {
	data := make(map[string]*paddedCounter, len(keys))
	for _, k := range keys {
		if _, ok := data[k]; !ok {
			data[k] = &paddedCounter{}
		}
	}

	return &AtomicMap{data: data}
}

func (m *AtomicMap) counter(op, name string) (*paddedCounter, error) {
	c, ok := m.data[name]
	if !ok {
		return nil, fmt.Errorf("AtomicMap.%s(%q): %w", op, name, ErrUnknownKey)
	}

	return c, nil
}

// Inc adds one to name. Errors: ErrUnknownKey.
func (m *AtomicMap) Inc(name string) error {
	c, err := m.counter("Inc", name)
	if err != nil {
		return err
	}
	c.n.Add(1)

	return nil
}

// Dec subtracts one from name. Errors: ErrUnknownKey.
func (m *AtomicMap) Dec(name string) error {
	c, err := m.counter("Dec", name)
	if err != nil {
		return err
	}
	c.n.Add(-1)

	return nil
}

// Snapshot loads every counter. Loads are independent (relaxed view).
func (m *AtomicMap) Snapshot() (map[string]int64, error) {
	out := make(map[string]int64, len(m.data))
	for k, c := range m.data {
		out[k] = c.n.Load()
	}

	return out, nil
}

// Keys returns the fixed key set in ascending order.
func (m *AtomicMap) Keys() []string {
	keys := lo.Keys(m.data)
	slices.Sort(keys)

	return keys
}

// String renders the current counters.
func (m *AtomicMap) String() string {
	snap, _ := m.Snapshot()
	return format(snap)
}
