// SPDX-License-Identifier: MIT

package metrics

import "sync"

// LockedMap is a Counter backed by a map under a single RWMutex.
// The zero value is ready to use.
type LockedMap struct {
	mu   sync.RWMutex
	data map[string]int64
}

var _ Counter = (*LockedMap)(nil)

// NewLockedMap returns an empty LockedMap.
func NewLockedMap() *LockedMap {
	return &LockedMap{data: make(map[string]int64)}
}

func (m *LockedMap) add(name string, delta int64) {
	m.mu.Lock()
	if m.data == nil {
		m.data = make(map[string]int64)
	}
	m.data[name] += delta
	m.mu.Unlock()
}

// Inc adds one to name, creating it at zero first if absent.
func (m *LockedMap) Inc(name string) error {
	m.add(name, 1)
	return nil
}

// Dec subtracts one from name, creating it at zero first if absent.
func (m *LockedMap) Dec(name string) error {
	m.add(name, -1)
	return nil
}

// Snapshot returns a copy of all counters.
func (m *LockedMap) Snapshot() (map[string]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]int64, len(m.data))
	for k, v := range m.data {
		out[k] = v
	}

	return out, nil
}

// String renders the current counters.
func (m *LockedMap) String() string {
	snap, _ := m.Snapshot()
	return format(snap)
}
