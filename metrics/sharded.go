// SPDX-License-Identifier: MIT

package metrics

import (
	"sync"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// ShardedMap is a Counter backed by a sharded concurrent map.
// Each key hashes to one shard with its own lock, so Inc/Dec on distinct
// keys proceed mostly in parallel.
// The zero value is ready to use; its shards are allocated on first access.
type ShardedMap struct {
	once sync.Once
	data cmap.ConcurrentMap[string, int64]
}

var _ Counter = (*ShardedMap)(nil)

// NewShardedMap returns an empty ShardedMap.
func NewShardedMap() *ShardedMap {
	m := &ShardedMap{}
	m.shards()

	return m
}

func (m *ShardedMap) shards() *cmap.ConcurrentMap[string, int64] {
	m.once.Do(func() { m.data = cmap.New[int64]() })
	return &m.data
}

func (m *ShardedMap) add(name string, delta int64) {
	m.shards().Upsert(name, delta, func(exist bool, cur, d int64) int64 {
		if !exist {
			return d
		}
		return cur + d
	})
}

// Inc adds one to name, creating it at zero first if absent.
func (m *ShardedMap) Inc(name string) error {
	m.add(name, 1)
	return nil
}

// Dec subtracts one from name, creating it at zero first if absent.
func (m *ShardedMap) Dec(name string) error {
	m.add(name, -1)
	return nil
}

// Snapshot returns a copy of all counters. Shards are read one at a time,
// so the copy is consistent per key, not across keys.
func (m *ShardedMap) Snapshot() (map[string]int64, error) {
	return m.shards().Items(), nil
}

// String renders the current counters.
func (m *ShardedMap) String() string {
	return format(m.shards().Items())
}
