// Package metrics provides named int64 counters safe for concurrent use.
//
// Three interchangeable implementations satisfy Counter:
//
//   - LockedMap:  a map guarded by a sync.RWMutex; keys are created on first use.
//   - ShardedMap: a sharded concurrent map; writers to different keys rarely contend.
//   - AtomicMap:  a fixed key set chosen at construction, one padded atomic per key;
//     Inc/Dec on an unknown key fail with ErrUnknownKey.
//
// Every implementation renders as "{a: 1, b: 2}" with keys in ascending order.
package metrics
