// SPDX-License-Identifier: MIT

package metrics

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// ErrUnknownKey is returned by fixed-key counters for names outside their key set.
var ErrUnknownKey = errors.New("metrics: unknown key")

// Counter is the instrumentation contract shared by every implementation.
type Counter interface {
	// Inc adds one to the named counter.
	Inc(name string) error
	// Dec subtracts one from the named counter.
	Dec(name string) error
	// Snapshot returns a point-in-time copy of all counters.
	Snapshot() (map[string]int64, error)
}

// format renders a snapshot as "{a: 1, b: 2}" with keys sorted ascending.
func format(snap map[string]int64) string {
	keys := lo.Keys(snap)
	slices.Sort(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %d", k, snap[k])
	}
	b.WriteByte('}')

	return b.String()
}
