// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/katalvlaran/concurrency/metrics"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type metricsFlags struct {
	kind     string
	keys     []string
	workers  int
	interval time.Duration
	duration time.Duration
}

func newMetricsCmd(a *app) *cobra.Command {
	f := metricsFlags{}
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Increment shared counters from random workers and print snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMetrics(cmd, a, f)
		},
	}
	cmd.Flags().StringVar(&f.kind, "kind", "atomic", "counter map: atomic, locked or sharded")
	cmd.Flags().StringSliceVar(&f.keys, "keys", []string{"a", "b", "c"}, "counter names")
	cmd.Flags().IntVar(&f.workers, "workers", 8, "incrementing goroutines")
	cmd.Flags().DurationVar(&f.interval, "interval", time.Second, "snapshot period")
	cmd.Flags().DurationVar(&f.duration, "duration", 0, "stop after this long (0 = until interrupted)")

	return cmd
}

func newCounter(kind string, keys []string) (metrics.Counter, error) {
	switch strings.ToLower(kind) {
	case "atomic":
		return metrics.NewAtomicMap(keys...), nil
	case "locked":
		return metrics.NewLockedMap(), nil
	case "sharded":
		return metrics.NewShardedMap(), nil
	default:
		return nil, fmt.Errorf("--kind %q: want atomic, locked or sharded", kind)
	}
}

func runMetrics(cmd *cobra.Command, a *app, f metricsFlags) error {
	if f.workers <= 0 || f.interval <= 0 || len(f.keys) == 0 {
		return fmt.Errorf("--workers and --interval must be > 0 and --keys non-empty")
	}
	keys := lo.Uniq(f.keys)
	counter, err := newCounter(f.kind, keys)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if f.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.duration)
		defer cancel()
	}

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < f.workers; w++ {
		g.Go(func() error {
			return increment(ctx, counter, keys)
		})
	}
	g.Go(func() error {
		tick := time.NewTicker(f.interval)
		defer tick.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-tick.C:
				fmt.Fprintln(cmd.OutOrStdout(), counter)
			}
		}
	})
	if err := g.Wait(); err != nil {
		return err
	}
	snap, err := counter.Snapshot()
	if err != nil {
		return err
	}
	a.log.Info("metrics stopped", "kind", f.kind, "total", lo.Sum(lo.Values(snap)))
	fmt.Fprintln(cmd.OutOrStdout(), counter)

	return nil
}

// increment bumps a random key after a short random pause until ctx is done.
func increment(ctx context.Context, c metrics.Counter, keys []string) error {
	for {
		t := time.NewTimer(time.Duration(rand.IntN(10)) * time.Millisecond)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil
		case <-t.C:
		}
		if err := c.Inc(keys[rand.IntN(len(keys))]); err != nil {
			return err
		}
	}
}
