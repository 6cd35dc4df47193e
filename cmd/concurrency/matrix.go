// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/katalvlaran/concurrency/matrix"
	"github.com/katalvlaran/concurrency/metrics"
	"github.com/katalvlaran/concurrency/parallel"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// Shapes of the generated demo operands.
const (
	genRowsA = 20
	genColsA = 30
	genColsB = 40
)

type matrixFlags struct {
	example  bool
	workers  int
	capacity int
	order    string
}

func newMatrixCmd(a *app) *cobra.Command {
	f := matrixFlags{}
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Multiply two matrices serially and in parallel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMatrix(cmd, a, f)
		},
	}
	cmd.Flags().BoolVar(&f.example, "example", false, "use the fixed 2x3 and 3x2 operands")
	cmd.Flags().IntVar(&f.workers, "workers", parallel.DefaultWorkers, "worker goroutines")
	cmd.Flags().IntVar(&f.capacity, "capacity", parallel.DefaultQueueCapacity, "per-worker queue capacity (0 = unbounded)")
	cmd.Flags().StringVar(&f.order, "order", parallel.DefaultCollectOrder.String(), "collection order: dispatch or completion")

	return cmd
}

func parseOrder(s string) (parallel.CollectOrder, error) {
	switch s {
	case parallel.CollectInDispatchOrder.String():
		return parallel.CollectInDispatchOrder, nil
	case parallel.CollectInCompletionOrder.String():
		return parallel.CollectInCompletionOrder, nil
	default:
		return 0, fmt.Errorf("--order %q: want dispatch or completion", s)
	}
}

// operands returns the demo inputs: the fixed example or sequential data 0..n-1.
func operands(example bool) (*matrix.Matrix[int], *matrix.Matrix[int], error) {
	if example {
		a, err := matrix.New([]int{1, 2, 3, 4, 5, 6}, 2, 3)
		if err != nil {
			return nil, nil, err
		}
		b, err := matrix.New([]int{7, 8, 9, 10, 11, 12}, 3, 2)

		return a, b, err
	}
	a, err := matrix.New(lo.Range(genRowsA*genColsA), genRowsA, genColsA)
	if err != nil {
		return nil, nil, err
	}
	b, err := matrix.New(lo.Range(genColsA*genColsB), genColsA, genColsB)

	return a, b, err
}

func runMatrix(cmd *cobra.Command, a *app, f matrixFlags) error {
	if f.workers <= 0 {
		return fmt.Errorf("--workers must be > 0, got %d", f.workers)
	}
	if f.capacity < 0 {
		return fmt.Errorf("--capacity must be >= 0, got %d", f.capacity)
	}
	order, err := parseOrder(f.order)
	if err != nil {
		return err
	}
	x, y, err := operands(f.example)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	start := time.Now()
	serial, err := matrix.Multiply(x, y)
	if err != nil {
		return err
	}
	serialTook := time.Since(start)

	counters := metrics.NewAtomicMap(parallel.CounterKeys...)
	start = time.Now()
	par, err := parallel.MultiplyContext(cmd.Context(), x, y,
		parallel.WithWorkers(f.workers),
		parallel.WithQueueCapacity(f.capacity),
		parallel.WithCollectOrder(order),
		parallel.WithCounters(counters),
		parallel.WithLogger(a.log),
	)
	if err != nil {
		return err
	}
	parallelTook := time.Since(start)

	if f.example {
		fmt.Fprintf(out, "A:\n%sB:\n%s", x, y)
		fmt.Fprintf(out, "serial:\n%sparallel:\n%s", serial, par)
	}
	r, c := par.Shape()
	fmt.Fprintf(out, "product %dx%d: serial %v, parallel %v (workers=%d, order=%s)\n",
		r, c, serialTook, parallelTook, f.workers, order)
	fmt.Fprintf(out, "equal: %t\n", serial.Equal(par))
	fmt.Fprintf(out, "counters: %s\n", counters)

	return nil
}
