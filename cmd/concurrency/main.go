// SPDX-License-Identifier: MIT

// Command concurrency runs the demos of this module: the parallel matrix
// product, the concurrent counter maps, the TCP echo handler and the
// producer/consumer pipeline.
//
// Usage:
//
//	concurrency matrix [--example] [--workers N] [--capacity N] [--order dispatch|completion]
//	concurrency metrics [--kind atomic|locked|sharded] [--workers N] [--interval D] [--duration D]
//	concurrency echo [--addr host:port]
//	concurrency channel [--producers N] [--stop-every N] [--min-delay D] [--max-delay D] [--seed S]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "concurrency:", err)
		stop()
		os.Exit(1)
	}
}
