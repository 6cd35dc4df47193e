// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/katalvlaran/concurrency/pipeline"
	"github.com/spf13/cobra"
)

type channelFlags struct {
	producers int
	stopEvery uint64
	minDelay  time.Duration
	maxDelay  time.Duration
	seed      uint64
}

func newChannelCmd(a *app) *cobra.Command {
	f := channelFlags{}
	cmd := &cobra.Command{
		Use:   "channel",
		Short: "Run producers over one channel and print what the consumer receives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.producers <= 0 || f.stopEvery == 0 {
				return fmt.Errorf("--producers and --stop-every must be > 0")
			}
			if f.minDelay < 0 || f.maxDelay < f.minDelay {
				return fmt.Errorf("--min-delay %v / --max-delay %v: need 0 <= min <= max", f.minDelay, f.maxDelay)
			}
			opts := []pipeline.Option{
				pipeline.WithProducers(f.producers),
				pipeline.WithStopEvery(f.stopEvery),
				pipeline.WithDelay(f.minDelay, f.maxDelay),
				pipeline.WithLogger(a.log),
			}
			if cmd.Flags().Changed("seed") {
				opts = append(opts, pipeline.WithSeed(f.seed))
			}

			out := cmd.OutOrStdout()
			n := pipeline.Drain(pipeline.Produce(cmd.Context(), opts...), func(m pipeline.Msg) {
				fmt.Fprintf(out, "producer %d: %d\n", m.Producer, m.Value)
			})
			fmt.Fprintf(out, "received %d messages\n", n)

			return nil
		},
	}
	cmd.Flags().IntVar(&f.producers, "producers", pipeline.DefaultProducers, "producer goroutines")
	cmd.Flags().Uint64Var(&f.stopEvery, "stop-every", pipeline.DefaultStopEvery, "a producer exits on a value divisible by this")
	cmd.Flags().DurationVar(&f.minDelay, "min-delay", pipeline.DefaultMinDelay, "minimum pause between sends")
	cmd.Flags().DurationVar(&f.maxDelay, "max-delay", pipeline.DefaultMaxDelay, "maximum pause between sends")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed (random when unset)")

	return cmd
}
