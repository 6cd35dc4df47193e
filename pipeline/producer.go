// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"
)

// Msg is one value emitted by a producer.
type Msg struct {
	Producer int
	Value    uint64
}

// Produce starts the producers and returns the shared output channel.
// The channel is closed after every producer exits, either by drawing a value
// divisible by the stop modulus or because ctx is done.
func Produce(ctx context.Context, opts ...Option) <-chan Msg {
	o := gatherOptions(opts...)
	out := make(chan Msg)

	var g errgroup.Group
	for id := 0; id < o.producers; id++ {
		g.Go(func() error {
			produce(ctx, id, o, out)
			return nil
		})
	}
	go func() {
		_ = g.Wait()
		close(out)
	}()

	return out
}

func produce(ctx context.Context, id int, o options, out chan<- Msg) {
	rng := rand.New(rand.NewPCG(o.seed, uint64(id)))
	log := o.logger.With("producer", id)
	for sent := 0; ; sent++ {
		v := rng.Uint64()
		if v%o.stopEvery == 0 {
			log.Info("exiting", "sent", sent)
			return
		}
		select {
		case out <- Msg{Producer: id, Value: v}:
		case <-ctx.Done():
			log.Info("cancelled", "sent", sent)
			return
		}
		if d := delay(rng, o.minDelay, o.maxDelay); d > 0 {
			t := time.NewTimer(d)
			select {
			case <-t.C:
			case <-ctx.Done():
				t.Stop()
				log.Info("cancelled", "sent", sent+1)
				return
			}
		}
	}
}

// delay draws a pause in [lower, upper).
func delay(rng *rand.Rand, lower, upper time.Duration) time.Duration {
	if upper <= lower {
		return lower
	}

	return lower + time.Duration(rng.Int64N(int64(upper-lower)))
}

// Drain consumes ch until it is closed, calling fn for each message, and
// returns the number of messages seen.
func Drain(ch <-chan Msg, fn func(Msg)) int {
	n := 0
	for m := range ch {
		if fn != nil {
			fn(m)
		}
		n++
	}

	return n
}
