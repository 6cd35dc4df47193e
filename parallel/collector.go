// SPDX-License-Identifier: MIT

package parallel

import (
	"context"
	"fmt"

	"github.com/katalvlaran/concurrency/matrix"
)

// orderedCollector receives from each task's completion channel in the
// order the tasks were issued, regardless of completion order.
type orderedCollector[T matrix.Number] struct {
	chans []chan TaskResult[T]
}

func (c *orderedCollector[T]) collect(ctx context.Context, out *matrix.Matrix[T]) error {
	for pos, ch := range c.chans {
		select {
		case r, ok := <-ch:
			if !ok {
				if err := ctx.Err(); err != nil {
					return cancelledError(err)
				}
				return fmt.Errorf("task %d: %w", pos, ErrChannelClosed)
			}
			if err := out.SetFlat(r.Index, r.Value); err != nil {
				return err
			}
		case <-ctx.Done():
			return cancelledError(ctx.Err())
		}
	}

	return nil
}

// completionCollector counts down pending results arriving on one shared
// channel and writes each by index as soon as it lands.
type completionCollector[T matrix.Number] struct {
	ch      chan TaskResult[T]
	pending int
}

func (c *completionCollector[T]) collect(ctx context.Context, out *matrix.Matrix[T]) error {
	for ; c.pending > 0; c.pending-- {
		select {
		case r := <-c.ch:
			if r.failed {
				if err := ctx.Err(); err != nil {
					return cancelledError(err)
				}
				return fmt.Errorf("task %d: %w", r.Index, ErrChannelClosed)
			}
			if err := out.SetFlat(r.Index, r.Value); err != nil {
				return err
			}
		case <-ctx.Done():
			return cancelledError(ctx.Err())
		}
	}

	return nil
}
