package parallel

import (
	"context"

	"github.com/katalvlaran/concurrency/matrix"
)

// MultiplyWithKernel runs the engine with a replacement cell kernel so tests
// can inject slow, failing or panicking work.
func MultiplyWithKernel[T matrix.Number](
	ctx context.Context,
	a, b *matrix.Matrix[T],
	k func(row, col matrix.Vector[T]) (T, error),
	opts ...Option,
) (*matrix.Matrix[T], error) {
	return multiply(ctx, a, b, kernel[T](k), opts...)
}

// NewPoolWithKernel is NewPool with a replacement kernel.
func NewPoolWithKernel[T matrix.Number](ctx context.Context, k func(row, col matrix.Vector[T]) (T, error), opts ...Option) *Pool[T] {
	return newPool(ctx, gatherOptions(opts...), kernel[T](k))
}
