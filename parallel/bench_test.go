// Package parallel_test provides benchmarks comparing the pool product with
// the serial oracle.
package parallel_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/concurrency/matrix"
	"github.com/katalvlaran/concurrency/parallel"
)

var sinkM *matrix.Matrix[float64]

func BenchmarkMultiply(b *testing.B) {
	for _, n := range []int{16, 64, 128} {
		A := randFloat(b, n, n, 1)
		B := randFloat(b, n, n, 2)
		b.Run(fmt.Sprintf("serial/n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Multiply(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
		for _, w := range []int{1, 4, 8} {
			b.Run(fmt.Sprintf("pool/n=%d/w=%d", n, w), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					m, err := parallel.Multiply(A, B, parallel.WithWorkers(w))
					if err != nil {
						b.Fatal(err)
					}
					sinkM = m
				}
			})
		}
	}
}
