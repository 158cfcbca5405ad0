package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/glstsp/matrix"
)

// benchSizes are the matrix orders to benchmark.
var benchSizes = []int{50, 200, 500}

func BenchmarkNewSymmetric(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		n := n
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = matrix.NewSymmetric(n)
			}
		})
	}
}

func BenchmarkSymmetric_Set(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		n := n
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			m, err := matrix.NewSymmetric(n)
			if err != nil {
				b.Fatalf("NewSymmetric failed: %v", err)
			}

			b.ResetTimer()
			for k := 0; k < b.N; k++ {
				i := k % n
				j := (k + 1) % n
				_ = m.Set(i, j, int32(k))
			}
		})
	}
}

func BenchmarkSymmetric_GetUnchecked(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		n := n
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			m, err := matrix.NewSymmetric(n)
			if err != nil {
				b.Fatalf("NewSymmetric failed: %v", err)
			}
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					_ = m.Set(i, j, int32(i+j))
				}
			}

			b.ResetTimer()
			for k := 0; k < b.N; k++ {
				_ = m.GetUnchecked(k%n, (k+1)%n)
			}
		})
	}
}
