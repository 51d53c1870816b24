package movsum

import (
	"testing"

	"github.com/cwbudde/algo-mwd/internal/testutil"
)

var benchSizes = []struct {
	name   string
	size   int
	window int
}{
	{"4k_w50", 4096, 50},
	{"16k_w450", 16384, 450},
	{"64k_w600", 65536, 600},
}

func BenchmarkSumTo(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			a := testutil.DeterministicNoise(1, 1, tc.size)
			dst := make([]float64, tc.size)

			b.SetBytes(int64(tc.size * 8))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = SumTo(dst, a, tc.window)
			}
		})
	}
}

// BenchmarkDirect recomputes every window from scratch for comparison.
func BenchmarkDirect(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			a := testutil.DeterministicNoise(1, 1, tc.size)
			dst := make([]float64, tc.size)

			b.SetBytes(int64(tc.size * 8))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				for j := tc.window; j < tc.size; j++ {
					var s float64
					for _, v := range a[j-tc.window : j] {
						s += v
					}
					dst[j] = s
				}
			}
		})
	}
}
