package mwd

import (
	"testing"

	"github.com/cwbudde/algo-mwd/internal/testutil"
)

func BenchmarkApply(b *testing.B) {
	x := testutil.PulseTrain(16384, []int{1000, 6000, 12000}, []float64{900, 400, 1300}, 4e4)
	p := Params{RiseTime: 50, DecayTime: 4e4, TrapezoidLength: 600}

	b.SetBytes(int64(len(x) * 8))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Apply(x, p); err != nil {
			b.Fatal(err)
		}
	}
}
