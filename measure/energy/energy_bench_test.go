package energy

import (
	"testing"

	"github.com/cwbudde/algo-mwd/internal/testutil"
)

func BenchmarkAnalyze(b *testing.B) {
	x := testutil.PulseTrain(16384, []int{1000, 5000, 9000, 13000}, []float64{900, 400, 1300, 700}, testDecay)
	cfg := DefaultConfig()

	b.SetBytes(int64(len(x) * 8))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Analyze(x, cfg); err != nil {
			b.Fatal(err)
		}
	}
}
