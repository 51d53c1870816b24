package parity_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-mwd/measure/energy"
	"github.com/cwbudde/algo-mwd/measure/parity"
)

func ExampleCompare() {
	cfg := energy.DefaultConfig()
	waveform := make([]float64, 2000)
	for i := 500; i < len(waveform); i++ {
		waveform[i] = 800 * math.Exp(-float64(i-500)/cfg.DecayTime)
	}

	res, err := energy.Analyze(waveform, cfg, energy.WithDiagnostics())
	if err != nil {
		panic(err)
	}
	cols, err := parity.FromResult(waveform, cfg, res)
	if err != nil {
		panic(err)
	}

	devs, err := parity.Compare(cols, cols)
	if err != nil {
		panic(err)
	}
	for k, d := range devs {
		fmt.Printf("%-12s %g\n", parity.Names[k], d.MaxAbs)
	}

	// Output:
	// difference   0
	// sum/decay    0
	// deconvoluted 0
	// trapezoid    0
	// cfd          0
	// baseline     0
	// trigger      0
	// readout      0
}
