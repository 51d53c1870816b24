package batch

import (
	"github.com/cwbudde/algo-mwd/measure/energy"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the energies of a batch.
type Summary struct {
	Waveforms       int // items considered
	Failed          int // items with Err set
	WithoutTriggers int // successful items with no trigger
	Energies        int // energy readouts over all successful items

	// Statistics over all energy readouts. They are zero when Energies is
	// zero; StdDev is also zero for a single readout.
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Energies concatenates the energy values of all successful items in item
// order.
func Energies(items []Item) []float64 {
	var out []float64
	for _, it := range items {
		if it.Err != nil {
			continue
		}
		out = append(out, energy.Values(it.Result.Energies)...)
	}
	return out
}

// Summarize computes a Summary over items.
func Summarize(items []Item) Summary {
	s := Summary{Waveforms: len(items)}
	for _, it := range items {
		switch {
		case it.Err != nil:
			s.Failed++
		case len(it.Result.Triggers) == 0:
			s.WithoutTriggers++
		}
	}

	values := Energies(items)
	s.Energies = len(values)
	switch len(values) {
	case 0:
		return s
	case 1:
		s.Mean = values[0]
	default:
		s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	}
	s.Min = floats.Min(values)
	s.Max = floats.Max(values)
	return s
}
