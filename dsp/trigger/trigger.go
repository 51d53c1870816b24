package trigger

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned for invalid trigger parameters.
var (
	ErrInvalidDelay     = errors.New("trigger: delay must satisfy 0 < delay < len(waveform)")
	ErrInvalidThreshold = errors.New("trigger: thresholds must not be NaN")
)

// Params configures the trigger.
type Params struct {
	Delay           int     // delay-line length in samples
	Threshold       float64 // trigger level on the filtered difference
	GlitchThreshold float64 // minimum departure accepted by the glitch filter
}

// Validate checks p against a waveform of n samples.
func (p Params) Validate(n int) error {
	if p.Delay <= 0 || p.Delay >= n {
		return fmt.Errorf("%w: delay=%d, len=%d", ErrInvalidDelay, p.Delay, n)
	}
	if math.IsNaN(p.Threshold) || math.IsNaN(p.GlitchThreshold) {
		return ErrInvalidThreshold
	}
	return nil
}

// Result holds the trigger decision for one waveform.
type Result struct {
	// Indices are the triggered sample numbers in waveform coordinates,
	// strictly increasing.
	Indices []int
	// Mask has one entry per waveform sample; the first Delay entries are
	// always false.
	Mask []bool
	// Difference is the delay-line difference, len(waveform)-Delay long.
	Difference []float64
	// Filtered is the glitch-filtered difference the threshold was applied to.
	Filtered []float64
}

// Difference returns |x[i+delay] - x[i]| for i in [0, len(x)-delay).
// It returns nil when delay is out of range.
func Difference(x []float64, delay int) []float64 {
	if delay <= 0 || delay >= len(x) {
		return nil
	}
	out := make([]float64, len(x)-delay)
	for i := range out {
		out[i] = math.Abs(x[i+delay] - x[i])
	}
	return out
}

// GlitchFilter holds the previous accepted level until a sample departs from
// it by more than threshold.
//
//	held[0]   = x[0]
//	held[i+1] = x[i+1]   if |x[i+1] - held[i]| > threshold
//	held[i+1] = held[i]  otherwise
func GlitchFilter(x []float64, threshold float64) []float64 {
	if len(x) == 0 {
		return nil
	}
	held := make([]float64, len(x))
	held[0] = x[0]
	for i, v := range x[1:] {
		if math.Abs(v-held[i]) > threshold {
			held[i+1] = v
		} else {
			held[i+1] = held[i]
		}
	}
	return held
}

// RisingEdges marks every index i+1 where x[i] < threshold <= x[i+1].
// The first entry is always false.
func RisingEdges(x []float64, threshold float64) []bool {
	if len(x) == 0 {
		return nil
	}
	fired := make([]bool, len(x))
	for i := 0; i < len(x)-1; i++ {
		fired[i+1] = x[i+1] >= threshold && x[i] < threshold
	}
	return fired
}

// Find locates the rising edges of waveform. A waveform without edges yields
// an empty, non-nil index list and no error.
func Find(waveform []float64, p Params) (Result, error) {
	if err := p.Validate(len(waveform)); err != nil {
		return Result{}, err
	}

	diff := Difference(waveform, p.Delay)
	filtered := GlitchFilter(diff, p.GlitchThreshold)
	fired := RisingEdges(filtered, p.Threshold)

	res := Result{
		Indices:    []int{},
		Mask:       make([]bool, len(waveform)),
		Difference: diff,
		Filtered:   filtered,
	}
	for i, f := range fired {
		if f {
			res.Mask[i+p.Delay] = true
			res.Indices = append(res.Indices, i+p.Delay)
		}
	}
	return res, nil
}
