package mwd

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-mwd/dsp/core"
	"github.com/cwbudde/algo-mwd/dsp/movsum"
)

// Errors returned for invalid deconvolution parameters.
var (
	ErrInvalidRiseTime        = errors.New("mwd: rise time must be > 0")
	ErrInvalidTrapezoidLength = errors.New("mwd: trapezoid length must be > 0")
	ErrInvalidDecayTime       = errors.New("mwd: decay time must be positive and finite")
	ErrWindowTooLong          = errors.New("mwd: rise time + trapezoid length must be < len(waveform)")
)

// Params configures the deconvolution filter. All lengths are in samples.
type Params struct {
	RiseTime        int
	DecayTime       float64
	TrapezoidLength int
}

// ValidateShape checks the parameters that do not depend on the waveform.
func (p Params) ValidateShape() error {
	if p.RiseTime <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRiseTime, p.RiseTime)
	}
	if p.TrapezoidLength <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTrapezoidLength, p.TrapezoidLength)
	}
	if !(p.DecayTime > 0) || math.IsInf(p.DecayTime, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidDecayTime, p.DecayTime)
	}
	return nil
}

// Validate checks p against a waveform of n samples.
func (p Params) Validate(n int) error {
	if err := p.ValidateShape(); err != nil {
		return err
	}
	if p.RiseTime+p.TrapezoidLength >= n {
		return fmt.Errorf("%w: %d + %d >= %d", ErrWindowTooLong, p.RiseTime, p.TrapezoidLength, n)
	}
	return nil
}

// Output holds both filter stages for one waveform.
type Output struct {
	Deconvoluted []float64
	Trapezoid    []float64
}

// Apply runs pole cancellation and trapezoid shaping on waveform.
func Apply(waveform []float64, p Params) (Output, error) {
	if err := p.Validate(len(waveform)); err != nil {
		return Output{}, err
	}

	deconvoluted, err := deconvolve(waveform, p)
	if err != nil {
		return Output{}, err
	}
	trapezoid, err := Shape(deconvoluted, p.RiseTime)
	if err != nil {
		return Output{}, err
	}
	return Output{Deconvoluted: deconvoluted, Trapezoid: trapezoid}, nil
}

// Deconvolve returns the pole-cancelled waveform.
func Deconvolve(waveform []float64, p Params) ([]float64, error) {
	if err := p.Validate(len(waveform)); err != nil {
		return nil, err
	}
	return deconvolve(waveform, p)
}

// Trapezoid returns the flat-top filtered waveform.
func Trapezoid(waveform []float64, p Params) ([]float64, error) {
	out, err := Apply(waveform, p)
	if err != nil {
		return nil, err
	}
	return out.Trapezoid, nil
}

// Shape averages deconvoluted over riseTime samples:
// trapezoid[i] = S_riseTime(deconvoluted)[i] / riseTime.
func Shape(deconvoluted []float64, riseTime int) ([]float64, error) {
	out, err := movsum.Sum(deconvoluted, riseTime)
	if err != nil {
		return nil, err
	}
	m := float64(riseTime)
	for i := range out {
		out[i] /= m
	}
	return out, nil
}

func deconvolve(x []float64, p Params) ([]float64, error) {
	l := p.TrapezoidLength
	sums, err := movsum.Sum(x, l)
	if err != nil {
		return nil, err
	}

	// Reuse the sum buffer for the output; sums[i] is read before it is
	// overwritten and never read again.
	out := sums
	core.Zero(out[:l])
	for i := l; i < len(x); i++ {
		out[i] = x[i] + sums[i]/p.DecayTime - x[i-l]
	}
	return out, nil
}
