// Package baseline restores the reference level under each trapezoid so that
// the plateau readout is measured against the pre-trigger level instead of
// the residual droop or tail of an earlier pulse.
package baseline

import (
	"errors"
	"fmt"
)

// Errors returned for invalid baseline parameters.
var (
	ErrInvalidFitWindow = errors.New("baseline: fit window must be >= 0")
	ErrInvalidLength    = errors.New("baseline: length must be > 0")
	ErrInvalidTrigger   = errors.New("baseline: trigger index out of range")
)

// Params configures baseline restoration.
type Params struct {
	// FitWindow is the minimum trigger index that is trusted to have enough
	// history for a baseline estimate. Earlier triggers are not clamped.
	FitWindow int
	// Length is the number of samples held at the pre-trigger level.
	Length int
}

// Validate checks the parameters.
func (p Params) Validate() error {
	if p.FitWindow < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFitWindow, p.FitWindow)
	}
	if p.Length <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, p.Length)
	}
	return nil
}

// Restore returns a copy of trapezoid in which, for every trigger t with
// t >= p.FitWindow, the samples [t, t+p.Length) are replaced by trapezoid[t].
// Windows are clipped at the end of the waveform.
//
// Triggers are applied in the given order, which callers keep ascending, so
// where two windows overlap the later trigger wins. Note that a later
// trigger inside an earlier window clamps to the raw trapezoid value, not to
// the earlier clamp.
func Restore(trapezoid []float64, triggers []int, p Params) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, len(trapezoid))
	copy(out, trapezoid)

	for _, t := range triggers {
		if t < 0 || t >= len(trapezoid) {
			return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidTrigger, t, len(trapezoid))
		}
		if t < p.FitWindow {
			continue
		}
		level := trapezoid[t]
		end := min(t+p.Length, len(out))
		for i := t; i < end; i++ {
			out[i] = level
		}
	}
	return out, nil
}
