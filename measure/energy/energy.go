package energy

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-mwd/dsp/baseline"
	"github.com/cwbudde/algo-mwd/dsp/core"
	"github.com/cwbudde/algo-mwd/dsp/mwd"
	"github.com/cwbudde/algo-mwd/dsp/trigger"
)

// Errors returned by Analyze.
var (
	ErrEmptyWaveform = errors.New("energy: waveform is empty")
	ErrNonFinite     = errors.New("energy: non-finite sample")
)

// Record is one energy readout.
type Record struct {
	Trigger int     // trigger sample number
	Energy  float64 // trapezoid minus baseline at Trigger+TrapezoidLength
}

// Diagnostics holds intermediate signals of one analysis.
type Diagnostics struct {
	// Difference is the delay-line difference, len(waveform)-CFDDelay long.
	Difference []float64
	// Filtered is the glitch-filtered difference.
	Filtered []float64
	// Deconvoluted is the pole-cancelled waveform before shaping.
	Deconvoluted []float64
}

// Result holds every derived sequence of one analysis. All sequences except
// the trigger list and energies have the waveform's length.
type Result struct {
	Triggers    []int
	Mask        []bool
	Trapezoid   []float64
	Baseline    []float64
	Energies    []Record
	Diagnostics *Diagnostics
}

// Option configures an analysis.
type Option func(*options)

type options struct {
	diagnostics bool
}

// WithDiagnostics keeps the intermediate signals on Result.Diagnostics.
func WithDiagnostics() Option {
	return func(o *options) {
		o.diagnostics = true
	}
}

// Analyze runs the full pipeline on waveform. The waveform is not modified.
//
// NaN or ±Inf samples in the waveform, or emerging in the trapezoid, are
// reported as ErrNonFinite rather than propagated into the energies.
func Analyze(waveform []float64, cfg Config, opts ...Option) (Result, error) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if len(waveform) == 0 {
		return Result{}, ErrEmptyWaveform
	}
	if err := cfg.Validate(len(waveform)); err != nil {
		return Result{}, err
	}
	if idx := core.FirstNonFinite(waveform); idx >= 0 {
		return Result{}, fmt.Errorf("%w: waveform[%d] = %v", ErrNonFinite, idx, waveform[idx])
	}

	trig, err := trigger.Find(waveform, cfg.Trigger())
	if err != nil {
		return Result{}, err
	}

	filtered, err := mwd.Apply(waveform, cfg.MWD())
	if err != nil {
		return Result{}, err
	}
	if idx := core.FirstNonFinite(filtered.Trapezoid); idx >= 0 {
		return Result{}, fmt.Errorf("%w: trapezoid[%d] = %v", ErrNonFinite, idx, filtered.Trapezoid[idx])
	}

	restored, err := baseline.Restore(filtered.Trapezoid, trig.Indices, cfg.Baseline())
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Triggers:  trig.Indices,
		Mask:      trig.Mask,
		Trapezoid: filtered.Trapezoid,
		Baseline:  restored,
		Energies:  Extract(trig.Indices, filtered.Trapezoid, restored, cfg.TrapezoidLength),
	}
	if o.diagnostics {
		res.Diagnostics = &Diagnostics{
			Difference:   trig.Difference,
			Filtered:     trig.Filtered,
			Deconvoluted: filtered.Deconvoluted,
		}
	}
	return res, nil
}

// Extract reads trapezoid[r] - baseline[r] at r = t + trapezoidLength for
// every trigger t. Triggers whose readout index is not inside the waveform
// are dropped. The result is never nil.
func Extract(triggers []int, trapezoid, restored []float64, trapezoidLength int) []Record {
	out := make([]Record, 0, len(triggers))
	n := min(len(trapezoid), len(restored))
	for _, t := range triggers {
		r := t + trapezoidLength
		if r < 0 || r >= n {
			continue
		}
		out = append(out, Record{Trigger: t, Energy: trapezoid[r] - restored[r]})
	}
	return out
}

// Values returns the energies of records in order.
func Values(records []Record) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.Energy
	}
	return out
}
