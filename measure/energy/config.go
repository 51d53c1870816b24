package energy

import (
	"github.com/cwbudde/algo-mwd/dsp/baseline"
	"github.com/cwbudde/algo-mwd/dsp/mwd"
	"github.com/cwbudde/algo-mwd/dsp/trigger"
)

// Config is the complete parameter set for one analysis run.
type Config struct {
	CFDDelay              int
	CFDThreshold          float64
	GlitchFilterThreshold float64
	TrapezoidLength       int
	RiseTime              int
	DecayTime             float64
	BaselineFitWindow     int
	BaselineLength        int
}

// DefaultConfig returns the parameters used for spectrum runs on the
// reference detector traces.
func DefaultConfig() Config {
	const (
		trapezoidLength = 600
		riseTime        = 50
		baselineExtra   = 110
	)
	return Config{
		CFDDelay:              8,
		CFDThreshold:          150,
		GlitchFilterThreshold: 75,
		TrapezoidLength:       trapezoidLength,
		RiseTime:              riseTime,
		DecayTime:             40e3,
		BaselineFitWindow:     100,
		BaselineLength:        trapezoidLength + riseTime + baselineExtra,
	}
}

// Trigger returns the trigger stage parameters.
func (c Config) Trigger() trigger.Params {
	return trigger.Params{
		Delay:           c.CFDDelay,
		Threshold:       c.CFDThreshold,
		GlitchThreshold: c.GlitchFilterThreshold,
	}
}

// MWD returns the deconvolution stage parameters.
func (c Config) MWD() mwd.Params {
	return mwd.Params{
		RiseTime:        c.RiseTime,
		DecayTime:       c.DecayTime,
		TrapezoidLength: c.TrapezoidLength,
	}
}

// Baseline returns the baseline restoration parameters.
func (c Config) Baseline() baseline.Params {
	return baseline.Params{
		FitWindow: c.BaselineFitWindow,
		Length:    c.BaselineLength,
	}
}

// ValidateShape checks every constraint that does not depend on the
// waveform length. Batch runs call it once before loading any waveform.
func (c Config) ValidateShape() error {
	// Any length > delay satisfies the trigger's range check.
	if err := c.Trigger().Validate(c.CFDDelay + 1); err != nil {
		return err
	}
	if err := c.MWD().ValidateShape(); err != nil {
		return err
	}
	return c.Baseline().Validate()
}

// Validate checks c against a waveform of n samples.
func (c Config) Validate(n int) error {
	if err := c.Trigger().Validate(n); err != nil {
		return err
	}
	if err := c.MWD().Validate(n); err != nil {
		return err
	}
	return c.Baseline().Validate()
}
