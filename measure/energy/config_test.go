package energy

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-mwd/dsp/baseline"
	"github.com/cwbudde/algo-mwd/dsp/mwd"
	"github.com/cwbudde/algo-mwd/dsp/trigger"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.BaselineLength != cfg.TrapezoidLength+cfg.RiseTime+110 {
		t.Fatalf("BaselineLength = %d, want trapezoid+rise+110", cfg.BaselineLength)
	}
	if err := cfg.ValidateShape(); err != nil {
		t.Fatalf("ValidateShape() = %v", err)
	}
	if err := cfg.Validate(1000); err != nil {
		t.Fatalf("Validate(1000) = %v", err)
	}
}

func TestConfigStageParams(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.Trigger(); got != (trigger.Params{Delay: 8, Threshold: 150, GlitchThreshold: 75}) {
		t.Fatalf("Trigger() = %+v", got)
	}
	if got := cfg.MWD(); got != (mwd.Params{RiseTime: 50, DecayTime: 40e3, TrapezoidLength: 600}) {
		t.Fatalf("MWD() = %+v", got)
	}
	if got := cfg.Baseline(); got != (baseline.Params{FitWindow: 100, Length: 760}) {
		t.Fatalf("Baseline() = %+v", got)
	}
}

func TestConfigValidateShape(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{name: "delay", mutate: func(c *Config) { c.CFDDelay = 0 }, want: trigger.ErrInvalidDelay},
		{name: "rise", mutate: func(c *Config) { c.RiseTime = -1 }, want: mwd.ErrInvalidRiseTime},
		{name: "length", mutate: func(c *Config) { c.TrapezoidLength = 0 }, want: mwd.ErrInvalidTrapezoidLength},
		{name: "decay", mutate: func(c *Config) { c.DecayTime = -5 }, want: mwd.ErrInvalidDecayTime},
		{name: "fit window", mutate: func(c *Config) { c.BaselineFitWindow = -1 }, want: baseline.ErrInvalidFitWindow},
		{name: "baseline length", mutate: func(c *Config) { c.BaselineLength = 0 }, want: baseline.ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.ValidateShape(); !errors.Is(err, tt.want) {
				t.Fatalf("ValidateShape() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestConfigValidateLength(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(cfg.TrapezoidLength + cfg.RiseTime); !errors.Is(err, mwd.ErrWindowTooLong) {
		t.Fatalf("Validate() = %v, want ErrWindowTooLong", err)
	}
	if err := cfg.Validate(cfg.TrapezoidLength + cfg.RiseTime + 1); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}
