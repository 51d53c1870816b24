// Package config loads the JSON run configuration of the command-line tools.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-mwd/measure/energy"
)

// Configuration is the on-disk run configuration.
type Configuration struct {
	CFDDelay              int     `json:"cfd_delay"`
	CFDThreshold          float64 `json:"cfd_threshold"`
	GlitchFilterThreshold float64 `json:"glitch_filter_threshold"`
	TrapezoidLength       int     `json:"trapezoid_length"`
	RiseTime              int     `json:"rise_time"`
	DecayTime             float64 `json:"decay_time"`
	BaselineFitWindow     int     `json:"baseline_fit_window"`
	BaselineExtraLength   int     `json:"baseline_extra_length"`
	// BaselineLength overrides the derived clamp length when positive.
	BaselineLength int `json:"baseline_length"`

	NumWorkers int    `json:"num_workers"`
	TraceDir   string `json:"trace_dir"`
	EnergyOut  string `json:"energy_out"`
	ParquetOut string `json:"parquet_out"`
	LogLevel   string `json:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Configuration {
	def := energy.DefaultConfig()
	return Configuration{
		CFDDelay:              def.CFDDelay,
		CFDThreshold:          def.CFDThreshold,
		GlitchFilterThreshold: def.GlitchFilterThreshold,
		TrapezoidLength:       def.TrapezoidLength,
		RiseTime:              def.RiseTime,
		DecayTime:             def.DecayTime,
		BaselineFitWindow:     def.BaselineFitWindow,
		BaselineExtraLength:   def.BaselineLength - def.TrapezoidLength - def.RiseTime,
		NumWorkers:            1,
		EnergyOut:             "energies.txt",
		LogLevel:              "info",
	}
}

// Load reads the configuration at path over the defaults. Keys missing from
// the file keep their default value. An empty path returns Default().
func Load(path string) (Configuration, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Pipeline converts c into the analysis parameters. The baseline clamp
// length is TrapezoidLength+RiseTime+BaselineExtraLength unless
// BaselineLength is set.
func (c Configuration) Pipeline() energy.Config {
	length := c.BaselineLength
	if length <= 0 {
		length = c.TrapezoidLength + c.RiseTime + c.BaselineExtraLength
	}
	return energy.Config{
		CFDDelay:              c.CFDDelay,
		CFDThreshold:          c.CFDThreshold,
		GlitchFilterThreshold: c.GlitchFilterThreshold,
		TrapezoidLength:       c.TrapezoidLength,
		RiseTime:              c.RiseTime,
		DecayTime:             c.DecayTime,
		BaselineFitWindow:     c.BaselineFitWindow,
		BaselineLength:        length,
	}
}

// Log writes every setting at info level.
func (c Configuration) Log(logger *zap.Logger) {
	logger.Info("configuration",
		zap.String("module", "config"),
		zap.Int("cfd_delay", c.CFDDelay),
		zap.Float64("cfd_threshold", c.CFDThreshold),
		zap.Float64("glitch_filter_threshold", c.GlitchFilterThreshold),
		zap.Int("trapezoid_length", c.TrapezoidLength),
		zap.Int("rise_time", c.RiseTime),
		zap.Float64("decay_time", c.DecayTime),
		zap.Int("baseline_fit_window", c.BaselineFitWindow),
		zap.Int("baseline_length", c.Pipeline().BaselineLength),
		zap.Int("num_workers", c.NumWorkers),
		zap.String("trace_dir", c.TraceDir),
		zap.String("energy_out", c.EnergyOut),
		zap.String("parquet_out", c.ParquetOut),
		zap.String("log_level", c.LogLevel),
	)
}
