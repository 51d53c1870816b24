// Command mwdtrace writes synthetic detector traces.
//
// Usage:
//
//	mwdtrace [flags] -dir out/
//
// Each trace carries -pulses pulses at random positions with amplitudes
// drawn uniformly from [-min, -max), decaying with the configured decay
// time, on top of uniform noise. The output can be fed to mwdspectrum.
//
// Examples:
//
//	mwdtrace -dir traces -count 100
//	mwdtrace -dir traces -count 10 -pulses 3 -noise 5 -rise 20 -seed 7
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-mwd/dsp/signal"
	"github.com/cwbudde/algo-mwd/internal/config"
	"github.com/cwbudde/algo-mwd/internal/logging"
	"github.com/cwbudde/algo-mwd/trace"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("mwdtrace", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "JSON configuration file (decay_time, log_level)")
	dir := fs.String("dir", "", "output directory")
	count := fs.Int("count", 10, "number of traces")
	length := fs.Int("length", 10000, "samples per trace")
	pulses := fs.Int("pulses", 1, "pulses per trace")
	minAmp := fs.Float64("min", 500, "minimum pulse amplitude")
	maxAmp := fs.Float64("max", 1500, "maximum pulse amplitude")
	noise := fs.Float64("noise", 0, "uniform noise amplitude")
	rise := fs.Int("rise", 0, "pulse rise in samples")
	baseline := fs.Float64("baseline", 0, "constant baseline offset")
	seed := fs.Int64("seed", 1, "random seed")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: mwdtrace [flags] -dir out/\n\n")
		fmt.Fprintf(stderr, "Writes synthetic detector traces.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dir == "" {
		fs.Usage()
		return errors.New("-dir is required")
	}
	if *count < 0 {
		return fmt.Errorf("-count must be >= 0: %d", *count)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	gen, err := signal.NewGenerator(cfg.DecayTime,
		signal.WithSeed(*seed),
		signal.WithNoise(*noise),
		signal.WithRiseTime(*rise),
		signal.WithBaseline(*baseline))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*dir, 0o755); err != nil {
		return err
	}

	for i := range *count {
		tr, err := gen.Random(*length, *pulses, *minAmp, *maxAmp)
		if err != nil {
			return err
		}
		path := filepath.Join(*dir, fmt.Sprintf("wf_%04d.txt", i))
		if err := trace.WriteFile(path, tr.Samples); err != nil {
			return err
		}
		logger.Debug("trace written",
			zap.String("trace", path),
			zap.Ints("starts", tr.Starts),
			zap.Float64s("amplitudes", tr.Amplitudes))
	}

	logger.Info("traces written",
		zap.String("dir", *dir),
		zap.Int("count", *count),
		zap.Int64("seed", *seed))
	return nil
}
