// Command mwdparity writes the eight-column diagnostic table of one trace and
// optionally compares it against a reference table.
//
// Usage:
//
//	mwdparity [flags] -trace wf.txt
//
// Columns are written tab-separated in the order: difference, sum/decay,
// deconvoluted, trapezoid, cfd, baseline, trigger, readout. With -reference
// the per-column deviations are printed as a table.
//
// Examples:
//
//	mwdparity -trace wf.txt -out table.txt
//	mwdparity -trace wf.txt -reference reference.txt
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-mwd/internal/config"
	"github.com/cwbudde/algo-mwd/internal/logging"
	"github.com/cwbudde/algo-mwd/measure/energy"
	"github.com/cwbudde/algo-mwd/measure/parity"
	"github.com/cwbudde/algo-mwd/trace"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("mwdparity", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "JSON configuration file")
	tracePath := fs.String("trace", "", "trace file to analyze")
	out := fs.String("out", "", "write the table to this file")
	reference := fs.String("reference", "", "reference table to compare against")
	level := fs.String("log-level", "", "log level (overrides log_level)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: mwdparity [flags] -trace wf.txt\n\n")
		fmt.Fprintf(stderr, "Writes the diagnostic table of one trace.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *tracePath == "" {
		fs.Usage()
		return errors.New("-trace is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *level != "" {
		cfg.LogLevel = *level
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	cfg.Log(logger)

	waveform, err := trace.ReadFile(*tracePath)
	if err != nil {
		return err
	}
	pipeline := cfg.Pipeline()
	res, err := energy.Analyze(waveform, pipeline, energy.WithDiagnostics())
	if err != nil {
		return fmt.Errorf("%s: %w", *tracePath, err)
	}
	cols, err := parity.FromResult(waveform, pipeline, res)
	if err != nil {
		return err
	}
	logger.Info("trace analyzed",
		zap.String("trace", *tracePath),
		zap.Int("samples", len(waveform)),
		zap.Ints("triggers", res.Triggers))

	if *out != "" {
		if err := writeTable(*out, cols); err != nil {
			return err
		}
	}

	if *reference == "" {
		if *out == "" {
			return parity.Write(stdout, cols)
		}
		return nil
	}

	f, err := os.Open(*reference)
	if err != nil {
		return err
	}
	defer f.Close()
	ref, err := parity.Read(f)
	if err != nil {
		return fmt.Errorf("%s: %w", *reference, err)
	}
	devs, err := parity.Compare(cols, ref)
	if err != nil {
		return err
	}
	return printDeviations(stdout, devs)
}

func writeTable(path string, cols parity.Columns) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return parity.Write(f, cols)
}

func printDeviations(w io.Writer, devs [parity.NumColumns]parity.Deviation) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "COLUMN\tMAX ABS\tROW\tVALUE\tRMS\n")
	for k, d := range devs {
		fmt.Fprintf(tw, "%s\t%.6g\t%d\t%.6g\t%.6g\n", parity.Names[k], d.MaxAbs, d.Index, d.Value, d.RMS)
	}
	return tw.Flush()
}
