// Command mwdspectrum builds an energy spectrum from a directory of traces.
//
// Usage:
//
//	mwdspectrum [flags] [trace-file ...]
//
// Every trace in -dir (and every file named on the command line) is run
// through trigger detection, moving window deconvolution and baseline
// restoration. The energies of all traces are written one per line to -out,
// and optionally with their source and trigger to a parquet file.
//
// Examples:
//
//	mwdspectrum -dir traces -out energies.txt
//	mwdspectrum -config run.json -workers 8 -parquet energies.parquet
//	mwdspectrum wf_0001.txt wf_0002.txt
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-mwd/batch"
	"github.com/cwbudde/algo-mwd/internal/config"
	"github.com/cwbudde/algo-mwd/internal/energyio"
	"github.com/cwbudde/algo-mwd/internal/logging"
	"github.com/cwbudde/algo-mwd/trace"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("mwdspectrum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "JSON configuration file")
	dir := fs.String("dir", "", "directory of trace files (overrides trace_dir)")
	out := fs.String("out", "", "energy text output (overrides energy_out)")
	parquetOut := fs.String("parquet", "", "parquet output (overrides parquet_out)")
	workers := fs.Int("workers", 0, "concurrent traces (overrides num_workers)")
	level := fs.String("log-level", "", "log level (overrides log_level)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: mwdspectrum [flags] [trace-file ...]\n\n")
		fmt.Fprintf(stderr, "Builds an energy spectrum from detector traces.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  mwdspectrum -dir traces -out energies.txt\n")
		fmt.Fprintf(stderr, "  mwdspectrum -config run.json -workers 8 -parquet energies.parquet\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *dir != "" {
		cfg.TraceDir = *dir
	}
	if *out != "" {
		cfg.EnergyOut = *out
	}
	if *parquetOut != "" {
		cfg.ParquetOut = *parquetOut
	}
	if *workers > 0 {
		cfg.NumWorkers = *workers
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

	var sources []batch.Source
	if cfg.TraceDir != "" {
		files, err := trace.Dir(cfg.TraceDir)
		if err != nil {
			return err
		}
		for _, f := range files {
			sources = append(sources, f)
		}
	}
	for _, path := range fs.Args() {
		sources = append(sources, trace.File{Path: path})
	}
	if len(sources) == 0 {
		fs.Usage()
		return errors.New("no traces given: set -dir or name trace files")
	}

	items, err := batch.Run(ctx, sources, cfg.Pipeline(),
		batch.WithWorkers(cfg.NumWorkers),
		batch.WithLogger(logger))
	if err != nil {
		return err
	}

	if err := energyio.WriteTextFile(cfg.EnergyOut, batch.Energies(items)); err != nil {
		return err
	}
	if cfg.ParquetOut != "" {
		var rows []energyio.Row
		for _, it := range items {
			if it.Err == nil {
				rows = append(rows, energyio.Rows(it.Name, it.Result.Energies)...)
			}
		}
		if err := energyio.WriteParquetFile(cfg.ParquetOut, rows); err != nil {
			return err
		}
	}

	sum := batch.Summarize(items)
	logger.Info("spectrum written",
		zap.String("energy_out", cfg.EnergyOut),
		zap.String("parquet_out", cfg.ParquetOut),
		zap.Int("waveforms", sum.Waveforms),
		zap.Int("failed", sum.Failed),
		zap.Int("without_triggers", sum.WithoutTriggers),
		zap.Int("energies", sum.Energies),
		zap.Float64("mean", sum.Mean),
		zap.Float64("stddev", sum.StdDev),
		zap.Float64("min", sum.Min),
		zap.Float64("max", sum.Max))
	return nil
}
