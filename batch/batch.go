package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/cwbudde/algo-mwd/measure/energy"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrPanic wraps a panic recovered while processing a source.
var ErrPanic = errors.New("batch: worker panicked")

// Source supplies one waveform.
type Source interface {
	Name() string
	Load() ([]float64, error)
}

// Item is the outcome for one source.
type Item struct {
	Name   string
	Result energy.Result
	// Err is set when the source failed to load or analyze, or was never
	// scheduled because the context ended.
	Err error
}

// Option configures Run.
type Option func(*options)

type options struct {
	workers  int
	logger   *zap.Logger
	analysis []energy.Option
}

// WithWorkers bounds the number of concurrently processed sources. Values
// below 1 select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets the logger used to report per-source failures and batch
// progress. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithAnalysisOptions forwards options to every energy.Analyze call.
func WithAnalysisOptions(opts ...energy.Option) Option {
	return func(o *options) {
		o.analysis = append(o.analysis, opts...)
	}
}

// Run analyzes every source with cfg. The returned slice has one Item per
// source, in input order.
//
// Run fails up front if cfg has an invalid shape. Once processing starts the
// only batch-level error is cancellation of ctx before every source was
// scheduled: the unscheduled sources then carry ctx.Err() and Run returns it
// alongside the partial items. A cancellation arriving after the last source
// was scheduled leaves every item with its own outcome and Run returns nil.
func Run(ctx context.Context, sources []Source, cfg energy.Config, opts ...Option) ([]Item, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	if err := cfg.ValidateShape(); err != nil {
		return nil, err
	}

	items := make([]Item, len(sources))
	for i, src := range sources {
		items[i].Name = src.Name()
	}

	start := time.Now()
	o.logger.Info("batch started",
		zap.Int("sources", len(sources)),
		zap.Int("workers", o.workers))

	var g errgroup.Group
	g.SetLimit(o.workers)

	scheduled := 0
	for i, src := range sources {
		if ctx.Err() != nil {
			break
		}
		scheduled++
		g.Go(func() error {
			items[i].Result, items[i].Err = process(src, cfg, o.analysis)
			if items[i].Err != nil {
				o.logger.Warn("source failed",
					zap.String("source", items[i].Name),
					zap.Error(items[i].Err))
				return nil
			}
			o.logger.Debug("source analyzed",
				zap.String("source", items[i].Name),
				zap.Int("triggers", len(items[i].Result.Triggers)),
				zap.Int("energies", len(items[i].Result.Energies)))
			return nil
		})
	}
	_ = g.Wait()

	// Cancellation only matters if it left sources unscheduled.
	if scheduled < len(sources) {
		err := ctx.Err()
		for i := scheduled; i < len(items); i++ {
			items[i].Err = err
		}
		o.logger.Warn("batch cancelled",
			zap.Int("processed", scheduled),
			zap.Int("sources", len(sources)),
			zap.Error(err))
		return items, err
	}

	o.logger.Info("batch finished",
		zap.Int("sources", len(sources)),
		zap.Duration("elapsed", time.Since(start)))
	return items, nil
}

func process(src Source, cfg energy.Config, opts []energy.Option) (res energy.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = energy.Result{}, fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()

	waveform, err := src.Load()
	if err != nil {
		return energy.Result{}, fmt.Errorf("load: %w", err)
	}
	res, err = energy.Analyze(waveform, cfg, opts...)
	if err != nil {
		return energy.Result{}, fmt.Errorf("analyze: %w", err)
	}
	return res, nil
}
