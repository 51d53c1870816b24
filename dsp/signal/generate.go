// Package signal synthesizes detector traces for testing the energy pipeline.
//
// A trace is a constant baseline plus charge pulses plus white noise. Each
// pulse rises linearly over RiseTime samples to its amplitude and then decays
// exponentially with the detector decay time.
package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"
)

// Errors returned by NewGenerator and the trace builders.
var (
	ErrInvalidDecayTime = errors.New("signal: decay time must be positive and finite")
	ErrInvalidParameter = errors.New("signal: invalid parameter")
)

// Generator creates deterministic traces. It is not safe for concurrent use:
// the noise source advances with every trace.
type Generator struct {
	decayTime float64
	riseTime  int
	noise     float64
	baseline  float64
	seed      int64
	rng       *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the random seed for noise and random pulses.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithRiseTime sets the pulse rise in samples. Zero gives a step onset.
func WithRiseTime(samples int) Option {
	return func(g *Generator) {
		g.riseTime = samples
	}
}

// WithNoise adds uniform white noise in [-amplitude, amplitude].
func WithNoise(amplitude float64) Option {
	return func(g *Generator) {
		g.noise = amplitude
	}
}

// WithBaseline sets a constant offset added to every sample.
func WithBaseline(offset float64) Option {
	return func(g *Generator) {
		g.baseline = offset
	}
}

// NewGenerator returns a generator for pulses decaying with decayTime
// samples.
func NewGenerator(decayTime float64, opts ...Option) (*Generator, error) {
	g := &Generator{decayTime: decayTime, seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	if !(decayTime > 0) || math.IsInf(decayTime, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDecayTime, decayTime)
	}
	if g.riseTime < 0 {
		return nil, fmt.Errorf("%w: rise time %d", ErrInvalidParameter, g.riseTime)
	}
	if !(g.noise >= 0) {
		return nil, fmt.Errorf("%w: noise amplitude %v", ErrInvalidParameter, g.noise)
	}
	g.rng = rand.New(rand.NewSource(g.seed))
	return g, nil
}

// Seed returns the configured seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// AddPulse adds one pulse starting at sample start to dst. Samples before
// start are untouched; a start beyond dst is a no-op.
func (g *Generator) AddPulse(dst []float64, start int, amplitude float64) {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(dst); i++ {
		k := i - start
		if k < g.riseTime {
			dst[i] += amplitude * float64(k+1) / float64(g.riseTime)
			continue
		}
		dst[i] += amplitude * math.Exp(-float64(k-g.riseTime)/g.decayTime)
	}
}

// WhiteNoise returns samples of uniform noise in [-amplitude, amplitude]
// drawn from the generator's source.
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: noise samples %d", ErrInvalidParameter, samples)
	}
	if !(amplitude >= 0) {
		return nil, fmt.Errorf("%w: noise amplitude %v", ErrInvalidParameter, amplitude)
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = (g.rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Build returns a trace of length samples with a pulse of amplitudes[k] at
// starts[k].
func (g *Generator) Build(length int, starts []int, amplitudes []float64) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidParameter, length)
	}
	if len(starts) != len(amplitudes) {
		return nil, fmt.Errorf("%w: %d starts, %d amplitudes", ErrInvalidParameter, len(starts), len(amplitudes))
	}

	out, err := g.WhiteNoise(g.noise, length)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i] += g.baseline
	}
	for k, s := range starts {
		g.AddPulse(out, s, amplitudes[k])
	}
	return out, nil
}

// Trace is a generated waveform together with its true pulses.
type Trace struct {
	Samples    []float64
	Starts     []int // ascending
	Amplitudes []float64
}

// Random builds a trace with the given number of pulses at uniformly drawn
// start samples and amplitudes uniform in [minAmp, maxAmp).
func (g *Generator) Random(length, pulses int, minAmp, maxAmp float64) (Trace, error) {
	if pulses < 0 || maxAmp < minAmp {
		return Trace{}, fmt.Errorf("%w: pulses=%d amplitude range [%v, %v)", ErrInvalidParameter, pulses, minAmp, maxAmp)
	}
	if length <= 0 {
		return Trace{}, fmt.Errorf("%w: length %d", ErrInvalidParameter, length)
	}

	starts := make([]int, pulses)
	amps := make([]float64, pulses)
	for k := range starts {
		starts[k] = g.rng.Intn(length)
	}
	slices.Sort(starts)
	for k := range amps {
		amps[k] = minAmp + g.rng.Float64()*(maxAmp-minAmp)
	}

	samples, err := g.Build(length, starts, amps)
	if err != nil {
		return Trace{}, err
	}
	return Trace{Samples: samples, Starts: starts, Amplitudes: amps}, nil
}
