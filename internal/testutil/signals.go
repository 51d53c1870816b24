package testutil

import (
	"math"
	"math/rand"
)

// Step returns a waveform that is zero before start and amplitude from start on.
func Step(length, start int, amplitude float64) []float64 {
	out := make([]float64, length)
	for i := max(start, 0); i < length; i++ {
		out[i] = amplitude
	}
	return out
}

// ExponentialPulse returns a single detector pulse: an instantaneous rise at
// start followed by an exponential decay with time constant decayTime samples.
func ExponentialPulse(length, start int, amplitude, decayTime float64) []float64 {
	out := make([]float64, length)
	AddExponentialPulse(out, start, amplitude, decayTime)
	return out
}

// AddExponentialPulse superimposes an exponentially decaying pulse onto dst.
func AddExponentialPulse(dst []float64, start int, amplitude, decayTime float64) {
	for i := max(start, 0); i < len(dst); i++ {
		dst[i] += amplitude * math.Exp(-float64(i-start)/decayTime)
	}
}

// PulseTrain returns the sum of exponential pulses starting at starts, each
// with the matching amplitude.
func PulseTrain(length int, starts []int, amplitudes []float64, decayTime float64) []float64 {
	out := make([]float64, length)
	for k, s := range starts {
		AddExponentialPulse(out, s, amplitudes[k], decayTime)
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
