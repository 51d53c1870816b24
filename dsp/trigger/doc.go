// Package trigger implements a constant-fraction style leading-edge trigger
// for sampled detector waveforms.
//
// The trigger path has three stages:
//
//   - [Difference]: a delay-line difference |x[i+delay] - x[i]|, an edge
//     indicator that is robust to the pulse amplitude.
//   - [GlitchFilter]: a single-state hold filter. The held level only moves
//     to a new sample when that sample departs from it by more than the
//     glitch threshold.
//   - [RisingEdges]: marks held-index i+1 when the held signal crosses the
//     trigger threshold upwards between i and i+1. Index 0 never fires.
//
// [Find] runs the three stages and shifts the fired indices by the delay to
// map them back into waveform coordinates.
//
// # Usage
//
//	res, err := trigger.Find(waveform, trigger.Params{Delay: 8, Threshold: 150, GlitchThreshold: 75})
//	for _, t := range res.Indices {
//		...
//	}
package trigger
