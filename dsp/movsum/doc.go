// Package movsum provides the trailing moving-window sum shared by the
// moving-window deconvolution stages.
//
// For an input a of length N and a window w (1 <= w < N) the output o has
// length N with
//
//	o[i] = 0                          for i < w
//	o[w] = a[0] + ... + a[w-1]
//	o[i+1] = o[i] - a[i-w] + a[i]     for w <= i <= N-2
//
// so that o[i] equals the sum of a[i-w:i] for every i >= w. Each output
// after the first costs one subtraction and one addition, independent of w.
//
// # Numerics
//
// The recursive update accumulates rounding error over very long inputs, and
// a single NaN or ±Inf sample poisons every later output. Both properties are
// inherited from the reference implementation that downstream parity checks
// are compared against, so they are kept as-is. Use [core.FirstNonFinite] to
// detect poisoning.
//
// # Usage
//
//	sums, err := movsum.Sum(waveform, 600)
//
// [core.FirstNonFinite]: github.com/cwbudde/algo-mwd/dsp/core.FirstNonFinite
package movsum
