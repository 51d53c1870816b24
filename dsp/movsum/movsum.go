package movsum

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-mwd/dsp/core"
)

// Errors returned by the moving sum.
var (
	ErrInvalidWindow  = errors.New("movsum: window must satisfy 1 <= w < len(input)")
	ErrLengthMismatch = errors.New("movsum: output length must equal input length")
)

// Validate reports whether w is a usable window for an input of length n.
func Validate(n, w int) error {
	if w < 1 || w >= n {
		return fmt.Errorf("%w: w=%d, len=%d", ErrInvalidWindow, w, n)
	}
	return nil
}

// Sum returns the trailing moving-window sum of a with window w.
// The input is not modified.
func Sum(a []float64, w int) ([]float64, error) {
	if err := Validate(len(a), w); err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	sumInto(out, a, w)
	return out, nil
}

// SumBuf is Sum writing into buf when its capacity allows, so repeated calls
// on same-length inputs do not allocate. The returned slice aliases buf in
// that case.
func SumBuf(buf, a []float64, w int) ([]float64, error) {
	if err := Validate(len(a), w); err != nil {
		return nil, err
	}
	out := core.EnsureLen(buf, len(a))
	sumInto(out, a, w)
	return out, nil
}

// SumTo writes the trailing moving-window sum of a into dst, which must have
// the same length as a and must not alias it.
func SumTo(dst, a []float64, w int) error {
	if len(dst) != len(a) {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, len(a), len(dst))
	}
	if err := Validate(len(a), w); err != nil {
		return err
	}
	sumInto(dst, a, w)
	return nil
}

// sumInto is the hot loop. The update order o[i] - a[i-w] + a[i] is part of
// the numeric contract and must not be reassociated.
func sumInto(dst, a []float64, w int) {
	n := len(a)
	core.Zero(dst[:w])

	var first float64
	for _, v := range a[:w] {
		first += v
	}
	dst[w] = first

	_ = dst[n-1] // bounds check hint
	for i := w; i < n-1; i++ {
		dst[i+1] = dst[i] - a[i-w] + a[i]
	}
}
