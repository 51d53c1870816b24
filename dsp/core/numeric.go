package core

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps, using a relative
// tolerance once the magnitudes exceed 1.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// FirstNonFinite returns the index of the first NaN or ±Inf value in buf.
// It returns -1 when every value is finite.
//
// Recursive running sums never recover from a poisoned sample: once NaN or
// Inf enters the accumulator every later output inherits it. Callers use this
// to report the poisoning instead of masking it.
func FirstNonFinite(buf []float64) int {
	for i, v := range buf {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}
	return -1
}
