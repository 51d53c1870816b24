// Package mwd implements moving-window deconvolution: a pole-cancellation
// stage that turns an exponentially decaying detector pulse into a step of
// length TrapezoidLength, followed by a RiseTime moving average that shapes
// it into a flat-top trapezoid.
//
// With L = TrapezoidLength, M = RiseTime and tau = DecayTime:
//
//	deconvoluted[i] = x[i] + S_L(x)[i]/tau - x[i-L]   for i >= L, else 0
//	trapezoid[i]    = S_M(deconvoluted)[i] / M
//
// where S_w is the trailing moving sum from package movsum. The plateau of
// the trapezoid is proportional to the charge deposited by the pulse and
// only weakly dependent on the assumed tau.
//
// Samples before L+M are warm-up and must not be read out. Samples before L
// are exactly zero.
package mwd
