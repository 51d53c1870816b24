// Package parity writes and compares the per-sample "local variables" table
// used to check the pipeline against a trusted reference implementation.
//
// The table has one row per waveform sample and eight columns:
//
//	0 difference     x[i] - x[i-L] (0 for i < L)
//	1 sum/decay      S_M(deconvoluted)[i] / tau
//	2 deconvoluted   pole-cancelled waveform
//	3 trapezoid      shaped output
//	4 cfd            glitch-filtered trigger signal, shifted right by the delay
//	5 baseline       restored baseline
//	6 trigger        trigger mask * 111
//	7 readout        readout mask * 111 (trigger mask shifted right by L)
//
// with L = TrapezoidLength, M = RiseTime and tau = DecayTime. Rows are
// tab-separated with six %10.5f columns followed by two %3d columns, the
// layout the reference tables are stored in.
//
// # Usage
//
//	res, _ := energy.Analyze(x, cfg, energy.WithDiagnostics())
//	cols, _ := parity.FromResult(x, cfg, res)
//	ref, _ := parity.Read(referenceFile)
//	devs, _ := parity.Compare(cols, ref)
package parity
