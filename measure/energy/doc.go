// Package energy extracts pulse arrival times and energies from a single
// detector waveform.
//
// [Analyze] is a pure function of the waveform and a [Config]: it finds the
// triggers, builds the moving-window-deconvolution trapezoid, restores the
// baseline around each trigger, and reads the trapezoid minus baseline
// TrapezoidLength samples after every trigger.
//
// All parameters are validated against the waveform length before any
// processing starts. Triggers whose readout sample falls past the end of the
// waveform stay in [Result.Triggers] but produce no [Record].
//
// # Usage
//
//	res, err := energy.Analyze(waveform, energy.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	for _, r := range res.Energies {
//		fmt.Println(r.Trigger, r.Energy)
//	}
//
// Pass [WithDiagnostics] to keep the intermediate trigger and deconvolution
// signals on the result.
package energy
