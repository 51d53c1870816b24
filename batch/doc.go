// Package batch analyzes many waveforms concurrently.
//
// Run fans sources out to a bounded pool of workers, each loading one
// waveform and running measure/energy.Analyze on it. A source that fails to
// load or analyze is recorded on its Item and does not stop the batch.
// Results come back in input order regardless of completion order.
//
// # Usage
//
//	files, err := trace.Dir("traces")
//	if err != nil {
//		return err
//	}
//	sources := make([]batch.Source, len(files))
//	for i, f := range files {
//		sources[i] = f
//	}
//	items, err := batch.Run(ctx, sources, energy.DefaultConfig(),
//		batch.WithWorkers(8), batch.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	sum := batch.Summarize(items)
//	fmt.Println(sum.Energies, sum.Mean)
package batch
