// Package energyio persists energy readouts.
//
// Text output holds one energy per line in "%.18e" notation, the format
// histogramming scripts consume. Parquet output keeps the source and trigger
// of every readout next to its energy.
package energyio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/cwbudde/algo-mwd/measure/energy"
)

// Row is one energy readout in columnar form.
type Row struct {
	Source  string  `parquet:"source,dict"`
	Trigger int64   `parquet:"trigger"`
	Energy  float64 `parquet:"energy"`
}

// Rows tags records with the source they were read from.
func Rows(source string, records []energy.Record) []Row {
	rows := make([]Row, len(records))
	for i, r := range records {
		rows[i] = Row{Source: source, Trigger: int64(r.Trigger), Energy: r.Energy}
	}
	return rows
}

// WriteText writes one energy per line.
func WriteText(w io.Writer, energies []float64) error {
	bw := bufio.NewWriter(w)
	for _, e := range energies {
		if _, err := fmt.Fprintf(bw, "%.18e\n", e); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteTextFile creates path and writes energies to it.
func WriteTextFile(path string, energies []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteText(f, energies)
}

// WriteParquet writes rows as a Snappy-compressed parquet file.
func WriteParquet(w io.Writer, rows []Row) error {
	pw := parquet.NewGenericWriter[Row](w, parquet.Compression(&parquet.Snappy))
	if _, err := pw.Write(rows); err != nil {
		_ = pw.Close()
		return fmt.Errorf("energyio: write parquet: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("energyio: close parquet: %w", err)
	}
	return nil
}

// WriteParquetFile creates path and writes rows to it.
func WriteParquetFile(path string, rows []Row) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteParquet(f, rows)
}

// ReadParquet reads every row of a parquet file of the given size.
func ReadParquet(r io.ReaderAt, size int64) ([]Row, error) {
	rows, err := parquet.Read[Row](r, size)
	if err != nil {
		return nil, fmt.Errorf("energyio: read parquet: %w", err)
	}
	return rows, nil
}
