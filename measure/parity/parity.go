package parity

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-mwd/dsp/movsum"
	"github.com/cwbudde/algo-mwd/measure/energy"
)

// NumColumns is the number of columns in a parity table.
const NumColumns = 8

// maskValue marks set samples in the trigger and readout columns.
const maskValue = 111

// Column names, in table order.
var Names = [NumColumns]string{
	"difference",
	"sum/decay",
	"deconvoluted",
	"trapezoid",
	"cfd",
	"baseline",
	"trigger",
	"readout",
}

// Errors returned by this package.
var (
	ErrNoDiagnostics  = errors.New("parity: result was computed without diagnostics")
	ErrMalformed      = errors.New("parity: malformed table")
	ErrLengthMismatch = errors.New("parity: tables differ in length")
)

// Columns holds one parity table, column-major.
type Columns [NumColumns][]float64

// Len returns the number of rows.
func (c Columns) Len() int {
	return len(c[0])
}

// Deviation summarises the difference between one column and its reference.
type Deviation struct {
	MaxAbs float64 // largest absolute difference
	Index  int     // row of MaxAbs, -1 for empty tables
	Value  float64 // value under test at Index
	RMS    float64 // root-mean-square difference
}

// FromResult builds the parity table for waveform from an analysis that was
// run with energy.WithDiagnostics.
func FromResult(waveform []float64, cfg energy.Config, res energy.Result) (Columns, error) {
	if res.Diagnostics == nil {
		return Columns{}, ErrNoDiagnostics
	}
	n := len(waveform)
	l := cfg.TrapezoidLength

	var c Columns
	for k := range c {
		c[k] = make([]float64, n)
	}

	for i := l; i < n; i++ {
		c[0][i] = waveform[i] - waveform[i-l]
	}

	sums, err := movsum.SumBuf(c[1], res.Diagnostics.Deconvoluted, cfg.RiseTime)
	if err != nil {
		return Columns{}, err
	}
	for i := range sums {
		sums[i] /= cfg.DecayTime
	}

	copy(c[2], res.Diagnostics.Deconvoluted)
	copy(c[3], res.Trapezoid)
	copy(c[4][cfg.CFDDelay:], res.Diagnostics.Filtered)
	copy(c[5], res.Baseline)

	for i, m := range res.Mask {
		if !m {
			continue
		}
		c[6][i] = maskValue
		if i+l < n {
			c[7][i+l] = maskValue
		}
	}
	return c, nil
}

// Write writes c as a tab-separated table.
func Write(w io.Writer, c Columns) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < c.Len(); i++ {
		_, err := fmt.Fprintf(bw, "%10.5f\t%10.5f\t%10.5f\t%10.5f\t%10.5f\t%10.5f\t%3d\t%3d\n",
			c[0][i], c[1][i], c[2][i], c[3][i], c[4][i], c[5][i], int(c[6][i]), int(c[7][i]))
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read parses a table written by Write or by the reference implementation.
// Blank lines are skipped.
func Read(r io.Reader) (Columns, error) {
	var c Columns
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != NumColumns {
			return Columns{}, fmt.Errorf("%w: line %d has %d columns, want %d", ErrMalformed, line, len(fields), NumColumns)
		}
		for k, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return Columns{}, fmt.Errorf("%w: line %d column %d: %v", ErrMalformed, line, k, err)
			}
			c[k] = append(c[k], v)
		}
	}
	if err := sc.Err(); err != nil {
		return Columns{}, err
	}
	return c, nil
}

// Compare returns the per-column deviation of got from ref.
func Compare(got, ref Columns) ([NumColumns]Deviation, error) {
	var devs [NumColumns]Deviation
	n := got.Len()
	for k := range got {
		if len(got[k]) != n || len(ref[k]) != n {
			return devs, fmt.Errorf("%w: column %s has %d rows, reference %d", ErrLengthMismatch, Names[k], len(got[k]), len(ref[k]))
		}
	}
	if n == 0 {
		for k := range devs {
			devs[k].Index = -1
		}
		return devs, nil
	}

	diff := make([]float64, n)
	sq := make([]float64, n)
	for k := range got {
		floats.SubTo(diff, got[k], ref[k])
		vecmath.MulBlock(sq, diff, diff)
		for i, d := range diff {
			diff[i] = math.Abs(d)
		}
		idx := floats.MaxIdx(diff)
		devs[k] = Deviation{
			MaxAbs: diff[idx],
			Index:  idx,
			Value:  got[k][idx],
			RMS:    math.Sqrt(floats.Sum(sq) / float64(n)),
		}
	}
	return devs, nil
}
