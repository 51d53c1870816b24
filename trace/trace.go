// Package trace loads detector waveforms stored as text.
//
// A trace file holds one sample per line, either as a single value column or
// as two columns (sample number, value) separated by tabs or spaces. Blank
// lines and lines starting with '#' are ignored.
package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrMalformed is returned for traces that cannot be parsed.
var ErrMalformed = errors.New("trace: malformed trace")

// Parse reads a text trace from r and returns its sample values.
func Parse(r io.Reader) ([]float64, error) {
	var (
		samples []float64
		columns int
		line    int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if columns == 0 {
			if len(fields) > 2 {
				return nil, fmt.Errorf("%w: line %d has %d columns, want 1 or 2", ErrMalformed, line, len(fields))
			}
			columns = len(fields)
		}
		if len(fields) != columns {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", ErrMalformed, line, len(fields), columns)
		}

		var value float64
		for k, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %d: %v", ErrMalformed, line, k+1, err)
			}
			value = v
		}
		samples = append(samples, value)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no samples", ErrMalformed)
	}
	return samples, nil
}

// ReadFile parses the trace stored at path.
func ReadFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	samples, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}

// Write writes samples in the two-column form, sample number and value
// separated by a tab. Values are formatted to round-trip exactly.
func Write(w io.Writer, samples []float64) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for i, v := range samples {
		buf = strconv.AppendInt(buf[:0], int64(i), 10)
		buf = append(buf, '\t')
		buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile creates path and writes samples to it.
func WriteFile(path string, samples []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(f, samples)
}

// File is a trace on disk. It satisfies batch.Source.
type File struct {
	Path string
}

// Name returns the file path.
func (f File) Name() string {
	return f.Path
}

// Load reads and parses the file.
func (f File) Load() ([]float64, error) {
	return ReadFile(f.Path)
}

// Dir lists the regular files in dir in lexical order. Subdirectories are not
// descended into.
func Dir(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := make([]File, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		files = append(files, File{Path: filepath.Join(dir, e.Name())})
	}
	return files, nil
}
