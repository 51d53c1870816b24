package energyio

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-mwd/measure/energy"
)

func TestRows(t *testing.T) {
	got := Rows("wf.txt", []energy.Record{{Trigger: 10, Energy: 1.5}, {Trigger: 900, Energy: -2}})
	want := []Row{
		{Source: "wf.txt", Trigger: 10, Energy: 1.5},
		{Source: "wf.txt", Trigger: 900, Energy: -2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Rows mismatch (-want +got):\n%s", diff)
	}
	require.Empty(t, Rows("x", nil))
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, []float64{1000, 0.5, -3}))

	require.Equal(t,
		"1.000000000000000000e+03\n5.000000000000000000e-01\n-3.000000000000000000e+00\n",
		buf.String())
}

func TestWriteTextFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "energies.txt")
	in := []float64{998.1234567890123, 1e-7, 0}
	require.NoError(t, WriteTextFile(path, in))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Fields(string(data))
	require.Len(t, lines, len(in))
	for i, l := range lines {
		v, err := strconv.ParseFloat(l, 64)
		require.NoError(t, err)
		require.Equal(t, in[i], v)
	}
}

func TestParquetRoundTrip(t *testing.T) {
	rows := []Row{
		{Source: "a.txt", Trigger: 1000, Energy: 999.5},
		{Source: "a.txt", Trigger: 4000, Energy: 1200.25},
		{Source: "b.txt", Trigger: 750, Energy: 42},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteParquet(&buf, rows))

	got, err := ReadParquet(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	if diff := cmp.Diff(rows, got); diff != "" {
		t.Fatalf("parquet round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteParquetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "energies.parquet")
	rows := []Row{{Source: "x", Trigger: 1, Energy: 2}}
	require.NoError(t, WriteParquetFile(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	got, err := ReadParquet(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Equal(t, rows, got)
}

func TestReadParquetRejectsGarbage(t *testing.T) {
	data := []byte("not a parquet file")
	_, err := ReadParquet(bytes.NewReader(data), int64(len(data)))
	require.Error(t, err)
}
