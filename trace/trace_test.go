package trace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSingleColumn(t *testing.T) {
	got, err := Parse(strings.NewReader("1.5\n-2\n\n3e2\n"))
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, -2, 300}, got)
}

func TestParseTwoColumns(t *testing.T) {
	in := "# sample\tvalue\n0\t10\n1\t11.25\n2\t  12\n"

	got, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []float64{10, 11.25, 12}, got)
}

func TestParseMalformed(t *testing.T) {
	tests := map[string]string{
		"empty":            "",
		"comments only":    "# nothing\n\n",
		"three columns":    "1 2 3\n",
		"inconsistent":     "0\t1\n2\n",
		"not a number":     "0\tabc\n",
		"bad sample index": "x\t1\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(in))
			require.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestReadFileWrapsPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("0\tnope\n"), 0o644))

	_, err := ReadFile(path)
	require.ErrorIs(t, err, ErrMalformed)
	require.Contains(t, err.Error(), path)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("0\t2\n1\t3\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("5\n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	files, err := Dir(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.Equal(t, filepath.Join(dir, "a.txt"), files[0].Name())
	require.Equal(t, filepath.Join(dir, "b.txt"), files[1].Name())

	samples, err := files[1].Load()
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3}, samples)
}

func TestWriteRoundTrip(t *testing.T) {
	in := []float64{0, 1.25, -3e-9, 998.123456789012, 1e300}

	var b strings.Builder
	require.NoError(t, Write(&b, in))
	require.True(t, strings.HasPrefix(b.String(), "0\t0\n1\t1.25\n"))

	got, err := Parse(strings.NewReader(b.String()))
	require.NoError(t, err)
	require.Equal(t, in, got)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wf.txt")
	require.NoError(t, WriteFile(path, []float64{4, 5}))

	got, err := File{Path: path}.Load()
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5}, got)
}
