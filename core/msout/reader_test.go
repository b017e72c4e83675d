package msout

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const twoDatasets = `ms 3 2 -t 4.0
27462 18918 15914

//
segsites: 2
positions: 0.2046 0.8877
10
01
11

//
segsites: 0`

const annotated = `ms 2 1 -t 4.0 -r 10.0 2501
59123

//
segsites: 2
prob: 0.0313
positions: 0.1084 0.9233
10
01
`

// writeGz creates a gzipped stream file with the provided data, returns the path.
func writeGz(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(os.TempDir(), fmt.Sprintf("test-%d.ms.gz", time.Now().UnixNano()))
	fh, err := os.Create(path)
	require.NoError(t, err)
	gw := gzip.NewWriter(fh)
	_, err = gw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())
	return path
}

func TestReaderHeader(t *testing.T) {
	r, err := NewReader(strings.NewReader(twoDatasets))
	require.NoError(t, err)
	require.Equal(t, 3, r.SampleSize())
	require.Equal(t, 2, r.Datasets())
}

func TestReaderDatasets(t *testing.T) {
	r, err := NewReader(strings.NewReader(twoDatasets))
	require.NoError(t, err)

	ds, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, 2, ds.SegSites)
	require.Equal(t, []float64{0.2046, 0.8877}, ds.Positions)
	require.Len(t, ds.Haplotypes, 3)
	require.Equal(t, "10", string(ds.Haplotypes[0]))
	require.Equal(t, "01", string(ds.Haplotypes[1]))
	require.Equal(t, "11", string(ds.Haplotypes[2]))

	ds, err = r.Next()
	require.NoError(t, err)
	require.Equal(t, 0, ds.SegSites)
	require.Empty(t, ds.Positions)
	require.Len(t, ds.Haplotypes, 3)
	for _, hap := range ds.Haplotypes {
		require.Len(t, hap, 0)
	}

	_, err = r.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestReaderRecombinationAnnotation(t *testing.T) {
	r, err := NewReader(strings.NewReader(annotated))
	require.NoError(t, err)

	ds, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, 2, ds.SegSites)
	require.Equal(t, []float64{0.1084, 0.9233}, ds.Positions)
	require.Equal(t, "10", string(ds.Haplotypes[0]))
	require.Equal(t, "01", string(ds.Haplotypes[1]))
}

func TestReaderZeroDatasets(t *testing.T) {
	r, err := NewReader(strings.NewReader("ms 5 0 -t 1.0\n111\n"))
	require.NoError(t, err)
	require.Equal(t, 0, r.Datasets())
	_, err = r.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestReaderHeaderErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"short header", "ms\n111\n"},
		{"bad sample", "ms x 2\n111\n"},
		{"bad datasets", "ms 2 x\n111\n"},
		{"zero sample", "ms 0 2\n111\n"},
		{"missing seeds", "ms 2 2\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewReader(strings.NewReader(tc.input))
			require.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestReaderStreamErrors(t *testing.T) {
	const header = "ms 2 1 -t 4.0\n111\n\n"
	cases := []struct {
		name  string
		block string
	}{
		{"no boundary", "segsites: 2\n"},
		{"missing count", "//\nsegsites:"},
		{"bad count", "//\nsegsites: xx\n"},
		{"negative count", "//\nsegsites: -1\n"},
		{"bad position", "//\nsegsites: 2\npositions: 0.1 zz\n10\n01\n"},
		{"truncated positions", "//\nsegsites: 2\npositions: 0.1\n"},
		{"short haplotype", "//\nsegsites: 2\npositions: 0.1 0.2\n1\n01\n"},
		{"long haplotype", "//\nsegsites: 2\npositions: 0.1 0.2\n101\n01\n"},
		{"missing haplotype", "//\nsegsites: 2\npositions: 0.1 0.2\n10\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewReader(strings.NewReader(header + tc.block))
			require.NoError(t, err)
			_, err = r.Next()
			require.ErrorIs(t, err, ErrFormat)
			require.ErrorContains(t, err, "dataset 1")
		})
	}
}

func TestReaderGrowsPastInitialCapacity(t *testing.T) {
	sites := 1200
	var sb strings.Builder
	sb.WriteString("ms 2 1 -t 400\n111\n\n//\nsegsites: 1200\npositions:")
	for i := 0; i < sites; i++ {
		fmt.Fprintf(&sb, " %.4f", float64(i)/float64(sites))
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("1", sites) + "\n")
	sb.WriteString(strings.Repeat("0", sites) + "\n")

	r, err := NewReader(strings.NewReader(sb.String()))
	require.NoError(t, err)
	ds, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, sites, ds.SegSites)
	require.Len(t, ds.Positions, sites)
	require.Len(t, ds.Haplotypes[0], sites)
	require.GreaterOrEqual(t, r.buf.Capacity(), sites)
}

func TestOpenGzip(t *testing.T) {
	path := writeGz(t, twoDatasets)
	defer func() { _ = os.Remove(path) }()

	in, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = in.Close() }()

	r, err := NewReader(in)
	require.NoError(t, err)
	ds, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, 2, ds.SegSites)
}

func TestOpenStdin(t *testing.T) {
	orig := os.Stdin
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	os.Stdin = pr
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = io.WriteString(pw, twoDatasets)
		_ = pw.Close()
	}()

	in, err := Open("-")
	require.NoError(t, err)
	r, err := NewReader(in)
	require.NoError(t, err)
	require.Equal(t, 3, r.SampleSize())
	ds, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, "11", string(ds.Haplotypes[2]))
}
