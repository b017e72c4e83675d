// core/msout/reader.go
package msout

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrFormat is wrapped by every parse failure so callers can classify
// stream errors with errors.Is.
var ErrFormat = errors.New("malformed simulator stream")

// boundaryPrefix opens each dataset block in the stream.
const boundaryPrefix = "//"

// Dataset is one simulated replicate: the segregating-site count, the
// site positions, and one '0'/'1' row per sampled haplotype. All slices
// alias reader-owned storage and are valid only until the next call to
// Next.
type Dataset struct {
	SegSites   int
	Positions  []float64
	Haplotypes [][]byte
}

// Reader decodes the textual output of a coalescent simulator: two
// header lines (the command echo carrying sample size and dataset count,
// then the seed line), followed by one block per dataset. Datasets are
// decoded strictly in order, one resident at a time.
type Reader struct {
	s          *scanner
	sampleSize int
	datasets   int
	read       int
	buf        *HaplotypeBuffer
	tok        []byte
	ds         Dataset
}

// NewReader consumes both header lines and prepares per-dataset storage.
func NewReader(r io.Reader) (*Reader, error) {
	s := newScanner(r)
	header, err := s.line()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header line", ErrFormat)
	}
	fields := strings.Fields(header)
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: header %q: want at least 3 tokens", ErrFormat, strings.TrimSpace(header))
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 1 {
		return nil, fmt.Errorf("%w: header sample size %q", ErrFormat, fields[1])
	}
	d, err := strconv.Atoi(fields[2])
	if err != nil || d < 0 {
		return nil, fmt.Errorf("%w: header dataset count %q", ErrFormat, fields[2])
	}
	if _, err := s.line(); err != nil {
		return nil, fmt.Errorf("%w: missing seed line", ErrFormat)
	}
	rd := &Reader{
		s:          s,
		sampleSize: n,
		datasets:   d,
		buf:        NewHaplotypeBuffer(n),
		tok:        make([]byte, 0, 64),
	}
	rd.ds.Haplotypes = make([][]byte, n)
	return rd, nil
}

// SampleSize reports the number of haplotypes per dataset (header token 2).
func (r *Reader) SampleSize() int { return r.sampleSize }

// Datasets reports the number of dataset blocks promised by the header.
func (r *Reader) Datasets() int { return r.datasets }

// Next decodes the next dataset block. Once all promised datasets have
// been read it returns io.EOF. Any malformed block fails the stream for
// good; there is no resynchronization.
func (r *Reader) Next() (*Dataset, error) {
	if r.read >= r.datasets {
		return nil, io.EOF
	}
	if err := r.readDataset(); err != nil {
		return nil, err
	}
	r.read++
	return &r.ds, nil
}

func (r *Reader) readDataset() error {
	for {
		ln, err := r.s.line()
		if err != nil {
			return r.errf("missing %s boundary before end of stream", boundaryPrefix)
		}
		if strings.HasPrefix(ln, boundaryPrefix) {
			break
		}
	}

	// The "segsites:" label is consumed but its spelling is not checked;
	// upstream simulators are trusted on everything but the numbers.
	if _, err := r.nextToken(); err != nil {
		return r.errf("missing segsites label")
	}
	segsites, err := r.intToken("segregating site count")
	if err != nil {
		return err
	}
	if segsites < 0 {
		return r.errf("negative segregating site count %d", segsites)
	}
	r.buf.EnsureCapacity(segsites)
	r.ds.SegSites = segsites
	r.ds.Positions = r.ds.Positions[:0]

	if segsites == 0 {
		for i := range r.ds.Haplotypes {
			r.ds.Haplotypes[i] = r.buf.row(i)
		}
		return nil
	}

	// Positions label, possibly preceded by a recombination annotation.
	// A "prob:" annotation is recognized by its second byte being 'r',
	// which no positions label shares; the probability value and the
	// label after it are consumed unread.
	lbl, err := r.nextToken()
	if err != nil {
		return r.errf("missing positions label")
	}
	if len(lbl) >= 2 && lbl[1] == 'r' {
		if _, err := r.floatToken("recombination probability"); err != nil {
			return err
		}
		if _, err := r.nextToken(); err != nil {
			return r.errf("missing positions label after recombination annotation")
		}
	}

	for i := 0; i < segsites; i++ {
		p, err := r.floatToken("site position")
		if err != nil {
			return err
		}
		r.ds.Positions = append(r.ds.Positions, p)
	}

	for i := 0; i < r.sampleSize; i++ {
		row, err := r.s.token(r.buf.row(i))
		if err != nil {
			return r.errf("haplotype %d: unexpected end of stream", i)
		}
		if len(row) != segsites {
			return r.errf("haplotype %d: length %d, want %d", i, len(row), segsites)
		}
		r.buf.setRow(i, row)
		r.ds.Haplotypes[i] = row
	}
	return nil
}

// errf tags errors with the 1-based ordinal of the dataset being read.
func (r *Reader) errf(format string, args ...any) error {
	return fmt.Errorf("%w: dataset %d: %s", ErrFormat, r.read+1, fmt.Sprintf(format, args...))
}

func (r *Reader) nextToken() ([]byte, error) {
	tok, err := r.s.token(r.tok[:0])
	if err != nil {
		return nil, err
	}
	r.tok = tok
	return tok, nil
}

func (r *Reader) intToken(what string) (int, error) {
	tok, err := r.nextToken()
	if err != nil {
		return 0, r.errf("missing %s", what)
	}
	v, err := strconv.Atoi(string(tok))
	if err != nil {
		return 0, r.errf("bad %s %q", what, tok)
	}
	return v, nil
}

func (r *Reader) floatToken(what string) (float64, error) {
	tok, err := r.nextToken()
	if err != nil {
		return 0, r.errf("missing %s", what)
	}
	v, err := strconv.ParseFloat(string(tok), 64)
	if err != nil {
		return 0, r.errf("bad %s %q", what, tok)
	}
	return v, nil
}
