// internal/statsio/reader.go
package statsio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"msat/internal/output"
)

// ErrLayout is wrapped by every parse failure so callers can classify
// malformed repeat-length input with errors.Is.
var ErrLayout = errors.New("malformed repeat-length stream")

// Block is one dataset's samples, indexed [locus][individual].
type Block struct {
	Dataset int
	Lengths [][]float64
}

// Reader decodes msat output back into per-locus samples. Flat input
// carries one dataset per line in locus-major order and needs the locus
// count up front; per-individual input carries one individual per line,
// closed by a // trailer, and infers the locus count from the row width
// when loci is zero.
type Reader struct {
	sc     *bufio.Scanner
	loci   int
	perInd bool
	line   int
	read   int
	blk    Block
}

// NewReader prepares a reader for one of the two msat layouts. For flat
// input loci must be at least 1; for per-individual input zero means
// infer per block.
func NewReader(r io.Reader, loci int, perIndividual bool) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 1<<24)
	return &Reader{sc: sc, loci: loci, perInd: perIndividual}
}

// Next decodes the next dataset. It returns io.EOF at a clean end of
// input. The returned Block is valid only until the next call.
func (r *Reader) Next() (*Block, error) {
	if r.perInd {
		return r.nextIndividuals()
	}
	return r.nextFlat()
}

func (r *Reader) nextFlat() (*Block, error) {
	for r.sc.Scan() {
		r.line++
		fields := strings.Fields(r.sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields)%r.loci != 0 {
			return nil, r.errf("%d values do not divide into %d loci", len(fields), r.loci)
		}
		n := len(fields) / r.loci
		r.resize(r.loci, n)
		for k, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, r.errf("bad value %q", f)
			}
			r.blk.Lengths[k/n][k%n] = v
		}
		r.read++
		r.blk.Dataset = r.read
		return &r.blk, nil
	}
	if err := r.sc.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func (r *Reader) nextIndividuals() (*Block, error) {
	rows := make([][]float64, 0, 16)
	width := 0
	for r.sc.Scan() {
		r.line++
		text := strings.TrimSpace(r.sc.Text())
		if text == "" {
			if len(rows) == 0 {
				continue
			}
			return nil, r.errf("blank line inside dataset block")
		}
		if text == output.DatasetTrailer {
			if len(rows) == 0 {
				return nil, r.errf("empty dataset block")
			}
			r.transpose(rows, width)
			r.read++
			r.blk.Dataset = r.read
			return &r.blk, nil
		}
		fields := strings.Fields(text)
		switch {
		case len(rows) == 0:
			width = len(fields)
			if r.loci > 0 && width != r.loci {
				return nil, r.errf("%d loci per line, want %d", width, r.loci)
			}
		case len(fields) != width:
			return nil, r.errf("%d loci per line, want %d", len(fields), width)
		}
		row := make([]float64, width)
		for k, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, r.errf("bad value %q", f)
			}
			row[k] = v
		}
		rows = append(rows, row)
	}
	if err := r.sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		return nil, r.errf("dataset block not closed by %s", output.DatasetTrailer)
	}
	return nil, io.EOF
}

// resize shapes the reused block for loci rows of n samples.
func (r *Reader) resize(loci, n int) {
	if len(r.blk.Lengths) != loci || (loci > 0 && len(r.blk.Lengths[0]) != n) {
		r.blk.Lengths = make([][]float64, loci)
		for i := range r.blk.Lengths {
			r.blk.Lengths[i] = make([]float64, n)
		}
	}
}

func (r *Reader) transpose(rows [][]float64, width int) {
	r.resize(width, len(rows))
	for i, row := range rows {
		for l, v := range row {
			r.blk.Lengths[l][i] = v
		}
	}
}

func (r *Reader) errf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrLayout, r.line, fmt.Sprintf(format, args...))
}
