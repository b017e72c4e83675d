// core/smm/engine.go
package smm

import (
	"msat-core/msout"
)

// Source yields uniform draws in [0,1). The engine consumes exactly two
// draws per segregating site, direction first, then locus, so a scripted
// source reproduces a run draw for draw.
type Source interface {
	Float64() float64
}

// Engine applies the single-step mutation model: every segregating site
// mutates the repeat length by one unit, up or down, at one of the
// linked loci, for each individual carrying the derived allele.
type Engine struct {
	ancestral int
	cum       []float64
	src       Source
	matrix    [][]int
}

// New builds an engine over a validated partition (see Proportions) and
// a draw source.
func New(ancestral int, proportions []float64, src Source) *Engine {
	cum := make([]float64, len(proportions))
	sum := 0.0
	for i, p := range proportions {
		sum += p
		cum[i] = sum
	}
	return &Engine{ancestral: ancestral, cum: cum, src: src}
}

// Loci reports the number of linked loci.
func (e *Engine) Loci() int { return len(e.cum) }

// Mutate converts one dataset's haplotypes into repeat lengths, indexed
// [individual][locus]. Rows must be SegSites bytes long, as the stream
// reader guarantees. The matrix is reset to the ancestral state on every
// call and reused; it stays valid until the next call.
func (e *Engine) Mutate(ds *msout.Dataset) [][]int {
	e.reset(len(ds.Haplotypes))
	for site := 0; site < ds.SegSites; site++ {
		step := 1
		if e.src.Float64() < 0.5 {
			step = -1
		}
		locus := e.pickLocus(e.src.Float64())
		for ind, hap := range ds.Haplotypes {
			if hap[site] == '1' {
				e.matrix[ind][locus] += step
			}
		}
	}
	return e.matrix
}

// pickLocus scans the cumulative proportions left to right and takes the
// first locus whose threshold reaches the draw. A draw beyond the last
// threshold (floating-point shortfall in the sum) lands on the last
// locus.
func (e *Engine) pickLocus(r float64) int {
	for j, c := range e.cum {
		if c >= r {
			return j
		}
	}
	return len(e.cum) - 1
}

func (e *Engine) reset(n int) {
	if len(e.matrix) != n {
		e.matrix = make([][]int, n)
		for i := range e.matrix {
			e.matrix[i] = make([]int, len(e.cum))
		}
	}
	for _, row := range e.matrix {
		for k := range row {
			row[k] = e.ancestral
		}
	}
}
