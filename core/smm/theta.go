// core/smm/theta.go
package smm

import (
	"errors"
	"fmt"
	"math"
)

// SumTolerance bounds how far the theta proportions may drift from 1.0
// before the partition is rejected.
const SumTolerance = 1e-14

// ErrPartition is wrapped by every invalid locus-partition error.
var ErrPartition = errors.New("invalid locus partition")

// Proportions validates the per-locus theta proportions for a run over
// loci fully linked microsatellites. A single locus takes no explicit
// proportions and owns the whole theta. Multiple loci need exactly one
// positive proportion each, summing to 1 within SumTolerance. The
// returned slice is a copy.
func Proportions(loci int, thetas []float64) ([]float64, error) {
	if loci < 1 {
		return nil, fmt.Errorf("%w: locus count %d", ErrPartition, loci)
	}
	if loci == 1 {
		if len(thetas) > 0 {
			return nil, fmt.Errorf("%w: theta proportions given for a single locus", ErrPartition)
		}
		return []float64{1}, nil
	}
	if len(thetas) != loci {
		return nil, fmt.Errorf("%w: %d theta proportions for %d loci", ErrPartition, len(thetas), loci)
	}
	sum := 0.0
	for i, th := range thetas {
		if th <= 0 {
			return nil, fmt.Errorf("%w: locus %d proportion %v is not positive", ErrPartition, i, th)
		}
		sum += th
	}
	if math.Abs(sum-1) > SumTolerance {
		return nil, fmt.Errorf("%w: proportions sum to %v, want 1", ErrPartition, sum)
	}
	out := make([]float64, loci)
	copy(out, thetas)
	return out, nil
}
