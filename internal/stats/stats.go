// internal/stats/stats.go
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"msat/pkg/api"
)

// Summarize reduces one dataset's repeat-length samples, indexed
// [locus][individual], to per-locus v1 records. Variance is the
// unbiased sample variance; a single-sample locus reports zero instead
// of NaN.
func Summarize(dataset int, lengths [][]float64) []api.LocusStatsV1 {
	out := make([]api.LocusStatsV1, 0, len(lengths))
	for locus, xs := range lengths {
		variance := 0.0
		if len(xs) > 1 {
			variance = stat.Variance(xs, nil)
		}
		out = append(out, api.LocusStatsV1{
			Dataset:  dataset,
			Locus:    locus,
			N:        len(xs),
			Mean:     stat.Mean(xs, nil),
			Variance: variance,
			StdDev:   math.Sqrt(variance),
		})
	}
	return out
}
