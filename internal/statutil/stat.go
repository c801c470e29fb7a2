// Package statutil wraps the small numerical reductions shared by the
// visibility engine's sector summaries, built on gonum/stat (wired per
// SPEC_FULL.md's domain stack, grounded on banshee-data-velocity.report's
// use of gonum.org/v1/gonum).
package statutil

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// MeanAndMedian returns the arithmetic mean and the empirical median of
// values. It does not mutate the input. An empty slice yields NaN for both.
func MeanAndMedian(values []float64) (mean, median float64) {
	if len(values) == 0 {
		return math.NaN(), math.NaN()
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mean = stat.Mean(sorted, nil)
	median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	return mean, median
}
