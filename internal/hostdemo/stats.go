package hostdemo

import (
	"math"
	"sort"
)

// Percentile returns the p-th percentile (0-100) of data using linear
// interpolation between the two closest ranks, for summarizing a demo
// run's per-chunk scores/cratios.
func Percentile(data []float64, p float64) float64 {
	n := len(data)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, data)
	sort.Float64s(sorted)

	rank := p / 100.0 * float64(n-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	if upper >= n {
		return sorted[n-1]
	}
	return sorted[lower] + (sorted[upper]-sorted[lower])*(rank-float64(lower))
}
