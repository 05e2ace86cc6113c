package inspect

import (
	"sort"
)

// Quantile returns the q-th quantile (0 <= q <= 1) of values using linear
// interpolation between order statistics. An empty input returns 0.
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}
	if q <= 0 {
		return min64(values)
	}
	if q >= 1 {
		return max64(values)
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	hi := lo + 1
	if hi >= len(sorted) {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

func min64(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func max64(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
