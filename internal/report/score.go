package report

import (
	"datamedic/internal/inspect"
)

// Weight constants for the health score formula.
// They must sum to 1.0.
const (
	weightMissing    = 0.40
	weightDuplicates = 0.35
	weightOutliers   = 0.25
)

// Grade constants returned alongside the score.
const (
	GradeHealthy  = "healthy"
	GradeDegraded = "degraded"
	GradeCritical = "critical"
)

// Thresholds that map a score to a grade.
const (
	ThresholdHealthy  = 85.0
	ThresholdDegraded = 60.0
)

// Breakdown carries the per-check ratios behind a health score.
// All ratios are in the range 0–1.
type Breakdown struct {
	// MissingRatio is null cells over total cells.
	MissingRatio float64 `json:"missing_ratio"`
	// DuplicateRatio is duplicate rows over total rows.
	DuplicateRatio float64 `json:"duplicate_ratio"`
	// OutlierRatio is outlier values over non-null numeric cells.
	OutlierRatio float64 `json:"outlier_ratio"`
}

// Score computes the health score for an inspection report.
//
// Formula:
//
//	score = 100 * ( (1 - missingRatio)   * 0.40 +
//	                (1 - duplicateRatio) * 0.35 +
//	                (1 - outlierRatio)   * 0.25 )
//
// clamped to [0,100]. The score is monotonically non-increasing in each
// ratio. An empty dataset has no issues and scores 100.
func Score(r *inspect.Report) (float64, Breakdown) {
	b := Breakdown{}

	if cells := r.Rows * r.Columns; cells > 0 {
		b.MissingRatio = clamp01(float64(r.TotalMissing()) / float64(cells))
	}
	if r.Rows > 0 {
		b.DuplicateRatio = clamp01(float64(r.Duplicates) / float64(r.Rows))
	}
	if r.NumericCells > 0 {
		b.OutlierRatio = clamp01(float64(r.TotalOutliers()) / float64(r.NumericCells))
	}

	score := 100 * ((1-b.MissingRatio)*weightMissing +
		(1-b.DuplicateRatio)*weightDuplicates +
		(1-b.OutlierRatio)*weightOutliers)

	return clamp(score, 0, 100), b
}

// GradeFor maps a score to its grade band.
func GradeFor(score float64) string {
	switch {
	case score >= ThresholdHealthy:
		return GradeHealthy
	case score >= ThresholdDegraded:
		return GradeDegraded
	default:
		return GradeCritical
	}
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
