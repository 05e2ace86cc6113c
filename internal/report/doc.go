// Package report computes dataset health scores and renders summaries.
//
// The score is a weighted inverse of the missing, duplicate, and outlier
// ratios found by inspection, bounded to [0,100]:
//
//	score = 100 * ( (1 - missingRatio)   * 0.40 +
//	                (1 - duplicateRatio) * 0.35 +
//	                (1 - outlierRatio)   * 0.25 )
//
// Scores map to grade bands: healthy (>= 85), degraded (>= 60), critical.
//
// Reporter.Summarize builds a Summary from an inspection report;
// Reporter.Persist writes it to disk as text (.txt) or JSON (.json),
// atomically.
package report
