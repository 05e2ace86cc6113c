// Package inspect provides data-quality diagnostics for datasets.
//
// Inspect scans a dataset without mutating it and produces a Report with
// per-column missing-value counts, the whole-dataset duplicate row count,
// and per-numeric-column outlier counts using the interquartile-range rule:
// a value is an outlier when it falls outside [Q1 - 1.5*IQR, Q3 + 1.5*IQR].
// Quantiles use linear interpolation; null cells never enter the quantile
// computation and are never counted as outliers.
//
// The Report feeds both the cleaner (which strategies to apply) and the
// reporter (health scoring).
package inspect
