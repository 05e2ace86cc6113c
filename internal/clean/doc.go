// Package clean applies configurable treatments to a dataset: missing-value
// handling (drop row, fill with mean/median/constant), duplicate removal
// (keep-first), and outlier handling (clip to the IQR fences or drop the row).
//
// Treat always produces a new dataset and leaves the input untouched; callers
// that want in-place semantics simply replace their reference. Each applied
// fix is recorded in a human-readable fix log. Strategy names are validated
// with go-playground/validator, so a typo fails fast at construction time.
package clean
