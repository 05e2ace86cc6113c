// Package pipeline orchestrates the cleaning workflow: diagnose the input,
// treat it with the configured cleaner, export the cleaned dataset to each
// configured target, and generate (optionally persist) a health summary.
//
// Runs are sequential and synchronous. The first stage failure aborts the
// run and is returned wrapped with the stage name. Each run is tagged with a
// uuid run ID carried through its log records.
package pipeline
