// Package dataset provides the in-memory tabular data model shared by the
// inspection, cleaning, export, and reporting components.
//
// A Dataset is a table of named columns and rows. Cells hold nil (missing),
// float64, bool, or string; column kinds are inferred by simple type checks
// when data is loaded or appended.
//
// This package contains three main areas:
//
// Dataset: the core structure with accessors, row filtering, cloning, and a
// canonical row key used for duplicate detection.
//
// CSV loading: FromCSV and LoadCSV parse headered CSV data, mapping empty and
// NA-style cells to null and typing columns by their contents.
//
// Organizing: SortColumns and SortRowsBy reorder a dataset without touching
// its values.
//
// Example usage:
//
//	ds, err := dataset.LoadCSV("data/input.csv")
//	if err != nil {
//	    return err
//	}
//
//	sorted, err := ds.SortRowsBy("name")
package dataset
