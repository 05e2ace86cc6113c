// Package exporter writes cleaned datasets to tabular file formats.
//
// This package contains one main component:
//
// Writer: exports a dataset to CSV (with optional UTF-8 BOM for Excel
// compatibility), XLSX (via excelize, single sheet with typed cells), or
// JSON (array of row objects). Export picks the format from the file
// extension; the ExportCSV/ExportXLSX/ExportJSON methods select it
// explicitly.
//
// All writes go through a temp file renamed into place, so a failed export
// never leaves a partial file behind. Format problems are reported as
// *FormatError, distinct from I/O errors.
//
// Example usage:
//
//	writer := exporter.NewWriter("data/out")
//
//	// Format from the extension
//	err := writer.Export(ds, "cleaned_data.csv")
//
//	// Or explicitly
//	err = writer.ExportXLSX(ds, "cleaned_data.xlsx")
package exporter
