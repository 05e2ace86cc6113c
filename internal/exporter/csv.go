package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"datamedic/internal/dataset"
	"datamedic/internal/files"
)

// CSVOptions configures CSV export behavior
type CSVOptions struct {
	// BOMPrefix prepends a UTF-8 BOM so Excel recognizes the encoding
	BOMPrefix bool
}

// ExportCSV writes the dataset to a CSV file at the given path. The header
// row carries the column names; null cells are written as empty strings.
// The write is atomic: the target appears only once fully written.
func (w *Writer) ExportCSV(ds *dataset.Dataset, path string, options CSVOptions) error {
	fullPath := w.resolvePath(path)

	slog.Info("Writing CSV file",
		slog.String("path", fullPath),
		slog.Int("rows", ds.NumRows()),
		slog.Int("columns", ds.NumColumns()))

	return files.WriteAtomic(fullPath, func(f *os.File) error {
		if options.BOMPrefix {
			if _, err := f.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
				return fmt.Errorf("failed to write BOM: %w", err)
			}
		}

		writer := csv.NewWriter(f)
		if err := writer.Write(ds.Columns()); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}

		cols := ds.Columns()
		record := make([]string, len(cols))
		for i := 0; i < ds.NumRows(); i++ {
			row := ds.Row(i)
			for c := range cols {
				record[c] = formatCell(row[c])
			}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("failed to write record %d: %w", i, err)
			}
		}

		writer.Flush()
		return writer.Error()
	})
}
