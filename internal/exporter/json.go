package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"datamedic/internal/dataset"
	"datamedic/internal/files"
)

// ExportJSON writes the dataset as a JSON array of row objects keyed by
// column name (records orientation). Null cells become JSON null.
// The write is atomic.
func (w *Writer) ExportJSON(ds *dataset.Dataset, path string) error {
	fullPath := w.resolvePath(path)

	slog.Info("Writing JSON file",
		slog.String("path", fullPath),
		slog.Int("rows", ds.NumRows()),
		slog.Int("columns", ds.NumColumns()))

	cols := ds.Columns()
	records := make([]map[string]dataset.Value, ds.NumRows())
	for i := 0; i < ds.NumRows(); i++ {
		row := ds.Row(i)
		record := make(map[string]dataset.Value, len(cols))
		for c, name := range cols {
			record[name] = row[c]
		}
		records[i] = record
	}

	return files.WriteAtomic(fullPath, func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("failed to encode records: %w", err)
		}
		return nil
	})
}
