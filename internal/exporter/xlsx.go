package exporter

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/xuri/excelize/v2"

	"datamedic/internal/dataset"
	"datamedic/internal/files"
)

// sheetName is the single sheet every XLSX export writes to.
const sheetName = "Sheet1"

// ExportXLSX writes the dataset to an Excel workbook with a single sheet.
// The first row carries the column names; cells keep their native types so
// numbers stay numbers in the spreadsheet. The write is atomic.
func (w *Writer) ExportXLSX(ds *dataset.Dataset, path string) error {
	fullPath := w.resolvePath(path)

	slog.Info("Writing XLSX file",
		slog.String("path", fullPath),
		slog.Int("rows", ds.NumRows()),
		slog.Int("columns", ds.NumColumns()))

	f := excelize.NewFile()
	defer f.Close()

	cols := ds.Columns()
	for c, name := range cols {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return fmt.Errorf("failed to map header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("failed to write header %q: %w", name, err)
		}
	}

	for i := 0; i < ds.NumRows(); i++ {
		row := ds.Row(i)
		for c := range cols {
			if row[c] == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to map cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, row[c]); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	return files.WriteAtomic(fullPath, func(out *os.File) error {
		if _, err := f.WriteTo(out); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		return nil
	})
}
