package exporter

import (
	"path/filepath"
	"strings"

	"datamedic/internal/dataset"
)

// Writer exports datasets to tabular file formats. Relative target paths are
// resolved under the writer's output directory; absolute paths are used as-is.
type Writer struct {
	outputDir string
}

// NewWriter creates a writer that resolves relative paths under outputDir.
// An empty outputDir resolves against the working directory.
func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// Export writes the dataset to path, choosing the format from the file
// extension: .csv, .xlsx, or .json. An unknown extension is a *FormatError.
func (w *Writer) Export(ds *dataset.Dataset, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return w.ExportCSV(ds, path, CSVOptions{BOMPrefix: true})
	case ".xlsx":
		return w.ExportXLSX(ds, path)
	case ".json":
		return w.ExportJSON(ds, path)
	default:
		return &FormatError{Reason: "unsupported file extension " + filepath.Ext(path)}
	}
}

// resolvePath resolves a target path against the output directory
func (w *Writer) resolvePath(path string) string {
	if filepath.IsAbs(path) || w.outputDir == "" {
		return path
	}
	return filepath.Join(w.outputDir, path)
}
