package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// missingTokens are the cell spellings treated as null on load.
var missingTokens = map[string]bool{
	"":     true,
	"NA":   true,
	"N/A":  true,
	"NaN":  true,
	"nan":  true,
	"null": true,
	"NULL": true,
}

// FromCSV parses headered CSV data into a dataset. Empty and NA-style cells
// become null; a column where every non-null cell parses as a number (or as a
// boolean) gets that kind, everything else stays string.
func FromCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}
	// Strip a UTF-8 BOM left by spreadsheet tools.
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\uFEFF")
	}

	raw := make([][]string, 0, 64)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		raw = append(raw, record)
	}

	ds := New(headers)
	colKinds := inferRawKinds(raw, len(headers))
	for _, record := range raw {
		row := make([]Value, len(headers))
		for c := range headers {
			cell := ""
			if c < len(record) {
				cell = strings.TrimSpace(record[c])
			}
			row[c] = parseCell(cell, colKinds[c])
		}
		if err := ds.AppendRow(row); err != nil {
			return nil, err
		}
	}

	slog.Debug("parsed CSV data",
		slog.Int("rows", ds.NumRows()),
		slog.Int("columns", ds.NumColumns()))

	return ds, nil
}

// LoadCSV reads a CSV file from disk into a dataset.
func LoadCSV(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	slog.Info("Loading CSV file", slog.String("path", path))

	ds, err := FromCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return ds, nil
}

// inferRawKinds decides the kind of each raw column before cells are typed.
func inferRawKinds(raw [][]string, cols int) []Kind {
	kinds := make([]Kind, cols)
	for c := 0; c < cols; c++ {
		numeric := true
		boolean := true
		seen := false
		for _, record := range raw {
			if c >= len(record) {
				continue
			}
			cell := strings.TrimSpace(record[c])
			if missingTokens[cell] {
				continue
			}
			seen = true
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				numeric = false
			}
			if !isBoolToken(cell) {
				boolean = false
			}
			if !numeric && !boolean {
				break
			}
		}
		switch {
		case seen && numeric:
			kinds[c] = KindNumeric
		case seen && boolean:
			kinds[c] = KindBool
		default:
			kinds[c] = KindString
		}
	}
	return kinds
}

// parseCell converts a raw CSV cell to a typed value under the column kind.
func parseCell(cell string, kind Kind) Value {
	if missingTokens[cell] {
		return nil
	}
	switch kind {
	case KindNumeric:
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return cell
		}
		return f
	case KindBool:
		return strings.EqualFold(cell, "true")
	default:
		return cell
	}
}

func isBoolToken(cell string) bool {
	return strings.EqualFold(cell, "true") || strings.EqualFold(cell, "false")
}
