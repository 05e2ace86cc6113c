package exporter

import (
	"strconv"

	"datamedic/internal/dataset"
)

// formatCell renders a cell for CSV output. Null cells become empty strings;
// floats keep full precision so a re-read round-trips the value.
func formatCell(v dataset.Value) string {
	switch t := v.(type) {
	case nil:
		return ""
	case float64:
		return formatFloat(t)
	case bool:
		return formatBool(t)
	case string:
		return t
	default:
		return ""
	}
}

// formatFloat formats a float64 value using the shortest representation that
// parses back to the same number
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// formatBool formats a boolean value for CSV output
func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
