package exporter

import (
	"fmt"
)

// FormatError reports that a dataset cannot be represented in the requested
// target format, or that the format itself is unknown. It is distinct from
// plain I/O errors so callers can branch on it with errors.As.
type FormatError struct {
	Format string
	Reason string
}

// Error implements the error interface
func (e *FormatError) Error() string {
	if e.Format == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s export: %s", e.Format, e.Reason)
}
