package clean

import (
	"fmt"
	"log/slog"

	"datamedic/internal/dataset"
	"datamedic/internal/inspect"
)

// Cleaner applies configured treatments to a dataset and keeps a log of the
// fixes it made. Treat returns a new dataset; the input is never mutated.
type Cleaner struct {
	config Config
	fixLog []string
}

// NewCleaner creates a cleaner with the given configuration.
// The configuration is validated; invalid strategy names are rejected.
func NewCleaner(config Config) (*Cleaner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	config.normalize()
	return &Cleaner{config: config}, nil
}

// Config returns the cleaner's configuration.
func (c *Cleaner) Config() Config {
	return c.config
}

// FixLog returns the human-readable entries recorded by the most recent
// Treat call, in order.
func (c *Cleaner) FixLog() []string {
	return append([]string(nil), c.fixLog...)
}

// Treat applies the configured strategies in order: missing values,
// duplicates, outliers. An empty dataset is returned unchanged with no error.
func (c *Cleaner) Treat(ds *dataset.Dataset) (*dataset.Dataset, error) {
	c.fixLog = nil

	out := ds.Clone()
	if out.NumRows() == 0 {
		return out, nil
	}

	var err error
	if out, err = c.fixMissing(out); err != nil {
		return nil, fmt.Errorf("fix missing values: %w", err)
	}
	out = c.fixDuplicates(out)
	out = c.fixOutliers(out)

	slog.Info("dataset treated",
		slog.Int("rows_before", ds.NumRows()),
		slog.Int("rows_after", out.NumRows()),
		slog.Int("fixes", len(c.fixLog)))

	return out, nil
}

// fixMissing applies the missing-value strategy.
func (c *Cleaner) fixMissing(ds *dataset.Dataset) (*dataset.Dataset, error) {
	switch c.config.Missing {
	case MissingKeep:
		return ds, nil

	case MissingDrop:
		before := ds.NumRows()
		cols := ds.Columns()
		out := ds.FilterRows(func(row int) bool {
			for _, col := range cols {
				if ds.IsNull(row, col) {
					return false
				}
			}
			return true
		})
		if removed := before - out.NumRows(); removed > 0 {
			c.logf("%d rows with missing values removed.", removed)
		}
		return out, nil

	case MissingMean, MissingMedian:
		filled := 0
		for _, col := range ds.NumericColumns() {
			values, err := ds.Numeric(col)
			if err != nil || len(values) == 0 {
				continue
			}
			fill := mean(values)
			if c.config.Missing == MissingMedian {
				fill = inspect.Quantile(values, 0.5)
			}
			for row := 0; row < ds.NumRows(); row++ {
				if !ds.IsNull(row, col) {
					continue
				}
				if err := ds.SetValue(row, col, fill); err != nil {
					return nil, err
				}
				filled++
			}
		}
		if filled > 0 {
			c.logf("%d missing cells filled with column %s.", filled, c.config.Missing)
		}
		return ds, nil

	case MissingConstant:
		filled := 0
		for _, col := range ds.Columns() {
			for row := 0; row < ds.NumRows(); row++ {
				if !ds.IsNull(row, col) {
					continue
				}
				if err := ds.SetValue(row, col, c.config.FillValue); err != nil {
					return nil, err
				}
				filled++
			}
		}
		if filled > 0 {
			c.logf("%d missing cells filled with constant %v.", filled, c.config.FillValue)
		}
		return ds, nil

	default:
		return nil, fmt.Errorf("unknown missing strategy %q", c.config.Missing)
	}
}

// fixDuplicates applies the duplicate strategy, keeping first occurrences.
func (c *Cleaner) fixDuplicates(ds *dataset.Dataset) *dataset.Dataset {
	if c.config.Duplicates != DuplicatesDrop {
		return ds
	}

	before := ds.NumRows()
	seen := make(map[string]bool, before)
	out := ds.FilterRows(func(row int) bool {
		key := ds.RowKey(row)
		if seen[key] {
			return false
		}
		seen[key] = true
		return true
	})
	if removed := before - out.NumRows(); removed > 0 {
		c.logf("%d duplicate rows removed.", removed)
	}
	return out
}

// fixOutliers applies the outlier strategy per numeric column, using the
// IQR fences computed from the column's current values.
func (c *Cleaner) fixOutliers(ds *dataset.Dataset) *dataset.Dataset {
	if c.config.Outliers == OutliersKeep {
		return ds
	}

	type bounds struct {
		lower, upper float64
	}
	fences := make(map[string]bounds)
	for _, col := range ds.NumericColumns() {
		values, err := ds.Numeric(col)
		if err != nil || len(values) < 4 {
			continue
		}
		lower, upper := inspect.Fences(values)
		fences[col] = bounds{lower: lower, upper: upper}
	}
	if len(fences) == 0 {
		return ds
	}

	switch c.config.Outliers {
	case OutliersClip:
		clipped := 0
		for col, b := range fences {
			for row := 0; row < ds.NumRows(); row++ {
				v, err := ds.Value(row, col)
				if err != nil {
					continue
				}
				f, ok := v.(float64)
				if !ok {
					continue
				}
				switch {
				case f < b.lower:
					ds.SetValue(row, col, b.lower)
					clipped++
				case f > b.upper:
					ds.SetValue(row, col, b.upper)
					clipped++
				}
			}
		}
		if clipped > 0 {
			c.logf("%d outlier values clipped to IQR bounds.", clipped)
		}
		return ds

	case OutliersDrop:
		before := ds.NumRows()
		out := ds.FilterRows(func(row int) bool {
			for col, b := range fences {
				v, err := ds.Value(row, col)
				if err != nil {
					continue
				}
				if f, ok := v.(float64); ok && (f < b.lower || f > b.upper) {
					return false
				}
			}
			return true
		})
		if removed := before - out.NumRows(); removed > 0 {
			c.logf("%d rows with outlier values removed.", removed)
		}
		return out

	default:
		return ds
	}
}

func (c *Cleaner) logf(format string, args ...any) {
	c.fixLog = append(c.fixLog, fmt.Sprintf(format, args...))
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
