package inspect

import (
	"log/slog"

	"datamedic/internal/dataset"
)

// Report is the immutable result of inspecting a dataset.
type Report struct {
	// Missing maps column name to the number of null cells in that column.
	Missing map[string]int `json:"missing"`
	// Duplicates is the number of rows identical to an earlier row.
	Duplicates int `json:"duplicates"`
	// Outliers maps numeric column name to the number of values outside the
	// IQR fences [Q1 - 1.5*IQR, Q3 + 1.5*IQR].
	Outliers map[string]int `json:"outliers"`

	// Rows and Columns record the dataset shape at inspection time.
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
	// NumericCells is the number of non-null cells in numeric columns,
	// used as the outlier ratio denominator.
	NumericCells int `json:"numeric_cells"`
}

// minOutlierSamples is the smallest column size for which the IQR fences are
// meaningful; below it every quartile collapses onto a data point.
const minOutlierSamples = 4

// iqrMultiplier is the standard Tukey fence multiplier.
const iqrMultiplier = 1.5

// Inspect scans a dataset and counts missing cells per column, duplicate
// rows, and IQR outliers per numeric column. The dataset is not mutated.
func Inspect(ds *dataset.Dataset) *Report {
	report := &Report{
		Missing:  make(map[string]int),
		Outliers: make(map[string]int),
		Rows:     ds.NumRows(),
		Columns:  ds.NumColumns(),
	}

	for _, col := range ds.Columns() {
		count := 0
		for row := 0; row < ds.NumRows(); row++ {
			if ds.IsNull(row, col) {
				count++
			}
		}
		report.Missing[col] = count
	}

	report.Duplicates = countDuplicates(ds)

	for _, col := range ds.NumericColumns() {
		values, err := ds.Numeric(col)
		if err != nil {
			continue
		}
		report.NumericCells += len(values)
		report.Outliers[col] = countOutliers(values)
	}

	slog.Debug("dataset inspected",
		slog.Int("rows", report.Rows),
		slog.Int("columns", report.Columns),
		slog.Int("duplicates", report.Duplicates),
		slog.Int("total_issues", report.TotalIssues()))

	return report
}

// countDuplicates counts rows whose cells match an earlier row exactly.
// The first occurrence of each distinct row is not counted.
func countDuplicates(ds *dataset.Dataset) int {
	seen := make(map[string]bool, ds.NumRows())
	count := 0
	for i := 0; i < ds.NumRows(); i++ {
		key := ds.RowKey(i)
		if seen[key] {
			count++
		} else {
			seen[key] = true
		}
	}
	return count
}

// countOutliers counts values outside the IQR fences. Columns with fewer
// than minOutlierSamples values report zero.
func countOutliers(values []float64) int {
	if len(values) < minOutlierSamples {
		return 0
	}
	lower, upper := Fences(values)
	count := 0
	for _, v := range values {
		if v < lower || v > upper {
			count++
		}
	}
	return count
}

// Fences returns the IQR outlier fences [Q1 - 1.5*IQR, Q3 + 1.5*IQR]
// for the given values.
func Fences(values []float64) (lower, upper float64) {
	q1 := Quantile(values, 0.25)
	q3 := Quantile(values, 0.75)
	iqr := q3 - q1
	return q1 - iqrMultiplier*iqr, q3 + iqrMultiplier*iqr
}

// MissingCount returns the number of null cells in the named column.
func (r *Report) MissingCount(col string) int {
	return r.Missing[col]
}

// TotalMissing returns the number of null cells across all columns.
func (r *Report) TotalMissing() int {
	total := 0
	for _, n := range r.Missing {
		total += n
	}
	return total
}

// TotalOutliers returns the number of outlier values across all numeric columns.
func (r *Report) TotalOutliers() int {
	total := 0
	for _, n := range r.Outliers {
		total += n
	}
	return total
}

// TotalIssues returns the combined count of missing cells, duplicate rows,
// and outlier values.
func (r *Report) TotalIssues() int {
	return r.TotalMissing() + r.Duplicates + r.TotalOutliers()
}

// HasIssues reports whether the inspection found anything to fix.
func (r *Report) HasIssues() bool {
	return r.TotalIssues() > 0
}

// Suggestions returns advisory messages for each issue class present.
func (r *Report) Suggestions() []string {
	var out []string
	if r.TotalMissing() > 0 {
		out = append(out, "Missing values detected. Consider filling or removing them.")
	}
	if r.Duplicates > 0 {
		out = append(out, "Duplicate rows found. You may remove duplicates.")
	}
	if r.TotalOutliers() > 0 {
		out = append(out, "Outliers detected in numeric columns.")
	}
	return out
}
