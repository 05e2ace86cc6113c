package dataset

import (
	"fmt"
)

// Kind describes the inferred type of a column.
type Kind int

const (
	// KindString is the fallback kind for columns with mixed or textual values
	KindString Kind = iota
	// KindNumeric marks columns where every non-null cell parsed as a number
	KindNumeric
	// KindBool marks columns where every non-null cell parsed as a boolean
	KindBool
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindBool:
		return "bool"
	default:
		return "string"
	}
}

// Value is a single cell. It holds nil (missing), float64, bool, or string.
type Value = any

// Dataset is an in-memory table of named columns and rows.
// Cells are nil when missing. Mutating methods operate on the receiver;
// Clone gives callers an independent copy when the original must survive.
type Dataset struct {
	columns []string
	kinds   []Kind
	rows    [][]Value
}

// New creates a dataset with the given column names and no rows.
// Column kinds start as string and are re-inferred once rows exist.
func New(columns []string) *Dataset {
	kinds := make([]Kind, len(columns))
	return &Dataset{
		columns: append([]string(nil), columns...),
		kinds:   kinds,
	}
}

// ErrColumnNotFound is returned when an operation names an unknown column.
type ErrColumnNotFound struct {
	Column string
}

// Error implements the error interface
func (e *ErrColumnNotFound) Error() string {
	return fmt.Sprintf("column %q does not exist", e.Column)
}

// Columns returns the column names in order.
func (d *Dataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

// NumRows returns the number of rows.
func (d *Dataset) NumRows() int {
	return len(d.rows)
}

// NumColumns returns the number of columns.
func (d *Dataset) NumColumns() int {
	return len(d.columns)
}

// ColumnIndex returns the position of the named column, or -1.
func (d *Dataset) ColumnIndex(name string) int {
	for i, c := range d.columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Kind returns the inferred kind of the named column.
func (d *Dataset) Kind(name string) (Kind, error) {
	idx := d.ColumnIndex(name)
	if idx < 0 {
		return KindString, &ErrColumnNotFound{Column: name}
	}
	return d.kinds[idx], nil
}

// NumericColumns returns the names of all numeric columns in order.
func (d *Dataset) NumericColumns() []string {
	var out []string
	for i, c := range d.columns {
		if d.kinds[i] == KindNumeric {
			out = append(out, c)
		}
	}
	return out
}

// Value returns the cell at (row, column name).
func (d *Dataset) Value(row int, name string) (Value, error) {
	idx := d.ColumnIndex(name)
	if idx < 0 {
		return nil, &ErrColumnNotFound{Column: name}
	}
	if row < 0 || row >= len(d.rows) {
		return nil, fmt.Errorf("row %d out of range [0,%d)", row, len(d.rows))
	}
	return d.rows[row][idx], nil
}

// IsNull reports whether the cell at (row, column name) is missing.
func (d *Dataset) IsNull(row int, name string) bool {
	v, err := d.Value(row, name)
	return err == nil && v == nil
}

// Row returns a copy of the row at the given index.
func (d *Dataset) Row(i int) []Value {
	return append([]Value(nil), d.rows[i]...)
}

// AppendRow adds a row. The row must have one cell per column; cells must be
// nil, float64, bool, or string. Column kinds are re-inferred afterwards.
func (d *Dataset) AppendRow(row []Value) error {
	if len(row) != len(d.columns) {
		return fmt.Errorf("row has %d cells, dataset has %d columns", len(row), len(d.columns))
	}
	for i, v := range row {
		switch v.(type) {
		case nil, float64, bool, string:
		default:
			return fmt.Errorf("unsupported cell type %T in column %q", v, d.columns[i])
		}
	}
	d.rows = append(d.rows, append([]Value(nil), row...))
	d.inferKinds()
	return nil
}

// Column returns a copy of all cells in the named column.
func (d *Dataset) Column(name string) ([]Value, error) {
	idx := d.ColumnIndex(name)
	if idx < 0 {
		return nil, &ErrColumnNotFound{Column: name}
	}
	out := make([]Value, len(d.rows))
	for i, row := range d.rows {
		out[i] = row[idx]
	}
	return out, nil
}

// Numeric returns the non-null float64 values of the named column.
// Non-numeric columns yield an empty slice.
func (d *Dataset) Numeric(name string) ([]float64, error) {
	idx := d.ColumnIndex(name)
	if idx < 0 {
		return nil, &ErrColumnNotFound{Column: name}
	}
	if d.kinds[idx] != KindNumeric {
		return nil, nil
	}
	var out []float64
	for _, row := range d.rows {
		if f, ok := row[idx].(float64); ok {
			out = append(out, f)
		}
	}
	return out, nil
}

// SetValue replaces the cell at (row, column name).
func (d *Dataset) SetValue(row int, name string, v Value) error {
	idx := d.ColumnIndex(name)
	if idx < 0 {
		return &ErrColumnNotFound{Column: name}
	}
	if row < 0 || row >= len(d.rows) {
		return fmt.Errorf("row %d out of range [0,%d)", row, len(d.rows))
	}
	switch v.(type) {
	case nil, float64, bool, string:
	default:
		return fmt.Errorf("unsupported cell type %T", v)
	}
	d.rows[row][idx] = v
	return nil
}

// Clone returns a deep copy of the dataset.
func (d *Dataset) Clone() *Dataset {
	rows := make([][]Value, len(d.rows))
	for i, row := range d.rows {
		rows[i] = append([]Value(nil), row...)
	}
	return &Dataset{
		columns: append([]string(nil), d.columns...),
		kinds:   append([]Kind(nil), d.kinds...),
		rows:    rows,
	}
}

// FilterRows returns a new dataset containing only the rows for which keep
// returns true. Row indices passed to keep refer to the receiver.
func (d *Dataset) FilterRows(keep func(row int) bool) *Dataset {
	out := &Dataset{
		columns: append([]string(nil), d.columns...),
		kinds:   append([]Kind(nil), d.kinds...),
	}
	for i, row := range d.rows {
		if keep(i) {
			out.rows = append(out.rows, append([]Value(nil), row...))
		}
	}
	return out
}

// RowKey returns a canonical string for the row, used for duplicate detection.
// Two rows with equal cells produce equal keys.
func (d *Dataset) RowKey(i int) string {
	key := ""
	for _, v := range d.rows[i] {
		switch t := v.(type) {
		case nil:
			key += "\x00\x01"
		case float64:
			key += fmt.Sprintf("f%v\x01", t)
		case bool:
			key += fmt.Sprintf("b%v\x01", t)
		case string:
			key += "s" + t + "\x01"
		}
	}
	return key
}

// inferKinds re-derives column kinds from the current cells.
// A column is numeric (or bool) only if every non-null cell has that type;
// columns that are entirely null stay string.
func (d *Dataset) inferKinds() {
	for c := range d.columns {
		kind := KindString
		seen := false
		consistent := true
		for _, row := range d.rows {
			v := row[c]
			if v == nil {
				continue
			}
			var k Kind
			switch v.(type) {
			case float64:
				k = KindNumeric
			case bool:
				k = KindBool
			default:
				k = KindString
			}
			if !seen {
				kind = k
				seen = true
			} else if k != kind {
				consistent = false
				break
			}
		}
		if !seen || !consistent {
			kind = KindString
		}
		d.kinds[c] = kind
	}
}
