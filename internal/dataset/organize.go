package dataset

import (
	"sort"
)

// SortColumns returns a copy of the dataset with columns in alphabetical order.
// Rows are untouched apart from cell reordering.
func (d *Dataset) SortColumns() *Dataset {
	order := make([]int, len(d.columns))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return d.columns[order[a]] < d.columns[order[b]]
	})

	out := &Dataset{
		columns: make([]string, len(d.columns)),
		kinds:   make([]Kind, len(d.kinds)),
		rows:    make([][]Value, len(d.rows)),
	}
	for i, src := range order {
		out.columns[i] = d.columns[src]
		out.kinds[i] = d.kinds[src]
	}
	for r, row := range d.rows {
		newRow := make([]Value, len(row))
		for i, src := range order {
			newRow[i] = row[src]
		}
		out.rows[r] = newRow
	}
	return out
}

// SortRowsBy returns a copy of the dataset with rows ordered by the named
// column. Null cells sort last; numeric columns sort numerically, everything
// else lexically. The sort is stable.
func (d *Dataset) SortRowsBy(name string) (*Dataset, error) {
	idx := d.ColumnIndex(name)
	if idx < 0 {
		return nil, &ErrColumnNotFound{Column: name}
	}

	out := d.Clone()
	sort.SliceStable(out.rows, func(a, b int) bool {
		return lessValue(out.rows[a][idx], out.rows[b][idx])
	})
	return out, nil
}

// lessValue orders two cells of the same column. Nulls come last so sorted
// output leads with real data.
func lessValue(a, b Value) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	switch av := a.(type) {
	case float64:
		if bv, ok := b.(float64); ok {
			return av < bv
		}
	case bool:
		if bv, ok := b.(bool); ok {
			return !av && bv
		}
	case string:
		if bv, ok := b.(string); ok {
			return av < bv
		}
	}
	return false
}
