package frame

import (
	"github.com/ajitpratap0/tabular/pkg/errors"
)

// AddColumn computes a derived column by evaluating fn once per row, in row
// order, and appends it as the table's last column. This is the one
// operation that mutates its table in place.
//
// The name must not collide with an existing column; collisions fail with a
// duplicate-column error. Values returned by fn must match typ (or be
// missing); mismatches and fn errors fail as evaluation errors. All derived
// values are materialized before the table's column set changes, so the
// table is untouched on any failure.
func (t *Table) AddColumn(name string, typ ColumnType, fn func(Row) (Value, error)) error {
	if _, exists := t.index[name]; exists {
		return errors.Newf(errors.ErrorTypeDuplicateColumn,
			"column %q already exists", name).WithDetail("column", name)
	}

	col := NewColumn(name, typ)
	rows := t.RowCount()
	for i := 0; i < rows; i++ {
		v, err := fn(t.Row(i))
		if err != nil {
			return errors.Wrap(err, errors.ErrorTypeEvaluation,
				"derived column function failed").
				WithDetail("column", name).
				WithDetail("row", i)
		}
		if err := col.Append(v); err != nil {
			return errors.Wrap(err, errors.ErrorTypeEvaluation,
				"derived column value has wrong type").
				WithDetail("column", name).
				WithDetail("row", i)
		}
	}

	t.index[name] = len(t.columns)
	t.columns = append(t.columns, col)
	return nil
}
