package frame

import (
	"github.com/ajitpratap0/tabular/pkg/errors"
)

// Predicate decides whether a row is kept. An error aborts the evaluation
// and propagates to the caller as an evaluation error carrying the row
// index.
type Predicate func(Row) (bool, error)

// filterColumnName is the internal mask name used by Filter.
const filterColumnName = "__filter"

// FilterColumn evaluates the predicate once per row, in row order, and
// returns a boolean column of the results with the given name. The table
// is not modified. The predicate may read any column of the row; rows with
// missing entries are still evaluated, and the predicate is responsible for
// handling them.
func (t *Table) FilterColumn(name string, p Predicate) (*Column, error) {
	col := NewColumn(name, TypeBool)
	rows := t.RowCount()
	for i := 0; i < rows; i++ {
		keep, err := p(t.Row(i))
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeEvaluation,
				"predicate failed").WithDetail("row", i)
		}
		col.values = append(col.values, Bool(keep))
	}
	return col, nil
}

// Filter returns a new table containing exactly the rows for which the
// predicate is true, preserving relative row order and all columns. The
// input table is not modified.
func (t *Table) Filter(p Predicate) (*Table, error) {
	mask, err := t.FilterColumn(filterColumnName, p)
	if err != nil {
		return nil, err
	}

	columns := make([]*Column, len(t.columns))
	for i, col := range t.columns {
		columns[i] = NewColumn(col.name, col.typ)
	}
	for r := 0; r < mask.Len(); r++ {
		if keep, _ := mask.Get(r).AsBool(); !keep {
			continue
		}
		for i, col := range t.columns {
			columns[i].values = append(columns[i].values, col.Get(r))
		}
	}

	return New(columns...)
}
