package frame

import (
	"strings"

	"github.com/ajitpratap0/tabular/pkg/errors"
)

// Table is an ordered collection of named columns of equal length. A Table
// has a single logical owner and no internal locking; callers must not
// mutate it concurrently.
type Table struct {
	columns []*Column
	index   map[string]int
}

// New creates a table from the given columns. Column names must be unique
// and all columns must have the same length.
func New(columns ...*Column) (*Table, error) {
	t := &Table{
		columns: make([]*Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}

	for _, col := range columns {
		if _, exists := t.index[col.name]; exists {
			return nil, errors.Newf(errors.ErrorTypeDuplicateColumn,
				"column %q already exists", col.name)
		}
		if len(t.columns) > 0 && col.Len() != t.columns[0].Len() {
			return nil, errors.Newf(errors.ErrorTypeValidation,
				"column %q has %d rows, want %d", col.name, col.Len(), t.columns[0].Len())
		}
		t.index[col.name] = len(t.columns)
		t.columns = append(t.columns, col)
	}

	return t, nil
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Len()
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// ColumnNames returns all column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.name
	}
	return names
}

// TextColumnNames returns the names of the text-typed columns, preserving
// table order.
func (t *Table) TextColumnNames() []string {
	names := make([]string, 0, len(t.columns))
	for _, col := range t.columns {
		if col.typ == TypeString {
			names = append(names, col.name)
		}
	}
	return names
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (*Column, error) {
	idx, ok := t.index[name]
	if !ok {
		return nil, errors.Newf(errors.ErrorTypeNotFound, "no column %q", name).
			WithDetail("column", name)
	}
	return t.columns[idx], nil
}

// ColumnAt returns the column at position i. It panics if i is out of range.
func (t *Table) ColumnAt(i int) *Column {
	return t.columns[i]
}

// Row returns a view over the values at row index i.
func (t *Table) Row(i int) Row {
	return Row{table: t, idx: i}
}

// Head returns a new table holding the first n rows of every column.
func (t *Table) Head(n int) *Table {
	columns := make([]*Column, len(t.columns))
	for i, col := range t.columns {
		columns[i] = col.Head(n)
	}
	out, _ := New(columns...)
	return out
}

// AppendRow appends one value per column, in table order.
func (t *Table) AppendRow(values ...Value) error {
	if len(values) != len(t.columns) {
		return errors.Newf(errors.ErrorTypeValidation,
			"row has %d values, table has %d columns", len(values), len(t.columns))
	}
	for i, v := range values {
		if !v.IsNull && v.Type != t.columns[i].typ {
			return errors.Newf(errors.ErrorTypeValidation,
				"cannot append %s value to %s column %q", v.Type, t.columns[i].typ, t.columns[i].name)
		}
	}
	for i, v := range values {
		t.columns[i].values = append(t.columns[i].values, v)
	}
	return nil
}

// AppendNullRow appends an all-missing row.
func (t *Table) AppendNullRow() {
	for _, col := range t.columns {
		col.AppendNull()
	}
}

// String renders the table as a small text preview: header, types, and up
// to ten rows.
func (t *Table) String() string {
	const previewRows = 10

	var b strings.Builder
	for i, col := range t.columns {
		if i > 0 {
			b.WriteByte('\t')
		}
		b.WriteString(col.name)
	}
	b.WriteByte('\n')
	for i, col := range t.columns {
		if i > 0 {
			b.WriteByte('\t')
		}
		b.WriteString(col.typ.String())
	}
	b.WriteByte('\n')

	rows := t.RowCount()
	shown := rows
	if shown > previewRows {
		shown = previewRows
	}
	for r := 0; r < shown; r++ {
		for i, col := range t.columns {
			if i > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(col.Get(r).String())
		}
		b.WriteByte('\n')
	}
	if rows > shown {
		b.WriteString("...\n")
	}
	return b.String()
}
