package frame

// Row is a positional view across all columns of a table at one index. It
// holds no data of its own; reads go straight to the underlying columns.
type Row struct {
	table *Table
	idx   int
}

// Index returns the row's position in the table.
func (r Row) Index() int { return r.idx }

// Value returns the entry in the named column at this row.
func (r Row) Value(name string) (Value, error) {
	col, err := r.table.Column(name)
	if err != nil {
		return Value{}, err
	}
	return col.Get(r.idx), nil
}

// Values returns the row's entries in table column order.
func (r Row) Values() []Value {
	out := make([]Value, len(r.table.columns))
	for i, col := range r.table.columns {
		out[i] = col.Get(r.idx)
	}
	return out
}
