package frame

import (
	"github.com/ajitpratap0/tabular/pkg/errors"
)

// Column is a named, typed, ordered sequence of values. Entries may be
// missing; all non-missing entries share the column's declared type.
type Column struct {
	name   string
	typ    ColumnType
	values []Value
}

// NewColumn creates an empty column with the given name and type.
func NewColumn(name string, typ ColumnType) *Column {
	return &Column{
		name:   name,
		typ:    typ,
		values: make([]Value, 0, 1024),
	}
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Type returns the declared scalar type.
func (c *Column) Type() ColumnType { return c.typ }

// Len returns the number of entries.
func (c *Column) Len() int { return len(c.values) }

// Get returns the value at index i. It panics if i is out of range.
func (c *Column) Get(i int) Value { return c.values[i] }

// Append adds a value to the end of the column. Non-missing values must
// match the column type.
func (c *Column) Append(v Value) error {
	if !v.IsNull && v.Type != c.typ {
		return errors.Newf(errors.ErrorTypeValidation,
			"cannot append %s value to %s column %q", v.Type, c.typ, c.name)
	}
	c.values = append(c.values, v)
	return nil
}

// AppendRaw canonicalizes a raw Go value against the column type and
// appends it. A nil raw value becomes a missing entry.
func (c *Column) AppendRaw(raw interface{}) error {
	v, err := NewValue(raw, c.typ)
	if err != nil {
		return err
	}
	c.values = append(c.values, v)
	return nil
}

// AppendNull adds a missing entry to the end of the column.
func (c *Column) AppendNull() {
	c.values = append(c.values, Null(c.typ))
}

// Head returns a new column holding the first n entries. If n exceeds the
// column length, the whole column is copied.
func (c *Column) Head(n int) *Column {
	if n > len(c.values) {
		n = len(c.values)
	}
	if n < 0 {
		n = 0
	}
	out := &Column{
		name:   c.name,
		typ:    c.typ,
		values: make([]Value, n),
	}
	copy(out.values, c.values[:n])
	return out
}

// ValueCounts returns a two-column table of (distinct value, occurrence
// count) for this column, named after the column and the column name with a
// "Count" suffix. Rows appear in first-seen order; missing entries are not
// counted. Callers wanting a ranking must sort the result.
func (c *Column) ValueCounts() *Table {
	values, counts := c.valueCounts()

	valueCol := NewColumn(c.name, c.typ)
	countCol := NewColumn(c.name+"Count", TypeInt)
	valueCol.values = values
	for _, n := range counts {
		countCol.values = append(countCol.values, Int(n))
	}

	t, _ := New(valueCol, countCol)
	return t
}

// valueCounts computes distinct values and their occurrence counts in
// first-seen order.
func (c *Column) valueCounts() ([]Value, []int64) {
	type key struct {
		raw interface{}
	}

	seen := make(map[key]int)
	values := make([]Value, 0)
	counts := make([]int64, 0)

	for _, v := range c.values {
		if v.IsNull {
			continue
		}
		k := key{raw: v.Raw}
		if idx, ok := seen[k]; ok {
			counts[idx]++
			continue
		}
		seen[k] = len(values)
		values = append(values, v)
		counts = append(counts, 1)
	}

	return values, counts
}
