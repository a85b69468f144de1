// Package tabular provides ergonomic convenience operations over in-memory
// columnar tables: reflective table construction from record structs,
// column introspection, value-frequency summaries, row-predicate filtering,
// and row-wise derived columns.
//
// The table model lives in pkg/frame. A Table is an ordered set of named,
// typed columns of equal length; cells are tagged Values that may be missing.
// All operations are synchronous and single-threaded; everything except
// Table.AddColumn returns a fresh table or column instead of mutating its
// receiver.
//
// # Quick Start
//
// Build a table from a slice of structs and summarize it:
//
//	type Person struct {
//	    Name string
//	    Age  int64
//	    City *string // nil means missing
//	}
//
//	t, err := frame.FromRecords(people)
//	if err != nil {
//	    return err
//	}
//
//	counts, err := t.ValueCounts(10, "City")
//
// Filtering and derived columns:
//
//	adults, err := t.Filter(func(r frame.Row) (bool, error) {
//	    age, err := r.Value("Age")
//	    if err != nil {
//	        return false, err
//	    }
//	    n, _ := age.AsInt()
//	    return n >= 18, nil
//	})
//
// Errors carry a structured type (schema, not_found, duplicate_column,
// evaluation) via pkg/errors and are classified with errors.IsType.
package tabular
