package frame

import (
	"reflect"

	"github.com/ajitpratap0/tabular/pkg/errors"
)

// FromRecords builds a table from a slice of record structs (or pointers to
// structs). Columns correspond 1:1 to the exported struct fields, in
// declaration order, typed by the field's declared type. The record type is
// validated before any instance is read; see SchemaOf for the allowed field
// types. An empty slice yields a zero-row table with the full schema.
// Pointer fields that are nil become missing entries. The input slice is
// not modified.
func FromRecords(records interface{}) (*Table, error) {
	rv := reflect.ValueOf(records)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"records must be a slice of structs, got %T", records)
	}

	elem := rv.Type().Elem()
	ptrRecords := elem.Kind() == reflect.Ptr
	if ptrRecords {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"record type %s is not a struct", elem)
	}

	schema, fieldIdx, err := schemaOfStruct(elem)
	if err != nil {
		return nil, err
	}

	columns := make([]*Column, len(schema.Fields))
	for i, f := range schema.Fields {
		columns[i] = NewColumn(f.Name, f.Type)
	}

	for i := 0; i < rv.Len(); i++ {
		rec := rv.Index(i)
		if ptrRecords {
			if rec.IsNil() {
				return nil, errors.Newf(errors.ErrorTypeValidation,
					"record at index %d is nil", i)
			}
			rec = rec.Elem()
		}

		for j, f := range schema.Fields {
			fv := rec.Field(fieldIdx[j])
			if f.Nullable {
				if fv.IsNil() {
					columns[j].AppendNull()
					continue
				}
				fv = fv.Elem()
			}
			columns[j].values = append(columns[j].values, fieldValue(fv, f.Type))
		}
	}

	return New(columns...)
}

// fieldValue converts a scalar struct field to a Value. The field's kind
// was validated when the schema was derived.
func fieldValue(fv reflect.Value, t ColumnType) Value {
	switch t {
	case TypeString:
		return String(fv.String())
	case TypeInt:
		if fv.CanInt() {
			return Int(fv.Int())
		}
		return Int(int64(fv.Uint()))
	case TypeFloat:
		return Float(fv.Float())
	default:
		return Bool(fv.Bool())
	}
}

// FromMaps builds a table from an explicit schema descriptor and a sequence
// of records given as maps. This is the construction path for callers that
// carry a field-to-type mapping instead of a record struct. Map entries
// that are absent or nil become missing values; present values are
// canonicalized against the field type and fail with a validation error on
// mismatch.
func FromMaps(schema *Schema, rows []map[string]interface{}) (*Table, error) {
	if err := schema.validate(); err != nil {
		return nil, err
	}

	columns := make([]*Column, len(schema.Fields))
	for i, f := range schema.Fields {
		columns[i] = NewColumn(f.Name, f.Type)
	}

	for i, row := range rows {
		for j, f := range schema.Fields {
			raw, ok := row[f.Name]
			if !ok || raw == nil {
				columns[j].AppendNull()
				continue
			}
			if err := columns[j].AppendRaw(raw); err != nil {
				return nil, errors.Wrap(err, errors.ErrorTypeValidation,
					"cannot build table from maps").
					WithDetail("row", i).
					WithDetail("field", f.Name)
			}
		}
	}

	return New(columns...)
}
