package frame

import (
	"reflect"

	"github.com/ajitpratap0/tabular/pkg/errors"
)

// Field describes a single column in a record schema.
type Field struct {
	// Name is the column name, taken from the record field name.
	Name string
	// Type is the column's scalar type.
	Type ColumnType
	// Nullable marks columns whose entries may be missing. Pointer fields
	// in record structs produce nullable columns.
	Nullable bool
}

// Schema describes the column layout of a table, in declaration order.
type Schema struct {
	Fields []Field
}

// SchemaOf derives and validates the schema for a record type. The record
// may be a struct value or a pointer to one. Validation inspects only the
// type's shape, never instance data: every exported field must be a
// primitive scalar (text, integer, float, boolean), optionally behind one
// level of pointer for nullability. The first disallowed field, in
// declaration order, fails with a schema error naming the field and its
// type.
func SchemaOf(record interface{}) (*Schema, error) {
	t := reflect.TypeOf(record)
	if t == nil {
		return nil, errors.New(errors.ErrorTypeValidation, "record type is nil")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"record type %s is not a struct", t)
	}
	schema, _, err := schemaOfStruct(t)
	return schema, err
}

// schemaOfStruct validates a struct type and returns its schema together
// with the struct field index for each schema field (unexported fields are
// skipped).
func schemaOfStruct(t reflect.Type) (*Schema, []int, error) {
	schema := &Schema{Fields: make([]Field, 0, t.NumField())}
	fieldIdx := make([]int, 0, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			// unexported
			continue
		}

		ft := sf.Type
		nullable := false
		if ft.Kind() == reflect.Ptr {
			nullable = true
			ft = ft.Elem()
		}

		colType, reason := scalarTypeOf(ft)
		if reason != "" {
			return nil, nil, errors.Newf(errors.ErrorTypeSchema,
				"field %q has type %s: %s", sf.Name, sf.Type, reason).
				WithDetail("field", sf.Name).
				WithDetail("type", sf.Type.String())
		}

		schema.Fields = append(schema.Fields, Field{
			Name:     sf.Name,
			Type:     colType,
			Nullable: nullable,
		})
		fieldIdx = append(fieldIdx, i)
	}

	return schema, fieldIdx, nil
}

// scalarTypeOf classifies a field type. It returns the column type, or a
// non-empty reason string when the type cannot be stored in a scalar
// column.
func scalarTypeOf(t reflect.Type) (ColumnType, string) {
	// Defined scalar types (enumerations, time.Duration and friends) are
	// rejected: their values are not plain scalars to the caller.
	if t.PkgPath() != "" {
		return 0, "defined (enumeration-like) types are not supported"
	}

	switch t.Kind() {
	case reflect.String:
		return TypeString, ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return TypeInt, ""
	case reflect.Float32, reflect.Float64:
		return TypeFloat, ""
	case reflect.Bool:
		return TypeBool, ""
	case reflect.Slice, reflect.Array:
		return 0, "array-like types are not supported"
	case reflect.Map, reflect.Chan, reflect.Func, reflect.Ptr, reflect.UnsafePointer:
		return 0, "reference types are not supported"
	case reflect.Interface:
		return 0, "interface types are not supported"
	case reflect.Struct:
		return 0, "non-primitive value types are not supported"
	default:
		return 0, "type is not a primitive scalar"
	}
}

// validate checks a caller-supplied schema descriptor.
func (s *Schema) validate() error {
	if s == nil {
		return errors.New(errors.ErrorTypeValidation, "schema is nil")
	}
	seen := make(map[string]struct{}, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name == "" {
			return errors.New(errors.ErrorTypeValidation, "schema field has empty name")
		}
		if _, ok := seen[f.Name]; ok {
			return errors.Newf(errors.ErrorTypeDuplicateColumn,
				"schema field %q appears more than once", f.Name)
		}
		seen[f.Name] = struct{}{}
		switch f.Type {
		case TypeString, TypeInt, TypeFloat, TypeBool:
		default:
			return errors.Newf(errors.ErrorTypeValidation,
				"schema field %q has unknown type %d", f.Name, int(f.Type))
		}
	}
	return nil
}
