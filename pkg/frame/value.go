// Package frame provides an in-memory columnar table and convenience
// operations over it: reflective construction from record structs, column
// introspection, value-frequency summaries, row filtering, and row-wise
// derived columns.
package frame

import (
	"fmt"
	"strconv"

	"github.com/ajitpratap0/tabular/pkg/errors"
)

// ColumnType represents the scalar type of a column
type ColumnType int

const (
	// TypeString represents text data.
	TypeString ColumnType = iota
	// TypeInt represents integer data (stored as int64).
	TypeInt
	// TypeFloat represents floating-point data (stored as float64).
	TypeFloat
	// TypeBool represents boolean data.
	TypeBool
)

// String returns the string representation of a ColumnType.
func (t ColumnType) String() string {
	switch t {
	case TypeString:
		return "String"
	case TypeInt:
		return "Int"
	case TypeFloat:
		return "Float"
	case TypeBool:
		return "Bool"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// Value is a typed container for cell values. A Value either holds a scalar
// of its declared ColumnType or is missing (IsNull). Raw is canonicalized:
// string, int64, float64, or bool.
type Value struct {
	Raw    interface{}
	Type   ColumnType
	IsNull bool
}

// String creates a text value.
func String(s string) Value {
	return Value{Raw: s, Type: TypeString}
}

// Int creates an integer value.
func Int(i int64) Value {
	return Value{Raw: i, Type: TypeInt}
}

// Float creates a floating-point value.
func Float(f float64) Value {
	return Value{Raw: f, Type: TypeFloat}
}

// Bool creates a boolean value.
func Bool(b bool) Value {
	return Value{Raw: b, Type: TypeBool}
}

// Null creates a missing value of the given type.
func Null(t ColumnType) Value {
	return Value{Raw: nil, Type: t, IsNull: true}
}

// NewValue creates a Value of the given type from a raw Go value,
// canonicalizing the representation. A nil raw value becomes a missing entry.
func NewValue(raw interface{}, t ColumnType) (Value, error) {
	if raw == nil {
		return Null(t), nil
	}

	switch t {
	case TypeString:
		if s, ok := raw.(string); ok {
			return String(s), nil
		}
	case TypeInt:
		switch v := raw.(type) {
		case int:
			return Int(int64(v)), nil
		case int8:
			return Int(int64(v)), nil
		case int16:
			return Int(int64(v)), nil
		case int32:
			return Int(int64(v)), nil
		case int64:
			return Int(v), nil
		case uint:
			return Int(int64(v)), nil
		case uint8:
			return Int(int64(v)), nil
		case uint16:
			return Int(int64(v)), nil
		case uint32:
			return Int(int64(v)), nil
		case uint64:
			return Int(int64(v)), nil
		}
	case TypeFloat:
		switch v := raw.(type) {
		case float32:
			return Float(float64(v)), nil
		case float64:
			return Float(v), nil
		case int:
			return Float(float64(v)), nil
		case int64:
			return Float(float64(v)), nil
		}
	case TypeBool:
		if b, ok := raw.(bool); ok {
			return Bool(b), nil
		}
	}

	return Value{}, errors.Newf(errors.ErrorTypeValidation,
		"value %v (%T) is not assignable to column type %s", raw, raw, t)
}

// AsString returns the text value. The second result is false if the value
// is missing or not text.
func (v Value) AsString() (string, bool) {
	if v.IsNull {
		return "", false
	}
	s, ok := v.Raw.(string)
	return s, ok
}

// AsInt returns the integer value. The second result is false if the value
// is missing or not an integer.
func (v Value) AsInt() (int64, bool) {
	if v.IsNull {
		return 0, false
	}
	i, ok := v.Raw.(int64)
	return i, ok
}

// AsFloat returns the floating-point value. The second result is false if
// the value is missing or not a float.
func (v Value) AsFloat() (float64, bool) {
	if v.IsNull {
		return 0, false
	}
	f, ok := v.Raw.(float64)
	return f, ok
}

// AsBool returns the boolean value. The second result is false if the value
// is missing or not a boolean.
func (v Value) AsBool() (bool, bool) {
	if v.IsNull {
		return false, false
	}
	b, ok := v.Raw.(bool)
	return b, ok
}

// Equal reports whether two values are equal. Missing values are equal only
// to other missing values of any type.
func (v Value) Equal(o Value) bool {
	if v.IsNull || o.IsNull {
		return v.IsNull && o.IsNull
	}
	return v.Type == o.Type && v.Raw == o.Raw
}

// String returns a display representation of the value; missing values
// render as "null".
func (v Value) String() string {
	if v.IsNull {
		return "null"
	}
	switch raw := v.Raw.(type) {
	case string:
		return raw
	case int64:
		return strconv.FormatInt(raw, 10)
	case float64:
		return strconv.FormatFloat(raw, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(raw)
	default:
		return fmt.Sprintf("%v", raw)
	}
}
