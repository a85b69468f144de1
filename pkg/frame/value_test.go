package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValueCanonicalization(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		typ  ColumnType
		want Value
	}{
		{"string", "hello", TypeString, String("hello")},
		{"int", 42, TypeInt, Int(42)},
		{"int32", int32(7), TypeInt, Int(7)},
		{"uint16", uint16(9), TypeInt, Int(9)},
		{"float64", 1.5, TypeFloat, Float(1.5)},
		{"float32", float32(2), TypeFloat, Float(2)},
		{"int to float", 3, TypeFloat, Float(3)},
		{"bool", true, TypeBool, Bool(true)},
		{"nil is missing", nil, TypeInt, Null(TypeInt)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewValue(tt.raw, tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewValueMismatch(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		typ  ColumnType
	}{
		{"string to int", "42", TypeInt},
		{"float to int", 1.5, TypeInt},
		{"bool to string", true, TypeString},
		{"string to bool", "true", TypeBool},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewValue(tt.raw, tt.typ)
			assert.Error(t, err)
		})
	}
}

func TestValueAccessors(t *testing.T) {
	s, ok := String("x").AsString()
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	i, ok := Int(5).AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(5), i)

	f, ok := Float(2.5).AsFloat()
	assert.True(t, ok)
	assert.Equal(t, 2.5, f)

	b, ok := Bool(true).AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	// Wrong type and missing values both report not-ok
	_, ok = Int(5).AsString()
	assert.False(t, ok)
	_, ok = Null(TypeInt).AsInt()
	assert.False(t, ok)
}

func TestValueEqual(t *testing.T) {
	assert.True(t, Int(1).Equal(Int(1)))
	assert.False(t, Int(1).Equal(Int(2)))
	assert.False(t, Int(1).Equal(Float(1)))
	assert.True(t, Null(TypeInt).Equal(Null(TypeString)))
	assert.False(t, Null(TypeInt).Equal(Int(0)))
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "hello", String("hello").String())
	assert.Equal(t, "42", Int(42).String())
	assert.Equal(t, "1.5", Float(1.5).String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "null", Null(TypeString).String())
}

func TestColumnTypeString(t *testing.T) {
	assert.Equal(t, "String", TypeString.String())
	assert.Equal(t, "Int", TypeInt.String())
	assert.Equal(t, "Float", TypeFloat.String())
	assert.Equal(t, "Bool", TypeBool.String())
}
