package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/tabular/pkg/errors"
)

type person struct {
	Name string
	Age  int64
	City *string
}

func strPtr(s string) *string { return &s }

// testPeople returns ten records; one has a missing city and exactly two
// names start with "J" with age at most 30.
func testPeople() []person {
	return []person{
		{Name: "John", Age: 25, City: strPtr("New York")},
		{Name: "Jane", Age: 30, City: strPtr("Boston")},
		{Name: "Bob", Age: 41, City: strPtr("Chicago")},
		{Name: "Alice", Age: 33, City: strPtr("Denver")},
		{Name: "Carol", Age: 52, City: strPtr("Seattle")},
		{Name: "Dave", Age: 28, City: strPtr("Austin")},
		{Name: "Eve", Age: 36, City: strPtr("Miami")},
		{Name: "Frank", Age: 47, City: nil},
		{Name: "Grace", Age: 29, City: strPtr("Portland")},
		{Name: "Henry", Age: 61, City: strPtr("Dallas")},
	}
}

func peopleTable(t *testing.T) *Table {
	t.Helper()
	table, err := FromRecords(testPeople())
	require.NoError(t, err)
	return table
}

func TestFromRecordsPeople(t *testing.T) {
	table := peopleTable(t)

	assert.Equal(t, 10, table.RowCount())
	assert.Equal(t, 3, table.ColumnCount())
	assert.Equal(t, []string{"Name", "Age", "City"}, table.ColumnNames())

	name, err := table.Column("Name")
	require.NoError(t, err)
	assert.Equal(t, TypeString, name.Type())

	age, err := table.Column("Age")
	require.NoError(t, err)
	assert.Equal(t, TypeInt, age.Type())

	// Row 0 is John, 25, New York
	row := table.Row(0)
	v, err := row.Value("Name")
	require.NoError(t, err)
	assert.Equal(t, String("John"), v)
	v, err = row.Value("Age")
	require.NoError(t, err)
	assert.Equal(t, Int(25), v)
	v, err = row.Value("City")
	require.NoError(t, err)
	assert.Equal(t, String("New York"), v)

	// Frank's city is missing, not defaulted
	city, err := table.Column("City")
	require.NoError(t, err)
	assert.True(t, city.Get(7).IsNull)
}

func TestFromRecordsEmptyInput(t *testing.T) {
	table, err := FromRecords([]person{})
	require.NoError(t, err)

	assert.Equal(t, 0, table.RowCount())
	assert.Equal(t, []string{"Name", "Age", "City"}, table.ColumnNames())
}

func TestFromRecordsPointerSlice(t *testing.T) {
	table, err := FromRecords([]*person{
		{Name: "John", Age: 25, City: strPtr("New York")},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, table.RowCount())

	_, err = FromRecords([]*person{nil})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
}

func TestFromRecordsNotASlice(t *testing.T) {
	_, err := FromRecords(person{Name: "John"})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))

	_, err = FromRecords(nil)
	require.Error(t, err)

	_, err = FromRecords([]int{1, 2, 3})
	require.Error(t, err)
}

type weekday int

func TestFromRecordsSchemaValidation(t *testing.T) {
	type withSlice struct {
		Name string
		Tags []string
	}
	type withMap struct {
		Name string
		Meta map[string]string
	}
	type withStruct struct {
		Name string
		When time.Time
	}
	type withInterface struct {
		Name string
		Any  interface{}
	}
	type withEnum struct {
		Name string
		Day  weekday
	}
	type withNestedPtr struct {
		Name string
		Next **int
	}

	tests := []struct {
		name    string
		records interface{}
		field   string
	}{
		{"slice field", []withSlice{}, "Tags"},
		{"map field", []withMap{}, "Meta"},
		{"struct field", []withStruct{}, "When"},
		{"interface field", []withInterface{}, "Any"},
		{"enum field", []withEnum{}, "Day"},
		{"double pointer field", []withNestedPtr{}, "Next"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRecords(tt.records)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeSchema))

			var structured *errors.Error
			require.ErrorAs(t, err, &structured)
			assert.Equal(t, tt.field, structured.Details["field"])
		})
	}
}

func TestFromRecordsFirstInvalidFieldWins(t *testing.T) {
	type twoBad struct {
		Name string
		Meta map[string]string
		Tags []string
	}

	_, err := FromRecords([]twoBad{})
	require.Error(t, err)

	var structured *errors.Error
	require.ErrorAs(t, err, &structured)
	assert.Equal(t, "Meta", structured.Details["field"])
}

func TestFromRecordsValidatesTypeNotInstances(t *testing.T) {
	type bad struct {
		Tags []string
	}

	// Validation must fail even with a non-empty input; no instance data
	// is needed to reject the type.
	_, err := FromRecords([]bad{{Tags: []string{"a"}}})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeSchema))
}

func TestFromRecordsSkipsUnexportedFields(t *testing.T) {
	type rec struct {
		Name   string
		hidden int
	}

	table, err := FromRecords([]rec{{Name: "a"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Name"}, table.ColumnNames())
}

func TestFromRecordsUintAndFloatFields(t *testing.T) {
	type rec struct {
		Count uint32
		Score float32
		OK    bool
	}

	table, err := FromRecords([]rec{{Count: 7, Score: 1.5, OK: true}})
	require.NoError(t, err)

	row := table.Row(0)
	v, err := row.Value("Count")
	require.NoError(t, err)
	assert.Equal(t, Int(7), v)
	v, err = row.Value("Score")
	require.NoError(t, err)
	assert.Equal(t, Float(1.5), v)
	v, err = row.Value("OK")
	require.NoError(t, err)
	assert.Equal(t, Bool(true), v)
}

func TestSchemaOf(t *testing.T) {
	schema, err := SchemaOf(person{})
	require.NoError(t, err)
	require.Len(t, schema.Fields, 3)

	assert.Equal(t, Field{Name: "Name", Type: TypeString}, schema.Fields[0])
	assert.Equal(t, Field{Name: "Age", Type: TypeInt}, schema.Fields[1])
	assert.Equal(t, Field{Name: "City", Type: TypeString, Nullable: true}, schema.Fields[2])

	// Pointer to struct works too
	schema, err = SchemaOf(&person{})
	require.NoError(t, err)
	assert.Len(t, schema.Fields, 3)

	_, err = SchemaOf("not a struct")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
}

func TestFromMaps(t *testing.T) {
	schema := &Schema{Fields: []Field{
		{Name: "Name", Type: TypeString},
		{Name: "Score", Type: TypeFloat, Nullable: true},
	}}

	table, err := FromMaps(schema, []map[string]interface{}{
		{"Name": "a", "Score": 1.5},
		{"Name": "b"},              // missing key becomes null
		{"Name": "c", "Score": 2},  // int canonicalized to float
		{"Name": "d", "Score": nil},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, table.RowCount())
	score, err := table.Column("Score")
	require.NoError(t, err)
	assert.Equal(t, Float(1.5), score.Get(0))
	assert.True(t, score.Get(1).IsNull)
	assert.Equal(t, Float(2), score.Get(2))
	assert.True(t, score.Get(3).IsNull)
}

func TestFromMapsRejectsBadValues(t *testing.T) {
	schema := &Schema{Fields: []Field{{Name: "Score", Type: TypeFloat}}}

	_, err := FromMaps(schema, []map[string]interface{}{
		{"Score": "not a number"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
}

func TestFromMapsRejectsBadSchema(t *testing.T) {
	tests := []struct {
		name   string
		schema *Schema
	}{
		{"nil schema", nil},
		{"empty field name", &Schema{Fields: []Field{{Name: "", Type: TypeInt}}}},
		{"duplicate field", &Schema{Fields: []Field{
			{Name: "A", Type: TypeInt},
			{Name: "A", Type: TypeString},
		}}},
		{"unknown type", &Schema{Fields: []Field{{Name: "A", Type: ColumnType(99)}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromMaps(tt.schema, nil)
			require.Error(t, err)
		})
	}
}
