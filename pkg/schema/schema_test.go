package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/lambdadb/pkg/errors"
)

func mustField(t *testing.T, name string, dt DataType, nullable bool) Field {
	t.Helper()
	f, err := NewField(name, dt, nullable)
	require.NoError(t, err)
	return f
}

func TestNewField(t *testing.T) {
	f, err := NewField("age", Int64, true)
	require.NoError(t, err)
	assert.Equal(t, "age", f.Name())
	assert.Equal(t, Int64, f.DataType())
	assert.True(t, f.Nullable())
	assert.Equal(t, "age: Int64 (nullable)", f.String())
}

func TestNewFieldRejectsEmptyName(t *testing.T) {
	_, err := NewField("", Utf8, false)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
}

func TestNewFieldRejectsUnsupportedType(t *testing.T) {
	for _, dt := range []DataType{Invalid, DataType(99)} {
		_, err := NewField("x", dt, false)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeValidation), "type %d", dt)
	}
}

func TestParseDataType(t *testing.T) {
	tests := []struct {
		in   string
		want DataType
	}{
		{"Int64", Int64},
		{"bigint", Int64},
		{" UTF8 ", Utf8},
		{"text", Utf8},
		{"double", Float64},
		{"boolean", Bool},
		{"TIMESTAMP", Timestamp},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDataType(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseDataType("decimal")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
}

func TestDataTypeString(t *testing.T) {
	for _, dt := range SupportedTypes() {
		assert.True(t, dt.IsSupported())
		parsed, err := ParseDataType(dt.String())
		require.NoError(t, err)
		assert.Equal(t, dt, parsed)
	}
	assert.Equal(t, "Invalid", Invalid.String())
}

func TestSchemaIsACopy(t *testing.T) {
	fields := []Field{
		mustField(t, "id", Int64, false),
		mustField(t, "name", Utf8, false),
	}
	s := New(fields...)

	fields[0] = mustField(t, "changed", Bool, true)
	assert.Equal(t, "id", s.Field(0).Name())

	out := s.Fields()
	out[1] = mustField(t, "changed", Bool, true)
	assert.Equal(t, "name", s.Field(1).Name())
}

func TestSchemaLookups(t *testing.T) {
	s := New(
		mustField(t, "id", Int64, false),
		mustField(t, "name", Utf8, false),
		mustField(t, "id", Float64, true),
	)

	assert.Equal(t, 3, s.NumFields())
	assert.Equal(t, 0, s.FieldIndex("id"))
	assert.Equal(t, 1, s.FieldIndex("name"))
	assert.Equal(t, -1, s.FieldIndex("missing"))
	assert.Equal(t, []string{"id", "name", "id"}, s.Names())
	assert.True(t, s.HasDuplicateNames())
	assert.False(t, New(mustField(t, "a", Int64, false)).HasDuplicateNames())
}

func TestSchemaEqual(t *testing.T) {
	a := New(mustField(t, "id", Int64, false), mustField(t, "age", Int64, true))
	b := New(mustField(t, "id", Int64, false), mustField(t, "age", Int64, true))
	c := New(mustField(t, "id", Int64, false), mustField(t, "age", Int64, false))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
	assert.True(t, New().Equal(New()))
}

func TestEmptySchema(t *testing.T) {
	s := New()
	assert.Equal(t, 0, s.NumFields())
	assert.Empty(t, s.Fields())
	assert.Equal(t, "schema:\n", s.String())
}
