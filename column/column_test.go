package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveColumns(t *testing.T) {
	c := NewInt32([]int32{1, 2, 3}, nil)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, Int32, c.DataType())
	assert.Equal(t, 0, c.NullCount())
	assert.False(t, c.IsNull(1))
	assert.Equal(t, []int32{1, 2, 3}, c.Int32s())
}

func TestColumnValidity(t *testing.T) {
	c := NewFloat64([]float64{1.5, 0, 2.5}, []bool{true, false, true})
	assert.Equal(t, 1, c.NullCount())
	assert.False(t, c.IsNull(0))
	assert.True(t, c.IsNull(1))
	assert.False(t, c.IsNull(2))
}

func TestColumnAllValid(t *testing.T) {
	// An all-true validity slice must not allocate a null bitmap.
	c := NewBool([]bool{true, false}, []bool{true, true})
	assert.Equal(t, 0, c.NullCount())
}

func TestStringColumn(t *testing.T) {
	c := NewString([]string{"", "abc"}, []bool{true, true})
	assert.False(t, c.IsNull(0), "empty string is present, not null")
	assert.Equal(t, "abc", c.Strings()[1])
}

func TestDecimalColumn(t *testing.T) {
	c := NewDecimal([]int64{12345, -1}, 2, nil)
	require.IsType(t, DecimalType{}, c.DataType())
	assert.Equal(t, int32(2), c.DataType().(DecimalType).Scale)
}

func TestNewList(t *testing.T) {
	child := NewInt32([]int32{1, 2, 3, 4}, nil)

	c, err := NewList([]int32{0, 2, 2, 4}, child, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, ListType{Elem: Int32}, c.DataType())
	assert.Equal(t, 4, c.ListValues().Len())

	_, err = NewList(nil, child, nil)
	assert.Error(t, err)

	_, err = NewList([]int32{0, 3, 2}, child, nil)
	assert.Error(t, err, "offsets must be non-decreasing")

	_, err = NewList([]int32{0, 2}, child, nil)
	assert.Error(t, err, "end offset must match child length")
}

func TestNewStruct(t *testing.T) {
	a := NewInt32([]int32{1, 2}, nil)
	b := NewString([]string{"x", "y"}, nil)

	c, err := NewStruct([]string{"a", "b"}, []Column{a, b}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Len(t, c.StructFields(), 2)

	st, ok := c.DataType().(StructType)
	require.True(t, ok)
	assert.Equal(t, "a", st.Fields[0].Name)
	assert.Equal(t, Int32, st.Fields[0].Type)

	_, err = NewStruct([]string{"a"}, []Column{a, b}, nil)
	assert.Error(t, err, "name/column count mismatch")

	_, err = NewStruct(nil, nil, nil)
	assert.Error(t, err, "empty struct")

	short := NewInt32([]int32{1}, nil)
	_, err = NewStruct([]string{"a", "b"}, []Column{a, short}, nil)
	assert.Error(t, err, "field length mismatch")
}

func TestNewFixedSizeBinary(t *testing.T) {
	c, err := NewFixedSizeBinary(4, []byte{1, 2, 3, 4, 5, 6, 7, 8}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 4, c.BinaryWidth())
	assert.Equal(t, []byte{5, 6, 7, 8}, c.Binary(1))

	_, err = NewFixedSizeBinary(0, nil, nil)
	assert.Error(t, err)

	_, err = NewFixedSizeBinary(4, []byte{1, 2, 3}, nil)
	assert.Error(t, err)
}
