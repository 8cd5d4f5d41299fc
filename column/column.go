package column

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Column is an immutable, read-only sequence of typed values with an
// optional null indicator per position. Null positions are tracked in a
// roaring bitmap; a nil bitmap means every value is present.
//
// Columns are views: constructors do not copy the backing slices, so the
// caller must not mutate them while the column is in use.
type Column struct {
	dtype  DataType
	length int
	nulls  *roaring.Bitmap

	data any // typed backing slice, selected by dtype

	// list columns
	offsets []int32
	child   *Column

	// struct columns
	children []Column

	// fixed-size binary columns
	width int
	raw   []byte
}

// nullBitmap converts a validity slice (true = present) into a bitmap of
// null positions. Returns nil when everything is valid.
func nullBitmap(valid []bool) *roaring.Bitmap {
	if valid == nil {
		return nil
	}
	var nulls *roaring.Bitmap
	for i, ok := range valid {
		if ok {
			continue
		}
		if nulls == nil {
			nulls = roaring.New()
		}
		nulls.Add(uint32(i))
	}
	return nulls
}

func newPrimitive[T any](dt DataType, values []T, valid []bool) Column {
	return Column{
		dtype:  dt,
		length: len(values),
		nulls:  nullBitmap(valid),
		data:   values,
	}
}

// NewInt8 creates an Int8 column. valid marks present positions and may
// be nil when no value is null; the same applies to all constructors.
func NewInt8(values []int8, valid []bool) Column { return newPrimitive(Int8, values, valid) }

// NewInt16 creates an Int16 column.
func NewInt16(values []int16, valid []bool) Column { return newPrimitive(Int16, values, valid) }

// NewInt32 creates an Int32 column.
func NewInt32(values []int32, valid []bool) Column { return newPrimitive(Int32, values, valid) }

// NewInt64 creates an Int64 column.
func NewInt64(values []int64, valid []bool) Column { return newPrimitive(Int64, values, valid) }

// NewUInt8 creates a UInt8 column.
func NewUInt8(values []uint8, valid []bool) Column { return newPrimitive(UInt8, values, valid) }

// NewUInt16 creates a UInt16 column.
func NewUInt16(values []uint16, valid []bool) Column { return newPrimitive(UInt16, values, valid) }

// NewUInt32 creates a UInt32 column.
func NewUInt32(values []uint32, valid []bool) Column { return newPrimitive(UInt32, values, valid) }

// NewUInt64 creates a UInt64 column.
func NewUInt64(values []uint64, valid []bool) Column { return newPrimitive(UInt64, values, valid) }

// NewFloat32 creates a Float32 column.
func NewFloat32(values []float32, valid []bool) Column { return newPrimitive(Float32, values, valid) }

// NewFloat64 creates a Float64 column.
func NewFloat64(values []float64, valid []bool) Column { return newPrimitive(Float64, values, valid) }

// NewBool creates a Bool column.
func NewBool(values []bool, valid []bool) Column { return newPrimitive(Bool, values, valid) }

// NewString creates a byte-string column. An empty string is a present,
// zero-length value, distinct from a null position.
func NewString(values []string, valid []bool) Column { return newPrimitive(String, values, valid) }

// NewTimestamp creates a Timestamp column from tick counts in the
// caller's native resolution.
func NewTimestamp(ticks []int64, valid []bool) Column { return newPrimitive(Timestamp, ticks, valid) }

// NewDuration creates a Duration column from tick counts.
func NewDuration(ticks []int64, valid []bool) Column { return newPrimitive(Duration, ticks, valid) }

// NewDecimal creates a fixed-point decimal column from unscaled 64-bit
// integer values. The logical value at position i is unscaled[i] * 10^-scale.
func NewDecimal(unscaled []int64, scale int32, valid []bool) Column {
	return newPrimitive(DecimalType{Scale: scale}, unscaled, valid)
}

// NewList creates a list-of-T column. offsets has one entry per row plus a
// trailing end offset: row i spans child positions offsets[i] to offsets[i+1].
func NewList(offsets []int32, child Column, valid []bool) (Column, error) {
	if len(offsets) == 0 {
		return Column{}, fmt.Errorf("list offsets must contain at least the end offset")
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return Column{}, fmt.Errorf("list offsets must be non-decreasing: offsets[%d]=%d < offsets[%d]=%d",
				i, offsets[i], i-1, offsets[i-1])
		}
	}
	if int(offsets[len(offsets)-1]) != child.Len() {
		return Column{}, fmt.Errorf("list end offset %d does not match child length %d",
			offsets[len(offsets)-1], child.Len())
	}

	return Column{
		dtype:   ListType{Elem: child.DataType()},
		length:  len(offsets) - 1,
		nulls:   nullBitmap(valid),
		offsets: offsets,
		child:   &child,
	}, nil
}

// NewStruct creates a struct-of-fields column. All field columns must share
// the same length, which becomes the struct column's row count.
func NewStruct(names []string, children []Column, valid []bool) (Column, error) {
	if len(names) != len(children) {
		return Column{}, fmt.Errorf("struct has %d names but %d field columns", len(names), len(children))
	}
	if len(children) == 0 {
		return Column{}, fmt.Errorf("struct must have at least one field")
	}

	length := children[0].Len()
	fields := make([]Field, len(children))
	for i, c := range children {
		if c.Len() != length {
			return Column{}, fmt.Errorf("struct field %q has %d rows, want %d", names[i], c.Len(), length)
		}
		fields[i] = Field{Name: names[i], Type: c.DataType()}
	}

	return Column{
		dtype:    StructType{Fields: fields},
		length:   length,
		nulls:    nullBitmap(valid),
		children: children,
	}, nil
}

// NewFixedSizeBinary creates a column of opaque width-byte values backed by
// one contiguous buffer.
func NewFixedSizeBinary(width int, data []byte, valid []bool) (Column, error) {
	if width <= 0 {
		return Column{}, fmt.Errorf("fixed-size binary width must be positive, got %d", width)
	}
	if len(data)%width != 0 {
		return Column{}, fmt.Errorf("buffer length %d is not a multiple of width %d", len(data), width)
	}

	return Column{
		dtype:  FixedSizeBinaryType{Width: width},
		length: len(data) / width,
		nulls:  nullBitmap(valid),
		width:  width,
		raw:    data,
	}, nil
}

// DataType returns the column's logical element type.
func (c Column) DataType() DataType { return c.dtype }

// Len returns the number of rows.
func (c Column) Len() int { return c.length }

// IsNull reports whether the value at row is null.
func (c Column) IsNull(row int) bool {
	return c.nulls != nil && c.nulls.Contains(uint32(row))
}

// NullCount returns the number of null positions.
func (c Column) NullCount() int {
	if c.nulls == nil {
		return 0
	}
	return int(c.nulls.GetCardinality())
}

// The typed readers below panic when the column's data type does not match,
// mirroring a slice type assertion. Callers dispatch on DataType first.

// Int8s returns the backing values of an Int8 column.
func (c Column) Int8s() []int8 { return c.data.([]int8) }

// Int16s returns the backing values of an Int16 column.
func (c Column) Int16s() []int16 { return c.data.([]int16) }

// Int32s returns the backing values of an Int32 column.
func (c Column) Int32s() []int32 { return c.data.([]int32) }

// Int64s returns the backing values of an Int64, Timestamp, Duration or
// Decimal column.
func (c Column) Int64s() []int64 { return c.data.([]int64) }

// UInt8s returns the backing values of a UInt8 column.
func (c Column) UInt8s() []uint8 { return c.data.([]uint8) }

// UInt16s returns the backing values of a UInt16 column.
func (c Column) UInt16s() []uint16 { return c.data.([]uint16) }

// UInt32s returns the backing values of a UInt32 column.
func (c Column) UInt32s() []uint32 { return c.data.([]uint32) }

// UInt64s returns the backing values of a UInt64 column.
func (c Column) UInt64s() []uint64 { return c.data.([]uint64) }

// Float32s returns the backing values of a Float32 column.
func (c Column) Float32s() []float32 { return c.data.([]float32) }

// Float64s returns the backing values of a Float64 column.
func (c Column) Float64s() []float64 { return c.data.([]float64) }

// Bools returns the backing values of a Bool column.
func (c Column) Bools() []bool { return c.data.([]bool) }

// Strings returns the backing values of a String column.
func (c Column) Strings() []string { return c.data.([]string) }

// ListOffsets returns the offsets of a List column.
func (c Column) ListOffsets() []int32 { return c.offsets }

// ListValues returns the child column of a List column.
func (c Column) ListValues() Column { return *c.child }

// StructFields returns the field columns of a Struct column.
func (c Column) StructFields() []Column { return c.children }

// BinaryWidth returns the element width of a FixedSizeBinary column.
func (c Column) BinaryWidth() int { return c.width }

// Binary returns the value at row of a FixedSizeBinary column.
func (c Column) Binary(row int) []byte {
	return c.raw[row*c.width : (row+1)*c.width]
}
