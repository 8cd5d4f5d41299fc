// Package encode turns logical column values into their canonical byte
// representation, the deterministic form fed into the hash kernels. The
// encoding is independent of physical storage layout: fixed-width values
// are little-endian, byte-strings are raw bytes, nested values are
// depth-first concatenations of their children.
package encode

import (
	"encoding/binary"
	"math"

	"github.com/hupe1980/rowhash/column"
)

// Mode selects the canonical encoding rules.
type Mode uint8

const (
	// Native is the default encoding: little-endian scalars, raw bytes.
	Native Mode = iota

	// Spark matches Spark's hash input normalization: negative zero
	// becomes positive zero, every NaN bit pattern collapses to the
	// canonical quiet NaN, and decimal unscaled values are big-endian.
	// Strings need no special handling in Go: values are already UTF-8,
	// so Spark's encoded-length semantics coincide with the raw bytes.
	Spark
)

// Canonical quiet NaN bit patterns used by the Spark mode, the values of
// java.lang.Float.NaN and java.lang.Double.NaN.
const (
	sparkNaN32 = 0x7fc00000
	sparkNaN64 = 0x7ff8000000000000
)

// NullSentinel is the fixed byte pattern substituted for a null value by
// algorithms with sentinel null handling.
var NullSentinel = []byte{0xff, 0xff, 0xff, 0xff}

// AppendValue appends the canonical bytes of the value at row to dst and
// returns the extended slice. Null values contribute nullRep, which may be
// nil to contribute nothing. Nested values recurse depth-first over
// children in declared order; a nested value's own null state is handled
// independently of its children's.
func AppendValue(dst []byte, col column.Column, row int, mode Mode, nullRep []byte) []byte {
	if col.IsNull(row) {
		return append(dst, nullRep...)
	}

	switch col.DataType().(type) {
	case column.ListType:
		offsets := col.ListOffsets()
		child := col.ListValues()
		for i := offsets[row]; i < offsets[row+1]; i++ {
			dst = AppendValue(dst, child, int(i), mode, nullRep)
		}
		return dst

	case column.StructType:
		for _, field := range col.StructFields() {
			dst = AppendValue(dst, field, row, mode, nullRep)
		}
		return dst

	case column.DecimalType:
		v := uint64(col.Int64s()[row])
		if mode == Spark {
			return binary.BigEndian.AppendUint64(dst, v)
		}
		return binary.LittleEndian.AppendUint64(dst, v)
	}

	switch col.DataType().ID() {
	case column.TypeInt8:
		return append(dst, byte(col.Int8s()[row]))
	case column.TypeInt16:
		return binary.LittleEndian.AppendUint16(dst, uint16(col.Int16s()[row]))
	case column.TypeInt32:
		return binary.LittleEndian.AppendUint32(dst, uint32(col.Int32s()[row]))
	case column.TypeInt64, column.TypeTimestamp, column.TypeDuration:
		return binary.LittleEndian.AppendUint64(dst, uint64(col.Int64s()[row]))
	case column.TypeUInt8:
		return append(dst, col.UInt8s()[row])
	case column.TypeUInt16:
		return binary.LittleEndian.AppendUint16(dst, col.UInt16s()[row])
	case column.TypeUInt32:
		return binary.LittleEndian.AppendUint32(dst, col.UInt32s()[row])
	case column.TypeUInt64:
		return binary.LittleEndian.AppendUint64(dst, col.UInt64s()[row])
	case column.TypeFloat32:
		return binary.LittleEndian.AppendUint32(dst, float32Bits(col.Float32s()[row], mode))
	case column.TypeFloat64:
		return binary.LittleEndian.AppendUint64(dst, float64Bits(col.Float64s()[row], mode))
	case column.TypeBool:
		if col.Bools()[row] {
			return append(dst, 1)
		}
		return append(dst, 0)
	case column.TypeString:
		return append(dst, col.Strings()[row]...)
	case column.TypeFixedSizeBinary:
		return append(dst, col.Binary(row)...)
	default:
		// Unreachable: Supported rejects unknown types before row work.
		panic("encode: unsupported data type " + col.DataType().String())
	}
}

func float32Bits(v float32, mode Mode) uint32 {
	if mode == Spark {
		if v != v {
			return sparkNaN32
		}
		if v == 0 {
			return 0 // collapses -0.0
		}
	}
	return math.Float32bits(v)
}

func float64Bits(v float64, mode Mode) uint64 {
	if mode == Spark {
		if v != v {
			return sparkNaN64
		}
		if v == 0 {
			return 0
		}
	}
	return math.Float64bits(v)
}

// Supported reports whether dt can be canonicalized, recursing into
// nested children.
func Supported(dt column.DataType) bool {
	switch dt.ID() {
	case column.TypeInvalid:
		return false
	case column.TypeList, column.TypeStruct:
		children := dt.Children()
		if len(children) == 0 {
			return false
		}
		for _, c := range children {
			if !Supported(c) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
