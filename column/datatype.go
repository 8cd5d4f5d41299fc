package column

import (
	"fmt"
	"strings"
)

// TypeID identifies the logical element type of a column.
type TypeID uint8

const (
	TypeInvalid TypeID = iota
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUInt8
	TypeUInt16
	TypeUInt32
	TypeUInt64
	TypeFloat32
	TypeFloat64
	TypeBool
	TypeString
	TypeTimestamp
	TypeDuration
	TypeDecimal
	TypeList
	TypeStruct
	TypeFixedSizeBinary
)

// String implements fmt.Stringer.
func (id TypeID) String() string {
	switch id {
	case TypeInt8:
		return "Int8"
	case TypeInt16:
		return "Int16"
	case TypeInt32:
		return "Int32"
	case TypeInt64:
		return "Int64"
	case TypeUInt8:
		return "UInt8"
	case TypeUInt16:
		return "UInt16"
	case TypeUInt32:
		return "UInt32"
	case TypeUInt64:
		return "UInt64"
	case TypeFloat32:
		return "Float32"
	case TypeFloat64:
		return "Float64"
	case TypeBool:
		return "Bool"
	case TypeString:
		return "String"
	case TypeTimestamp:
		return "Timestamp"
	case TypeDuration:
		return "Duration"
	case TypeDecimal:
		return "Decimal"
	case TypeList:
		return "List"
	case TypeStruct:
		return "Struct"
	case TypeFixedSizeBinary:
		return "FixedSizeBinary"
	default:
		return "Invalid"
	}
}

// DataType describes the logical type of a column's elements. Primitive
// types are singletons (Int32, Float64, ...); nested types carry their
// child types.
type DataType interface {
	ID() TypeID
	String() string

	// Children returns the child types of a nested type, nil for primitives.
	Children() []DataType
}

type primitiveType struct {
	id TypeID
}

func (t primitiveType) ID() TypeID           { return t.id }
func (t primitiveType) String() string       { return t.id.String() }
func (t primitiveType) Children() []DataType { return nil }

// Primitive data type singletons.
var (
	Int8      DataType = primitiveType{TypeInt8}
	Int16     DataType = primitiveType{TypeInt16}
	Int32     DataType = primitiveType{TypeInt32}
	Int64     DataType = primitiveType{TypeInt64}
	UInt8     DataType = primitiveType{TypeUInt8}
	UInt16    DataType = primitiveType{TypeUInt16}
	UInt32    DataType = primitiveType{TypeUInt32}
	UInt64    DataType = primitiveType{TypeUInt64}
	Float32   DataType = primitiveType{TypeFloat32}
	Float64   DataType = primitiveType{TypeFloat64}
	Bool      DataType = primitiveType{TypeBool}
	String    DataType = primitiveType{TypeString}
	Timestamp DataType = primitiveType{TypeTimestamp}
	Duration  DataType = primitiveType{TypeDuration}
)

// DecimalType is a fixed-point decimal. Values are stored as unscaled
// 64-bit integers; the logical value is unscaled * 10^-Scale.
type DecimalType struct {
	Scale int32
}

func (t DecimalType) ID() TypeID           { return TypeDecimal }
func (t DecimalType) String() string       { return fmt.Sprintf("Decimal(scale=%d)", t.Scale) }
func (t DecimalType) Children() []DataType { return nil }

// ListType is a variable-length list of Elem values.
type ListType struct {
	Elem DataType
}

func (t ListType) ID() TypeID           { return TypeList }
func (t ListType) String() string       { return fmt.Sprintf("List<%s>", t.Elem) }
func (t ListType) Children() []DataType { return []DataType{t.Elem} }

// Field is a named member of a StructType.
type Field struct {
	Name string
	Type DataType
}

// StructType is a composite of named fields in declared order.
type StructType struct {
	Fields []Field
}

func (t StructType) ID() TypeID { return TypeStruct }

func (t StructType) String() string {
	var sb strings.Builder
	sb.WriteString("Struct<")
	for i, f := range t.Fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %s", f.Name, f.Type)
	}
	sb.WriteString(">")
	return sb.String()
}

func (t StructType) Children() []DataType {
	children := make([]DataType, len(t.Fields))
	for i, f := range t.Fields {
		children[i] = f.Type
	}
	return children
}

// FixedSizeBinaryType is an opaque binary value of exactly Width bytes.
// Hash digests are materialized as columns of this type.
type FixedSizeBinaryType struct {
	Width int
}

func (t FixedSizeBinaryType) ID() TypeID           { return TypeFixedSizeBinary }
func (t FixedSizeBinaryType) String() string       { return fmt.Sprintf("FixedSizeBinary[%d]", t.Width) }
func (t FixedSizeBinaryType) Children() []DataType { return nil }

// Depth returns the nesting depth of a data type: 0 for primitives,
// 1 + the deepest child for lists and structs.
func Depth(dt DataType) int {
	maxChild := -1
	for _, c := range dt.Children() {
		if d := Depth(c); d > maxChild {
			maxChild = d
		}
	}
	return maxChild + 1
}
