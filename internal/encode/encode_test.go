package encode

import (
	"bytes"
	"math"
	"testing"

	"github.com/hupe1980/rowhash/column"
)

func appendRow(t *testing.T, col column.Column, row int, mode Mode) []byte {
	t.Helper()
	return AppendValue(nil, col, row, mode, NullSentinel)
}

func TestFixedWidthLittleEndian(t *testing.T) {
	tests := []struct {
		name string
		col  column.Column
		want []byte
	}{
		{"int8", column.NewInt8([]int8{-1}, nil), []byte{0xff}},
		{"int16", column.NewInt16([]int16{0x0102}, nil), []byte{0x02, 0x01}},
		{"int32", column.NewInt32([]int32{0x01020304}, nil), []byte{0x04, 0x03, 0x02, 0x01}},
		{"int64", column.NewInt64([]int64{1}, nil), []byte{1, 0, 0, 0, 0, 0, 0, 0}},
		{"uint8", column.NewUInt8([]uint8{0xab}, nil), []byte{0xab}},
		{"uint16", column.NewUInt16([]uint16{0xabcd}, nil), []byte{0xcd, 0xab}},
		{"uint32", column.NewUInt32([]uint32{5}, nil), []byte{5, 0, 0, 0}},
		{"uint64", column.NewUInt64([]uint64{5}, nil), []byte{5, 0, 0, 0, 0, 0, 0, 0}},
		{"bool_true", column.NewBool([]bool{true}, nil), []byte{1}},
		{"bool_false", column.NewBool([]bool{false}, nil), []byte{0}},
		{"timestamp", column.NewTimestamp([]int64{2}, nil), []byte{2, 0, 0, 0, 0, 0, 0, 0}},
		{"duration", column.NewDuration([]int64{3}, nil), []byte{3, 0, 0, 0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := appendRow(t, tt.col, 0, Native)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("got % x, want % x", got, tt.want)
			}
		})
	}
}

func TestStringBytes(t *testing.T) {
	c := column.NewString([]string{"abc", ""}, nil)

	if got := appendRow(t, c, 0, Native); !bytes.Equal(got, []byte("abc")) {
		t.Errorf("got % x, want raw bytes of abc", got)
	}
	if got := appendRow(t, c, 1, Native); len(got) != 0 {
		t.Errorf("empty string must encode to zero bytes, got % x", got)
	}
}

func TestNullContributesSentinel(t *testing.T) {
	c := column.NewString([]string{""}, []bool{false})

	got := AppendValue(nil, c, 0, Native, NullSentinel)
	if !bytes.Equal(got, NullSentinel) {
		t.Errorf("null with sentinel policy: got % x, want % x", got, NullSentinel)
	}

	got = AppendValue(nil, c, 0, Native, nil)
	if len(got) != 0 {
		t.Errorf("null with skip policy must contribute no bytes, got % x", got)
	}
}

func TestDecimalByteOrder(t *testing.T) {
	c := column.NewDecimal([]int64{0x0102030405060708}, 2, nil)

	native := appendRow(t, c, 0, Native)
	want := []byte{8, 7, 6, 5, 4, 3, 2, 1}
	if !bytes.Equal(native, want) {
		t.Errorf("native decimal: got % x, want % x", native, want)
	}

	spark := appendRow(t, c, 0, Spark)
	want = []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if !bytes.Equal(spark, want) {
		t.Errorf("spark decimal: got % x, want % x", spark, want)
	}
}

func TestSparkFloatNormalization(t *testing.T) {
	f32 := column.NewFloat32([]float32{float32(math.NaN()), float32(math.Copysign(0, -1)), 1.5}, nil)
	f64 := column.NewFloat64([]float64{math.NaN(), math.Copysign(0, -1), 1.5}, nil)

	// All NaN bit patterns collapse to one representative.
	wantNaN32 := []byte{0x00, 0x00, 0xc0, 0x7f}
	if got := appendRow(t, f32, 0, Spark); !bytes.Equal(got, wantNaN32) {
		t.Errorf("spark NaN32: got % x, want % x", got, wantNaN32)
	}
	wantNaN64 := []byte{0, 0, 0, 0, 0, 0, 0xf8, 0x7f}
	if got := appendRow(t, f64, 0, Spark); !bytes.Equal(got, wantNaN64) {
		t.Errorf("spark NaN64: got % x, want % x", got, wantNaN64)
	}

	// Negative zero becomes positive zero.
	if got := appendRow(t, f32, 1, Spark); !bytes.Equal(got, []byte{0, 0, 0, 0}) {
		t.Errorf("spark -0.0 (f32): got % x, want zeros", got)
	}
	if got := appendRow(t, f64, 1, Spark); !bytes.Equal(got, make([]byte, 8)) {
		t.Errorf("spark -0.0 (f64): got % x, want zeros", got)
	}

	// Native mode keeps the raw bit pattern for -0.0.
	if got := appendRow(t, f64, 1, Native); bytes.Equal(got, make([]byte, 8)) {
		t.Error("native -0.0 must keep the sign bit")
	}

	// Ordinary values are identical in both modes.
	if !bytes.Equal(appendRow(t, f64, 2, Native), appendRow(t, f64, 2, Spark)) {
		t.Error("1.5 must encode identically in native and spark modes")
	}
}

func TestListEncoding(t *testing.T) {
	child := column.NewInt16([]int16{1, 2, 3}, nil)
	c, err := column.NewList([]int32{0, 2, 2, 3}, child, []bool{true, true, false})
	if err != nil {
		t.Fatal(err)
	}

	// Row 0: elements [1, 2] concatenated depth-first.
	want := []byte{1, 0, 2, 0}
	if got := appendRow(t, c, 0, Native); !bytes.Equal(got, want) {
		t.Errorf("list row 0: got % x, want % x", got, want)
	}

	// Row 1: empty list, present.
	if got := appendRow(t, c, 1, Native); len(got) != 0 {
		t.Errorf("empty list: got % x, want no bytes", got)
	}

	// Row 2: the list itself is null.
	if got := appendRow(t, c, 2, Native); !bytes.Equal(got, NullSentinel) {
		t.Errorf("null list: got % x, want sentinel", got)
	}
}

func TestListNullChild(t *testing.T) {
	child := column.NewInt16([]int16{1, 0, 3}, []bool{true, false, true})
	c, err := column.NewList([]int32{0, 3}, child, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := append(append([]byte{1, 0}, NullSentinel...), 3, 0)
	if got := appendRow(t, c, 0, Native); !bytes.Equal(got, want) {
		t.Errorf("list with null child: got % x, want % x", got, want)
	}

	// Under the skip policy the null child contributes nothing, but its
	// siblings still do.
	want = []byte{1, 0, 3, 0}
	if got := AppendValue(nil, c, 0, Native, nil); !bytes.Equal(got, want) {
		t.Errorf("list with skipped null child: got % x, want % x", got, want)
	}
}

func TestStructEncoding(t *testing.T) {
	a := column.NewInt8([]int8{7}, nil)
	b := column.NewString([]string{"hi"}, nil)
	c, err := column.NewStruct([]string{"a", "b"}, []column.Column{a, b}, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []byte{7, 'h', 'i'}
	if got := appendRow(t, c, 0, Native); !bytes.Equal(got, want) {
		t.Errorf("struct: got % x, want % x", got, want)
	}
}

func TestNestedStructOfList(t *testing.T) {
	inner := column.NewUInt8([]uint8{9, 8}, nil)
	list, err := column.NewList([]int32{0, 2}, inner, nil)
	if err != nil {
		t.Fatal(err)
	}
	c, err := column.NewStruct([]string{"xs"}, []column.Column{list}, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []byte{9, 8}
	if got := appendRow(t, c, 0, Native); !bytes.Equal(got, want) {
		t.Errorf("struct<list>: got % x, want % x", got, want)
	}
}

func TestSupported(t *testing.T) {
	if !Supported(column.Int32) {
		t.Error("Int32 must be supported")
	}
	if !Supported(column.ListType{Elem: column.StructType{Fields: []column.Field{{Name: "x", Type: column.Float64}}}}) {
		t.Error("nested list<struct> must be supported")
	}
	if Supported(column.ListType{Elem: primInvalid{}}) {
		t.Error("list of invalid type must not be supported")
	}
	if Supported(primInvalid{}) {
		t.Error("invalid type must not be supported")
	}
}

type primInvalid struct{}

func (primInvalid) ID() column.TypeID           { return column.TypeInvalid }
func (primInvalid) String() string              { return "Invalid" }
func (primInvalid) Children() []column.DataType { return nil }
