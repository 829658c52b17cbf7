package sampler

import (
	"strconv"

	"animc/common"
	"animc/units"
)

// Storage is numeric representation of cached samples.
type Storage int

const (
	StorageInt16 Storage = iota
	StorageInt32
	StorageFloat32
	StorageFloat64
)

func (s Storage) String() string {
	switch s {
	case StorageInt16:
		return "int16"
	case StorageInt32:
		return "int32"
	case StorageFloat32:
		return "float32"
	}
	return "float64"
}

// StorageFor selects storage from declared attribute value type.
func StorageFor(t common.ValueType) Storage {
	switch t {
	case common.ValueTypeBool, common.ValueTypeByte, common.ValueTypeChar, common.ValueTypeShort, common.ValueTypeEnum:
		return StorageInt16
	case common.ValueTypeLong:
		return StorageInt32
	case common.ValueTypeFloat:
		return StorageFloat32
	}
	return StorageFloat64
}

// Table is a flat sample array addressed by (sample, element). Only the slice
// matching Storage is allocated.
type Table struct {
	storage Storage
	samples int
	stride  int

	i16 []int16
	i32 []int32
	f32 []float32
	f64 []float64
}

// NewTable allocates table for given number of samples with stride elements
// each.
func NewTable(storage Storage, samples, stride int) *Table {
	stride = max(stride, 1)
	t := &Table{storage: storage, samples: samples, stride: stride}
	n := samples * stride
	switch storage {
	case StorageInt16:
		t.i16 = make([]int16, n)
	case StorageInt32:
		t.i32 = make([]int32, n)
	case StorageFloat32:
		t.f32 = make([]float32, n)
	default:
		t.f64 = make([]float64, n)
	}
	return t
}

func (t *Table) Storage() Storage { return t.storage }
func (t *Table) Samples() int     { return t.samples }
func (t *Table) Stride() int      { return t.stride }

// Set stores values of one sample, extra values are ignored.
func (t *Table) Set(sample int, values []float64) {
	base := sample * t.stride
	for e := 0; e < t.stride && e < len(values); e++ {
		v := values[e]
		switch t.storage {
		case StorageInt16:
			t.i16[base+e] = int16(v)
		case StorageInt32:
			t.i32[base+e] = int32(v)
		case StorageFloat32:
			t.f32[base+e] = float32(v)
		default:
			t.f64[base+e] = v
		}
	}
}

// Value returns stored element of the sample.
func (t *Table) Value(sample, elem int) float64 {
	i := sample*t.stride + elem
	switch t.storage {
	case StorageInt16:
		return float64(t.i16[i])
	case StorageInt32:
		return float64(t.i32[i])
	case StorageFloat32:
		return float64(t.f32[i])
	}
	return t.f64[i]
}

// AppendText appends all samples separated by spaces to buf.
func (t *Table) AppendText(buf []byte) []byte {
	for i := range t.samples * t.stride {
		if i > 0 {
			buf = append(buf, ' ')
		}
		switch t.storage {
		case StorageInt16:
			buf = strconv.AppendInt(buf, int64(t.i16[i]), 10)
		case StorageInt32:
			buf = strconv.AppendInt(buf, int64(t.i32[i]), 10)
		case StorageFloat32:
			buf = strconv.AppendFloat(buf, units.ClampZero(float64(t.f32[i])), 'g', -1, 32)
		default:
			buf = strconv.AppendFloat(buf, units.ClampZero(t.f64[i]), 'g', -1, 64)
		}
	}
	return buf
}
