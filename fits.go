package hugefloat

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// fits reports whether the integer part of x, truncated toward zero, is
// within the range of T.
func fits[T constraints.Integer](x *Float) bool {
	switch x.form {
	case zero:
		return true
	case inf:
		return false
	}
	// |x| < 1 truncates to 0
	if x.exp <= 0 {
		return true
	}

	var t T
	signed := ^t < 0
	width := int32(unsafe.Sizeof(t)) * 8
	if x.neg && !signed {
		return false
	}
	// |x| >= 2**(exp-1)
	if x.exp > width {
		return false
	}
	if !signed {
		return true
	}
	// x.exp <= width so intBits is exact
	u := x.intBits()
	limit := uint64(1) << uint(width-1)
	if x.neg {
		return u <= limit
	}
	return u < limit
}

// FitsInt16 reports whether x, truncated toward zero, fits in an int16.
func (x *Float) FitsInt16() bool { return fits[int16](x) }

// FitsUint16 reports whether x, truncated toward zero, fits in a uint16.
func (x *Float) FitsUint16() bool { return fits[uint16](x) }

// FitsInt32 reports whether x, truncated toward zero, fits in an int32.
func (x *Float) FitsInt32() bool { return fits[int32](x) }

// FitsUint32 reports whether x, truncated toward zero, fits in a uint32.
func (x *Float) FitsUint32() bool { return fits[uint32](x) }

// FitsInt64 reports whether x, truncated toward zero, fits in an int64.
func (x *Float) FitsInt64() bool { return fits[int64](x) }

// FitsUint64 reports whether x, truncated toward zero, fits in a uint64.
func (x *Float) FitsUint64() bool { return fits[uint64](x) }
