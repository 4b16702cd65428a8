// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hugefloat

import (
	"math"
	"math/bits"
)

// SetUint64 sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to the default precision (and
// rounding will have no effect).
func (z *Float) SetUint64(x uint64) *Float {
	return z.setBits64(false, x)
}

// SetInt64 sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to the default precision (and
// rounding will have no effect).
func (z *Float) SetInt64(x int64) *Float {
	u := x
	if u < 0 {
		u = -u
	}
	// We cannot simply call z.SetUint64(uint64(u)) and change
	// the sign afterwards because the sign affects rounding.
	return z.setBits64(x < 0, uint64(u))
}

func (z *Float) setBits64(neg bool, x uint64) *Float {
	if z.prec == 0 {
		z.prec = uint32(DefaultPrecision())
	}
	z.acc = Exact
	z.neg = neg
	if x == 0 {
		z.form = zero
		return z
	}
	// x != 0
	z.form = finite
	s := bits.LeadingZeros64(x)
	z.mant = z.mant.setUint64(x << uint(s))
	z.exp = int32(64 - s) // always fits
	z.round(0)
	return z
}

// SetFloat64 sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to the default precision. If
// x is ±Inf, z is set to ±Inf. If x is -0, z is set to -0.
// If x is NaN, SetFloat64 panics with ErrNaN.
func (z *Float) SetFloat64(x float64) *Float {
	if z.prec == 0 {
		z.prec = uint32(DefaultPrecision())
	}
	if math.IsNaN(x) {
		panic(ErrNaN{"Float.SetFloat64(NaN)"})
	}
	z.acc = Exact
	z.neg = math.Signbit(x) // handle -0, -Inf correctly
	if x == 0 {
		z.form = zero
		return z
	}
	if math.IsInf(x, 0) {
		z.form = inf
		return z
	}
	z.form = finite
	fmant, exp := math.Frexp(x) // get normalized mantissa
	z.mant = z.mant.setUint64(1<<63 | math.Float64bits(fmant)<<11)
	z.exp = int32(exp) // always fits
	z.round(0)
	return z
}

// SetFloat32 is like SetFloat64 for a float32 argument. Every float32 is
// exactly representable as a float64.
func (z *Float) SetFloat32(x float32) *Float {
	return z.SetFloat64(float64(x))
}

// msb64 returns the 64 most significant bits of x.
func msb64(x nat) uint64 {
	i := len(x) - 1
	if i < 0 {
		return 0
	}
	if _W == 32 {
		v := uint64(x[i]) << 32
		if i > 0 {
			v |= uint64(x[i-1])
		}
		return v
	}
	return uint64(x[i])
}

// low64 returns the 64 least significant bits of x.
func low64(x nat) uint64 {
	if len(x) == 0 {
		return 0
	}
	v := uint64(x[0])
	if _W == 32 && len(x) > 1 {
		v |= uint64(x[1]) << 32
	}
	return v
}

// Float64 returns the float64 value nearest to x in the direction of zero.
// Mantissa bits beyond the 53 a float64 holds (fewer for subnormal results)
// are truncated. Values too large for a float64 map to ±Inf; values too small
// for the smallest subnormal map to ±0.
func (x *Float) Float64() float64 {
	if debugFloat {
		x.validate()
	}

	switch x.form {
	case zero:
		if x.neg {
			return math.Copysign(0, -1)
		}
		return 0
	case inf:
		if x.neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	const (
		mbits = 53    // mantissa length in bits, including the implicit 1
		emin  = -1021 // exponent of the smallest normal float64 in 0.1xxx form
		emax  = 1024  // exponent of the largest finite float64 in 0.1xxx form
	)

	e := int64(x.exp)
	if e > emax {
		if x.neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	p := mbits
	if e < emin {
		// subnormal result: fewer mantissa bits are available
		p = mbits - int(emin-e)
		if p <= 0 {
			if x.neg {
				return math.Copysign(0, -1)
			}
			return 0
		}
	}

	// x = 0.m × 2**e; keep the p leading bits
	m := msb64(x.mant) >> uint(64-p)
	f := math.Ldexp(float64(m), int(e)-p)
	if x.neg {
		f = -f
	}
	return f
}

// Float64Exp returns mant and exp such that x ≈ mant × 2**exp with
// 0.5 <= |mant| < 1. The mantissa is truncated to 53 bits; exp is not
// limited by the float64 exponent range. For ±0 it returns (±0, 0) and for
// ±Inf it returns (±Inf, 0).
func (x *Float) Float64Exp() (mant float64, exp int64) {
	if debugFloat {
		x.validate()
	}

	switch x.form {
	case zero:
		if x.neg {
			return math.Copysign(0, -1), 0
		}
		return 0, 0
	case inf:
		if x.neg {
			return math.Inf(-1), 0
		}
		return math.Inf(1), 0
	}

	mant = math.Ldexp(float64(msb64(x.mant)>>11), -53)
	if x.neg {
		mant = -mant
	}
	return mant, int64(x.exp)
}

// intBits returns the 64 least significant bits of |x| truncated toward zero.
func (x *Float) intBits() uint64 {
	if x.form != finite || x.exp <= 0 {
		return 0
	}
	mbits := int64(len(x.mant)) * _W
	e := int64(x.exp)
	if e >= mbits {
		// no fractional bits; the integer is mant << (e - mbits)
		s := e - mbits
		if s >= 64 {
			return 0
		}
		return low64(x.mant) << uint(s)
	}
	return low64(nat(nil).shr(x.mant, uint(mbits-e)))
}

// Uint64 returns the low 64 bits of the integer part of |x|. The sign of x
// is ignored, as is any overflow. Uint64 returns 0 for ±Inf.
func (x *Float) Uint64() uint64 {
	return x.intBits()
}

// Int64 returns the integer part of x, truncated toward zero, reduced to its
// 64 least significant bits in two's complement. Int64 returns 0 for ±Inf.
func (x *Float) Int64() int64 {
	i := int64(x.intBits())
	if x.neg {
		i = -i
	}
	return i
}
