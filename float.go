// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hugefloat

import (
	"fmt"
)

// A nonzero finite Float represents a multi-precision binary floating point
// number
//
//   sign × 0.mantissa × 2**exponent
//
// with 0.5 <= mantissa < 1.0, and MinExp <= exponent <= MaxExp. A Float may
// also be zero (+0, -0) or infinite (+Inf, -Inf). All Floats are ordered, and
// the ordering of two Floats x and y is defined by x.Cmp(y).
//
// Each Float value also has a precision and a rounding mode. The precision is
// the maximum number of mantissa bits available to represent the value. The
// rounding mode specifies how a result should be rounded to fit into the
// mantissa bits.
//
// Unless specified otherwise, all operations (including setters) that specify
// a *Float variable for the result (usually via the receiver) round the
// numeric result according to the precision and rounding mode of the result
// variable.
//
// If the result precision is 0 (see below), it is set to the current default
// precision before any rounding takes place. The precision of a Float is not
// changed by any operation other than SetPrec.
//
// The zero (uninitialized) value for a Float is ready to use and represents
// the number +0.0 exactly, with precision 0 and rounding mode ToNearestEven.
type Float struct {
	mant nat
	exp  int32
	prec uint32
	mode RoundingMode
	acc  Accuracy
	form form
	neg  bool
}

// New returns a new Float with value 0 and the default precision.
func New() *Float {
	return &Float{prec: uint32(DefaultPrecision())}
}

// Allocate returns a new Float with value 0 whose mantissa storage is
// reserved for prec bits. prec must be in the range [1, MaxPrec].
func Allocate(prec uint) (*Float, error) {
	if err := checkPrec(prec); err != nil {
		return nil, err
	}
	return &Float{
		mant: make(nat, 0, (prec+_W-1)/_W),
		prec: uint32(prec),
	}, nil
}

// NewFloat allocates and returns a new Float set to x with the default
// precision. NewFloat panics with ErrNaN if x is a NaN.
func NewFloat(x float64) *Float {
	return New().SetFloat64(x)
}

// NewInt64 allocates and returns a new Float set to x with the default
// precision.
func NewInt64(x int64) *Float {
	return New().SetInt64(x)
}

// NewUint64 allocates and returns a new Float set to x with the default
// precision.
func NewUint64(x uint64) *Float {
	return New().SetUint64(x)
}

// SetPrec sets z's precision to prec and returns the (possibly) rounded
// value of z. Rounding occurs according to z's rounding mode if the mantissa
// cannot be represented in prec bits without loss of precision.
// SetPrec(0) maps all finite values to ±0; infinite values remain unchanged.
// If prec > MaxPrec, it is set to MaxPrec.
func (z *Float) SetPrec(prec uint) *Float {
	z.acc = Exact // optimistically assume no rounding is needed

	// special case
	if prec == 0 {
		z.prec = 0
		if z.form == finite {
			// truncate z to 0
			z.acc = makeAcc(z.neg)
			z.form = zero
		}
		return z
	}

	// general case
	if prec > MaxPrec {
		prec = MaxPrec
	}
	old := z.prec
	z.prec = uint32(prec)
	if z.prec < old {
		z.round(0)
	}
	return z
}

// SetMode sets z's rounding mode to mode and returns an exact z.
// z remains unchanged otherwise.
// z.SetMode(z.Mode()) is a cheap way to set z's accuracy to Exact.
func (z *Float) SetMode(mode RoundingMode) *Float {
	z.mode = mode
	z.acc = Exact
	return z
}

// Prec returns the mantissa precision of x in bits.
// The result may be 0 for the zero value of Float.
func (x *Float) Prec() uint {
	return uint(x.prec)
}

// MinPrec returns the minimum precision required to represent x exactly
// (i.e., the smallest prec before x.SetPrec(prec) would start rounding x).
// The result is 0 for |x| == 0 and |x| == Inf.
func (x *Float) MinPrec() uint {
	if x.form != finite {
		return 0
	}
	return uint(len(x.mant))*_W - x.mant.trailingZeroBits()
}

// Mode returns the rounding mode of x.
func (x *Float) Mode() RoundingMode {
	return x.mode
}

// Acc returns the accuracy of x produced by the most recent operation.
func (x *Float) Acc() Accuracy {
	return x.acc
}

// Sign returns:
//
//	-1 if x <   0
//	 0 if x is ±0
//	+1 if x >   0
//
func (x *Float) Sign() int {
	if debugFloat {
		x.validate()
	}
	if x.form == zero {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Signbit reports whether x is negative or negative zero.
func (x *Float) Signbit() bool {
	return x.neg
}

// IsInf reports whether x is +Inf or -Inf.
func (x *Float) IsInf() bool {
	return x.form == inf
}

// IsInt reports whether x is an integer.
// ±Inf values are not integers.
func (x *Float) IsInt() bool {
	if debugFloat {
		x.validate()
	}
	// special cases
	if x.form != finite {
		return x.form == zero
	}
	// x.form == finite
	if x.exp <= 0 {
		return false
	}
	// x.exp > 0
	return x.prec <= uint32(x.exp) || x.MinPrec() <= uint(x.exp) // not enough bits for fractional mantissa
}

func (x *Float) validate() {
	if !debugFloat {
		// avoid performance bugs
		panic("validate called but debugFloat is not set")
	}
	if x.form != finite {
		return
	}
	m := len(x.mant)
	if m == 0 {
		panic("nonzero finite number with empty mantissa")
	}
	const msb = 1 << (_W - 1)
	if x.mant[m-1]&msb == 0 {
		panic(fmt.Sprintf("msb not set in last word %#x of %s", x.mant[m-1], x.String()))
	}
	if x.mant[0] == 0 {
		panic(fmt.Sprintf("trailing zero word in mantissa of %s", x.String()))
	}
	if x.prec == 0 {
		panic("zero precision finite number")
	}
}

// round rounds z according to z.mode to z.prec bits and sets z.acc accordingly.
// sbit must be 0 or 1 and summarizes any "sticky bit" information one might
// have before calling round. z's mantissa must be normalized (with the msb set)
// or empty. On return, the mantissa carries no trailing zero words.
//
// CAUTION: The rounding modes ToNegativeInf, ToPositiveInf are affected by the
// sign of z. For correct rounding, the sign of z must be set correctly before
// calling round.
func (z *Float) round(sbit uint) {
	z.acc = Exact
	if z.form != finite {
		// ±0 or ±Inf => nothing left to do
		return
	}
	// z.form == finite && len(z.mant) > 0
	// m > 0 implies z.prec > 0 (checked by validate)

	m := uint32(len(z.mant)) // present mantissa length in words
	bits := m * _W           // present mantissa bits; bits > 0
	if bits > z.prec {
		// Rounding is based on two bits: the rounding bit (rbit) and the
		// sticky bit (sbit). The rbit is the bit immediately before the
		// z.prec leading mantissa bits (the "0.5"). The sbit is set if any
		// of the bits before the rbit are set (the "0.25", "0.125", etc.):
		//
		//   rbit  sbit  => "fractional part"
		//
		//   0     0        == 0
		//   0     1        >  0  , < 0.5
		//   1     0        == 0.5
		//   1     1        >  0.5, < 1.0

		// bits > z.prec: mantissa too large => round
		r := uint(bits - z.prec - 1) // rounding bit position; r >= 0
		rbit := z.mant.bit(r) & 1    // rounding bit; be safe and ensure it's a single bit
		// The sticky bit is only needed for rounding ToNearestEven
		// or when the rounding bit is zero. Avoid computation otherwise.
		if sbit == 0 && (rbit == 0 || z.mode == ToNearestEven) {
			sbit = z.mant.sticky(r)
		}
		sbit &= 1 // be safe and ensure it's a single bit

		// cut off extra words
		n := (z.prec + (_W - 1)) / _W // mantissa length in words for desired precision
		if m > n {
			copy(z.mant, z.mant[m-n:]) // move n last words to front
			z.mant = z.mant[:n]
		}

		// determine number of trailing zero bits (ntz) and compute lsb mask of
		// mantissa's least-significant word
		ntz := n*_W - z.prec // 0 <= ntz < _W
		lsb := Word(1) << ntz

		// round if result is inexact
		if rbit|sbit != 0 {
			// Make rounding decision: The result mantissa is truncated ("rounded
			// down") by default. Decide if we need to increment, or "round up",
			// the (unsigned) mantissa.
			inc := false
			switch z.mode {
			case ToNegativeInf:
				inc = z.neg
			case ToZero:
				// nothing to do
			case ToNearestEven:
				inc = rbit != 0 && (sbit != 0 || z.mant[0]&lsb != 0)
			case ToNearestAway:
				inc = rbit != 0
			case AwayFromZero:
				inc = true
			case ToPositiveInf:
				inc = !z.neg
			default:
				panic("unreachable")
			}

			// A positive result (!z.neg) is Above the exact result if we increment,
			// and it's Below if we truncate (Exact results require no rounding).
			// For a negative result (z.neg) it is exactly the opposite.
			z.acc = makeAcc(inc != z.neg)

			if inc {
				// add 1 to mantissa
				if addVW(z.mant, z.mant, lsb) != 0 {
					// mantissa overflow => adjust exponent
					if z.exp >= MaxExp {
						// exponent overflow
						z.form = inf
						return
					}
					z.exp++
					// adjust mantissa: divide by 2 to compensate for exponent adjustment
					shrVU(z.mant, z.mant, 1)
					// set msb == carry == 1 from the mantissa overflow above
					const msb = 1 << (_W - 1)
					z.mant[n-1] |= msb
				}
			}
		}

		// zero out trailing bits in least-significant word
		z.mant[0] &^= lsb - 1
	}

	// drop trailing zero words; the msw is non-zero so this terminates
	i := 0
	for z.mant[i] == 0 {
		i++
	}
	if i > 0 {
		z.mant = z.mant[:copy(z.mant, z.mant[i:])]
	}

	if debugFloat {
		z.validate()
	}
}

// setExpAndRound sets the exponent of z and rounds z, or maps it to ±0 or
// ±Inf if exp is out of range.
func (z *Float) setExpAndRound(exp int64, sbit uint) {
	if exp < MinExp {
		// underflow
		z.acc = makeAcc(z.neg)
		z.form = zero
		return
	}

	if exp > MaxExp {
		// overflow
		z.acc = makeAcc(!z.neg)
		z.form = inf
		return
	}

	z.form = finite
	z.exp = int32(exp)
	z.round(sbit)
}

// setBits sets |z| to m × 2**exp rounded to z's precision and returns z.
// sbit is 1 if non-zero bits below m have already been discarded. The sign of
// z must be set before calling setBits.
func (z *Float) setBits(m nat, exp int64, sbit uint) *Float {
	if z.prec == 0 {
		z.prec = uint32(DefaultPrecision())
	}
	z.acc = Exact
	m = m.norm()
	if len(m) == 0 {
		z.form = zero
		return z
	}
	z.mant = z.mant.set(m)
	z.setExpAndRound(exp+int64(len(z.mant))*_W-fnorm(z.mant), sbit)
	return z
}

// SetInf sets z to the infinite Float -Inf if signbit is
// set, or +Inf if signbit is not set, and returns z. The
// precision of z is unchanged and the result is always
// Exact.
func (z *Float) SetInf(signbit bool) *Float {
	z.acc = Exact
	z.form = inf
	z.neg = signbit
	return z
}

// Set sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to the default precision before
// setting z. Rounding is performed according to z's precision and rounding
// mode; and z's accuracy reports the result error relative to the exact (not
// rounded) result.
func (z *Float) Set(x *Float) *Float {
	if debugFloat {
		x.validate()
	}
	z.acc = Exact
	if z != x {
		z.form = x.form
		z.neg = x.neg
		if x.form == finite {
			z.exp = x.exp
			z.mant = z.mant.set(x.mant)
		}
		if z.prec == 0 {
			z.prec = uint32(DefaultPrecision())
		}
		if z.prec < x.prec {
			z.round(0)
		}
	}
	return z
}

// Copy sets z to x, with the same precision, rounding mode, and
// accuracy as x, and returns z. x is not changed even if z and
// x are the same.
func (z *Float) Copy(x *Float) *Float {
	if debugFloat {
		x.validate()
	}
	if z != x {
		z.prec = x.prec
		z.mode = x.mode
		z.acc = x.acc
		z.form = x.form
		z.neg = x.neg
		if z.form == finite {
			z.mant = z.mant.set(x.mant)
			z.exp = x.exp
		}
	}
	return z
}

// Abs sets z to the (possibly rounded) value |x| (the absolute value of x)
// and returns z.
func (z *Float) Abs(x *Float) *Float {
	z.Set(x)
	z.neg = false
	return z
}

// Neg sets z to the (possibly rounded) value of x with its sign negated,
// and returns z.
func (z *Float) Neg(x *Float) *Float {
	z.Set(x)
	z.neg = !z.neg
	return z
}

// z = x + y, ignoring signs of x and y for the addition
// but using the sign of z for rounding the result.
// x and y must have a non-empty mantissa and valid exponent.
func (z *Float) uadd(x, y *Float) {
	// Note: This implementation requires 2 shifts most of the
	// time. It is also inefficient if exponents or precisions
	// differ by wide margins. The following article describes
	// an efficient (but much more complicated) implementation
	// compatible with the internal representation used here:
	//
	// Vincent Lefèvre: "The Generic Multiple-Precision Floating-
	// Point Addition With Exact Rounding (as in the MPFR Library)"
	// http://www.vinc17.net/research/papers/rnc6.pdf

	if debugFloat {
		x.validate()
		y.validate()
	}

	// compute exponents ex, ey for mantissa with "binary point"
	// on the right (mantissa.0) - use int64 to avoid overflow
	ex := int64(x.exp) - int64(len(x.mant))*_W
	ey := int64(y.exp) - int64(len(y.mant))*_W

	al := alias(z.mant, x.mant) || alias(z.mant, y.mant)

	switch {
	case ex < ey:
		if al {
			t := nat(nil).shl(y.mant, uint(ey-ex))
			z.mant = z.mant.add(x.mant, t)
		} else {
			z.mant = z.mant.shl(y.mant, uint(ey-ex))
			z.mant = z.mant.add(x.mant, z.mant)
		}
	default:
		// ex == ey, no shift needed
		z.mant = z.mant.add(x.mant, y.mant)
	case ex > ey:
		if al {
			t := nat(nil).shl(x.mant, uint(ex-ey))
			z.mant = z.mant.add(t, y.mant)
		} else {
			z.mant = z.mant.shl(x.mant, uint(ex-ey))
			z.mant = z.mant.add(z.mant, y.mant)
		}
		ex = ey
	}
	// len(z.mant) > 0

	z.setExpAndRound(ex+int64(len(z.mant))*_W-fnorm(z.mant), 0)
}

// z = x - y for |x| > |y|, ignoring signs of x and y for the subtraction
// but using the sign of z for rounding the result.
// x and y must have a non-empty mantissa and valid exponent.
func (z *Float) usub(x, y *Float) {
	if debugFloat {
		x.validate()
		y.validate()
	}

	ex := int64(x.exp) - int64(len(x.mant))*_W
	ey := int64(y.exp) - int64(len(y.mant))*_W

	al := alias(z.mant, x.mant) || alias(z.mant, y.mant)

	switch {
	case ex < ey:
		if al {
			t := nat(nil).shl(y.mant, uint(ey-ex))
			z.mant = t.sub(x.mant, t)
		} else {
			z.mant = z.mant.shl(y.mant, uint(ey-ex))
			z.mant = z.mant.sub(x.mant, z.mant)
		}
	default:
		// ex == ey, no shift needed
		z.mant = z.mant.sub(x.mant, y.mant)
	case ex > ey:
		if al {
			t := nat(nil).shl(x.mant, uint(ex-ey))
			z.mant = t.sub(t, y.mant)
		} else {
			z.mant = z.mant.shl(x.mant, uint(ex-ey))
			z.mant = z.mant.sub(z.mant, y.mant)
		}
		ex = ey
	}

	// operands may have canceled each other out
	if len(z.mant) == 0 {
		z.acc = Exact
		z.form = zero
		z.neg = false
		return
	}
	// len(z.mant) > 0

	z.setExpAndRound(ex+int64(len(z.mant))*_W-fnorm(z.mant), 0)
}

// ucmp returns -1, 0, or +1, depending on whether
// |x| < |y|, |x| == |y|, or |x| > |y|.
// x and y must have a non-empty mantissa and valid exponent.
func (x *Float) ucmp(y *Float) int {
	if debugFloat {
		x.validate()
		y.validate()
	}

	switch {
	case x.exp < y.exp:
		return -1
	case x.exp > y.exp:
		return +1
	}
	// x.exp == y.exp

	// compare mantissas
	i := len(x.mant)
	j := len(y.mant)
	for i > 0 || j > 0 {
		var xm, ym Word
		if i > 0 {
			i--
			xm = x.mant[i]
		}
		if j > 0 {
			j--
			ym = y.mant[j]
		}
		switch {
		case xm < ym:
			return -1
		case xm > ym:
			return +1
		}
	}

	return 0
}

// Add sets z to the rounded sum x+y and returns z. If z's precision is 0,
// it is changed to the default precision before the operation. Rounding is
// performed according to z's precision and rounding mode; and z's accuracy
// reports the result error relative to the exact (not rounded) result. Add
// panics with ErrNaN if x and y are infinities with opposite signs. The value
// of z is undefined in that case.
func (z *Float) Add(x, y *Float) *Float {
	return z.add(x, y, y.neg, "addition of infinities with opposite signs")
}

// Sub sets z to the rounded difference x-y and returns z. Precision,
// rounding, and accuracy reporting are as for Add. Sub panics with ErrNaN if x
// and y are infinities with equal signs. The value of z is undefined in that
// case.
func (z *Float) Sub(x, y *Float) *Float {
	return z.add(x, y, !y.neg, "subtraction of infinities with equal signs")
}

// add sets z to x + y where y's sign is taken to be yneg.
func (z *Float) add(x, y *Float, yneg bool, nan string) *Float {
	if debugFloat {
		x.validate()
		y.validate()
	}

	if z.prec == 0 {
		z.prec = uint32(DefaultPrecision())
	}

	if x.form == finite && y.form == finite {
		// x + y (common case)

		// Below we set z.neg = x.neg, and when z aliases y this will
		// change the y operand's sign. This is fine, because if an
		// operand aliases the receiver it'll be overwritten, but we still
		// want the original y's sign, which was captured in yneg.
		z.neg = x.neg
		if x.neg == yneg {
			// x + y == x + y
			// (-x) + (-y) == -(x + y)
			z.uadd(x, y)
		} else {
			// x + (-y) == x - y == -(y - x)
			// (-x) + y == y - x == -(x - y)
			if x.ucmp(y) > 0 {
				z.usub(x, y)
			} else {
				z.neg = !z.neg
				z.usub(y, x)
			}
		}
		if z.form == zero && z.mode == ToNegativeInf && z.acc == Exact {
			z.neg = true
		}
		return z
	}

	if x.form == inf && y.form == inf && x.neg != yneg {
		// +Inf + -Inf
		// -Inf + +Inf
		// value of z is undefined but make sure it's valid
		z.acc = Exact
		z.form = zero
		z.neg = false
		panic(ErrNaN{nan})
	}

	if x.form == zero && y.form == zero {
		// ±0 + ±0
		z.acc = Exact
		z.form = zero
		z.neg = x.neg && yneg // -0 + -0 == -0
		return z
	}

	if x.form == inf || y.form == zero {
		// ±Inf + y
		// x + ±0
		return z.Set(x)
	}

	// ±0 + y
	// x + ±Inf
	z.Set(y)
	z.neg = yneg
	return z
}

// Cmp compares x and y and returns:
//
//   -1 if x <  y
//    0 if x == y (incl. -0 == 0, -Inf == -Inf, and +Inf == +Inf)
//   +1 if x >  y
//
func (x *Float) Cmp(y *Float) int {
	if debugFloat {
		x.validate()
		y.validate()
	}

	mx := x.ord()
	my := y.ord()
	switch {
	case mx < my:
		return -1
	case mx > my:
		return +1
	}
	// mx == my

	// only if |mx| == 1 we have to compare the mantissae
	switch mx {
	case -1:
		return y.ucmp(x)
	case +1:
		return x.ucmp(y)
	}

	return 0
}

// ord classifies x and returns:
//
//	-2 if -Inf == x
//	-1 if -Inf < x < 0
//	 0 if x == 0 (signed or unsigned)
//	+1 if 0 < x < +Inf
//	+2 if x == +Inf
//
func (x *Float) ord() int {
	var m int
	switch x.form {
	case finite:
		m = 1
	case zero:
		return 0
	case inf:
		m = 2
	}
	if x.neg {
		m = -m
	}
	return m
}
