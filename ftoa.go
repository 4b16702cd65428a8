// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Float-to-string conversion functions.

package hugefloat

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"
)

// A TextMode selects options for the text representation of a Float. The
// zero value writes letters in upper case and the exponent in the mantissa
// base.
type TextMode uint8

// Text modes. They may be combined.
const (
	// Lower writes the letter digits of bases 11 to 36 in lower case. It has
	// no effect for bases above 36, whose alphabet uses both cases.
	Lower TextMode = 1 << iota
	// DecimalExp reads and writes the exponent in base 10 rather than in the
	// mantissa base.
	DecimalExp
)

// Text converts the floating-point number x to a string of the form
//
//	[-]0.<digits>@<exp>
//
// such that x ≈ 0.<digits> × base**exp. The number of significant digits is
// the smallest count that covers x's precision, ceil(prec / log2(base)); the
// last digit is rounded to nearest even and trailing zeros are omitted. The
// exponent is written in base unless mode includes DecimalExp. Zero is written
// as "0" (or "-0") and infinities as "+Inf" or "-Inf".
//
// Text fails with ErrInvalidBase if base is not in the range [2, MaxBase].
func (x *Float) Text(base int, mode TextMode) (string, error) {
	buf, err := x.Append(make([]byte, 0, 32), base, mode)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// String formats x like x.Text(10, DecimalExp), with at most MaxStringDigits()
// significant digits.
func (x *Float) String() string {
	n := digitBudget(x.prec, 10)
	if m := MaxStringDigits(); n > m {
		n = m
	}
	return string(x.append(make([]byte, 0, 32), 10, DecimalExp, n))
}

// Append appends to buf the string form of the floating-point number x,
// as generated by x.Text, and returns the extended buffer.
func (x *Float) Append(buf []byte, base int, mode TextMode) ([]byte, error) {
	if base < 2 || base > MaxBase {
		return buf, errors.Wrapf(ErrInvalidBase, "base %d", base)
	}
	return x.append(buf, base, mode, digitBudget(x.prec, base)), nil
}

// digitBudget returns the number of base digits needed to cover prec bits.
func digitBudget(prec uint32, base int) int {
	if prec == 0 {
		prec = uint32(DefaultPrecision())
	}
	if base&(base-1) == 0 {
		k := uint32(bits.TrailingZeros(uint(base)))
		return int((prec + k - 1) / k)
	}
	return int(math.Ceil(float64(prec) / math.Log2(float64(base))))
}

// append writes x with at most n significant digits.
func (x *Float) append(buf []byte, base int, mode TextMode, n int) []byte {
	if debugFloat {
		x.validate()
	}

	if x.form == inf {
		if x.neg {
			return append(buf, "-Inf"...)
		}
		return append(buf, "+Inf"...)
	}

	if x.neg {
		buf = append(buf, '-')
	}
	if x.form == zero {
		return append(buf, '0')
	}

	alphabet := digitsFor(base, mode&Lower != 0)
	q, exp := x.digits(base, n)
	s := q.utoa(base, alphabet)
	// q != 0, so s has a non-zero leading digit
	i := len(s)
	for s[i-1] == '0' {
		i--
	}

	buf = append(buf, "0."...)
	buf = append(buf, s[:i]...)
	buf = append(buf, '@')

	expBase := base
	if mode&DecimalExp != 0 {
		expBase = 10
	}
	if exp < 0 {
		buf = append(buf, '-')
		exp = -exp
	}
	return append(buf, nat(nil).setUint64(uint64(exp)).utoa(expBase, alphabet)...)
}

// digits returns the n-digit integer q and exponent exp such that
// q × base**(exp-n) is |x| rounded to n significant base digits, half to
// even. x must be finite and non-zero.
func (x *Float) digits(base, n int) (q nat, exp int64) {
	// |x| = m × 2**e2 with an integer mantissa m
	m := x.mant
	e2 := int64(x.exp) - int64(len(m))*_W

	pn := mulPow(nat(nil).setWord(1), base, int64(n)) // base**n
	pn1, _ := nat(nil).divW(pn, Word(base))           // base**(n-1)

	// 2**(x.exp-1) <= |x| < 2**x.exp gives a first estimate, off by one at
	// most, of the number of integer digits.
	exp = int64(math.Floor(float64(int64(x.exp)-1)/math.Log2(float64(base)))) + 1
	for {
		// d = floor(2 × |x| × base**(n-exp)); its lsb is the rounding digit
		d, sticky := scaleFloor(m, e2+1, base, int64(n)-exp)
		rbit := d.bit(0)
		q = d.shr(d, 1)
		switch {
		case q.cmp(pn) >= 0:
			exp++
			continue
		case q.cmp(pn1) < 0:
			exp--
			continue
		}

		if rbit != 0 && (sticky || q.bit(0) != 0) {
			q = q.add(q, nat{1})
			if q.cmp(pn) == 0 {
				// 99...9 rounded up to 100...0
				q = q.set(pn1)
				exp++
			}
		}
		return q, exp
	}
}

// scaleFloor returns floor(m × 2**e2 × base**k) and reports whether the
// discarded fraction is non-zero.
func scaleFloor(m nat, e2 int64, base int, k int64) (z nat, sticky bool) {
	if base&(base-1) == 0 {
		e2 += k * int64(bits.TrailingZeros(uint(base)))
		k = 0
	}
	if notInt(m, e2, base, k) {
		return floorBound(m, e2, base, k), true
	}

	z = nat(nil).set(m)
	if k > 0 {
		z = mulPow(z, base, k)
	}
	switch {
	case e2 > 0:
		z = z.shl(z, uint(e2))
	case e2 < 0:
		s := uint(-e2)
		sticky = z.sticky(s) != 0
		z = z.shr(z, s)
	}
	if k < 0 {
		var st bool
		z, st = divPow(z, base, -k)
		sticky = sticky || st
	}
	return z, sticky
}

// notInt reports whether base**k is too large to compute exactly in
// reasonable time and m × 2**e2 × base**k is known not to be an integer.
func notInt(m nat, e2 int64, base int, k int64) bool {
	if k == 0 {
		return false
	}
	a := k
	if a < 0 {
		a = -a
	}
	if float64(a)*math.Log2(float64(base)) <= float64(4*len(m)*_W+1024) {
		return false
	}
	if k < 0 {
		// the odd part of base**-k exceeds m
		return float64(a)*log2of3 > float64(m.bitLen())
	}
	// not enough factors of two in m × base**k to cancel 2**e2
	return e2 < 0 && int64(m.trailingZeroBits())+k*int64(bits.TrailingZeros(uint(base))) < -e2
}

// mulPow sets z to z × base**k, k >= 0, and returns z.
func mulPow(z nat, base int, k int64) nat {
	bb, n := maxPow(Word(base))
	for ; k >= int64(n); k -= int64(n) {
		z = z.mulAddWW(z, bb, 0)
	}
	if k > 0 {
		z = z.mulAddWW(z, pow(Word(base), int(k)), 0)
	}
	return z
}

// divPow sets z to floor(z / base**k), k >= 0, and reports whether any
// remainder was discarded.
func divPow(z nat, base int, k int64) (nat, bool) {
	bb, n := maxPow(Word(base))
	sticky := false
	var r Word
	for ; k >= int64(n) && len(z) > 0; k -= int64(n) {
		z, r = z.divW(z, bb)
		sticky = sticky || r != 0
	}
	if k > 0 && len(z) > 0 {
		z, r = z.divW(z, pow(Word(base), int(k)))
		sticky = sticky || r != 0
	}
	return z, sticky
}
