// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements string-to-Float conversion functions.

package hugefloat

import (
	"fmt"
	"io"
	"math"
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

var floatZero Float

// SetString sets z to the value of s and returns z and a nil error. s must be
// a floating-point number in base 10 with an optional decimal exponent, as
// accepted by z.Parse(s, 10, DecimalExp). On failure SetString returns nil and
// an error wrapping ErrInvalidFormat, and the value of z is undefined.
func (z *Float) SetString(s string) (*Float, error) {
	return z.Parse(s, 10, DecimalExp)
}

// scan is like Parse but reads the longest possible prefix representing a
// valid floating point number from an io.ByteScanner rather than a string.
// It serves as the implementation of Parse.
func (z *Float) scan(r io.ByteScanner, base int, mode TextMode) (f *Float, b int, err error) {
	if z.prec == 0 {
		z.prec = uint32(DefaultPrecision())
	}

	// A reasonable value in case of an error.
	z.form = zero

	// sign
	z.neg, err = scanSign(r)
	if err != nil {
		return
	}

	// mantissa
	var fcount int // fractional digit count; valid if <= 0
	z.mant, b, fcount, err = z.mant.scan(r, base, true)
	if err != nil {
		return
	}

	// exponent
	expBase := b
	if mode&DecimalExp != 0 {
		expBase = 10
	}
	var exp int64
	exp, err = scanExponent(r, b, expBase)
	if err != nil {
		return
	}

	// special-case 0
	if len(z.mant) == 0 {
		z.acc = Exact
		// z.form = zero - already done
		return z, b, nil
	}
	// len(z.mant) > 0

	// The mantissa may have a radix point (fcount <= 0) and there may be
	// a nonzero exponent exp. The radix point amounts to a division by
	// b**(-fcount).
	d := exp
	if fcount < 0 {
		d += int64(fcount)
	}
	return z.setScaled(z.mant, b, d), b, nil
}

// setScaled sets z to the correctly rounded value of m × base**d and returns
// z. m must be non-zero and the sign of z must be set.
func (z *Float) setScaled(m nat, base int, d int64) *Float {
	if d == 0 {
		return z.setBits(m, 0, 0)
	}

	// power of two bases scale exactly
	if base&(base-1) == 0 {
		return z.setBits(m, d*int64(bits.TrailingZeros(uint(base))), 0)
	}

	// Saturate early when the result is out of range; base**d could not be
	// computed in reasonable time or memory anyway.
	est := float64(m.bitLen()) + float64(d)*math.Log2(float64(base))
	switch {
	case est > MaxExp+1:
		z.acc = makeAcc(!z.neg)
		z.form = inf
		return z
	case est < MinExp-1:
		z.acc = makeAcc(z.neg)
		z.form = zero
		return z
	}

	if d > 0 {
		if float64(d)*log2of3 > float64(z.prec)+1 {
			return z.setScaledBound(m, base, d)
		}
		// m × base**d is an integer: compute it exactly and round once
		return z.setBits(mulPow(nat(nil).set(m), base, d), 0, 0)
	}
	if float64(-d)*log2of3 > float64(m.bitLen()) {
		return z.setScaledBound(m, base, d)
	}

	// d < 0: divide m × 2**s by base**k with s large enough that the
	// quotient carries at least prec+1 significant bits. The remainder only
	// matters as a sticky bit.
	k := -d
	s := int64(z.prec) + 2 + k*int64(bits.Len(uint(base))) - int64(m.bitLen())
	if s < 0 {
		s = 0
	}
	q := nat(nil).shl(m, uint(s))
	q, sticky := divPow(q, base, k)
	var sbit uint
	if sticky {
		sbit = 1
	}
	return z.setBits(q, -s, sbit)
}

// Parse parses s which must contain a text representation of a floating-
// point number with a mantissa in the given conversion base (the exponent
// is written in that base too unless mode includes DecimalExp), or a string
// representing an infinite value.
//
// For base 0, an optional base prefix selects the base: "0b" or "0B" for 2,
// "0o" or "0O" for 8 and "0x" or "0X" for 16. Without prefix the base is 10.
// Bases 2 to MaxBase are accepted without prefix. Letters are
// case-insensitive for bases up to 36; bases 37 to 62 use the digits 0-9,
// A-Z, a-z in that order.
//
// The number has the form
//
//	number   = [ sign ] mantissa [ exponent ] | infinity .
//	sign     = "+" | "-" .
//	mantissa = digits "." [ digits ] | digits | "." digits .
//	exponent = ( "@" | "e" | "E" ) [ sign ] digits .
//	infinity = [ sign ] ( "Inf" | "inf" ) .
//
// The "e" and "E" exponent markers are only recognized for bases up to 10,
// where they cannot be mistaken for digits. The value of the number is
// mantissa × base**exponent, correctly rounded to z's precision using z's
// rounding mode. If z's precision is 0, it is changed to the default
// precision before rounding takes effect. Values too large or too small for
// the exponent range become ±Inf or ±0.
//
// The entire string (not just a prefix) must be valid. On failure Parse
// returns a nil Float and an error wrapping ErrInvalidFormat (or
// ErrInvalidBase), and the value of z is undefined.
func (z *Float) Parse(s string, base int, mode TextMode) (f *Float, err error) {
	// scan doesn't handle ±Inf
	if t := strings.TrimLeft(s, "+-"); len(s)-len(t) <= 1 && (t == "Inf" || t == "inf") && infOK(base) {
		if z.prec == 0 {
			z.prec = uint32(DefaultPrecision())
		}
		return z.SetInf(s[0] == '-'), nil
	}

	r := strings.NewReader(s)
	if f, _, err = z.scan(r, base, mode); err != nil {
		if err == io.EOF {
			err = errNoDigits
		}
		return nil, errors.WithMessagef(err, "parsing %q", s)
	}

	// entire string must have been consumed
	if ch, err2 := r.ReadByte(); err2 == nil {
		return nil, errors.Wrapf(ErrInvalidFormat, "parsing %q: unexpected %q at position %d", s, ch, len(s)-r.Len())
	}

	return f, nil
}

// infOK reports whether "Inf" cannot be read as a number in base.
func infOK(base int) bool {
	return base == 0 || 2 <= base && base <= MaxBase && digitVal('n', base) >= Word(base)
}

// ParseFloat is like f.Parse(s, base, mode) with f set to the given precision
// and rounding mode ToNearestEven. prec must be in the range [1, MaxPrec].
func ParseFloat(s string, base int, prec uint, mode TextMode) (f *Float, err error) {
	z, err := Allocate(prec)
	if err != nil {
		return nil, err
	}
	return z.Parse(s, base, mode)
}

var _ fmt.Scanner = &floatZero // *Float must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value of
// the scanned number, read in base 10 with an optional decimal exponent.
// The verb is ignored. Scan doesn't handle ±Inf.
func (z *Float) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace()
	_, _, err := z.scan(byteReader{s}, 10, DecimalExp)
	return err
}
