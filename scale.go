// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hugefloat

import (
	"math"
	"math/bits"
)

// Scaling by large powers of a base that is not a power of two.
//
// Computing base**k exactly costs time quadratic in k. When the result only
// needs a few hundred significant bits, it is cheaper to compute a truncated
// power and to retry with more working bits in the rare cases where the
// truncation error leaves the rounding undecided (Ziv's strategy). The retry
// loop only terminates if the scaled value is not exactly on a rounding
// boundary, so callers use the exact routines whenever that can happen.

var log2of3 = math.Log2(3)

// A lowerBound p × 2**exp approximates a positive real v from below with
//
//	v × (1 - 2**(1-t))**n <= p × 2**exp <= v
//
// where t is the working precision in bits. Operands are exact when n == 0.
type lowerBound struct {
	p   nat
	exp int64
	n   uint64
}

// trunc drops the low bits of x.p so that it holds at most t bits.
func (x *lowerBound) trunc(t uint) {
	if l := uint(x.p.bitLen()); l > t {
		x.p = x.p.shr(x.p, l-t)
		x.exp += int64(l - t)
		x.n++
	}
}

// mul sets z to x × y truncated to t bits.
func (z *lowerBound) mul(x, y *lowerBound, t uint) {
	p := nat(nil).mul(x.p, y.p)
	z.exp, z.n = x.exp+y.exp, x.n+y.n
	z.p = p
	z.trunc(t)
}

// ulps returns an upper bound for v - p × 2**exp in units of 2**exp. It
// requires x.p to hold at most t bits and n × 2**(1-t) <= 1/4.
func (x *lowerBound) ulps() nat {
	// v <= p × 2**exp / (1 - 2**(1-t))**n <= p × 2**exp × (1 + n × 2**(2-t))
	// and p < 2**t.
	return nat(nil).setUint64(4*x.n + 1)
}

// upper returns p + x.ulps(), the upper end of the interval enclosing v.
func (x *lowerBound) upper() nat {
	return nat(nil).add(x.p, x.ulps())
}

// powBound returns a t-bit lower bound of base**k. base must not be a power
// of two.
func powBound(base int, k int64, t uint) lowerBound {
	var b lowerBound
	if k >= 0 {
		b.p = nat(nil).setWord(Word(base))
	} else {
		// 1/base truncated to t bits
		s := t - 1 + uint(bits.Len(uint(base)))
		b.p, _ = nat(nil).divW(nat(nil).shl(nat{1}, s), Word(base))
		b.exp = -int64(s)
		b.n = 1
		k = -k
	}

	r := lowerBound{p: nat(nil).setWord(1)}
	for i := bits.Len64(uint64(k)) - 1; i >= 0; i-- {
		r.mul(&r, &r, t)
		if k>>uint(i)&1 != 0 {
			r.mul(&r, &b, t)
		}
	}
	return r
}

// guardBits returns the initial number of working bits above prec for a
// scaling by base**k.
func guardBits(k int64) uint {
	if k < 0 {
		k = -k
	}
	return 64 + 2*uint(bits.Len64(uint64(k)))
}

// setScaledBound sets z to the correctly rounded value of m × base**d. The
// result must not be representable in prec+1 bits, which holds when
// d × log2(3) > prec+1 or -d × log2(3) > m.bitLen().
func (z *Float) setScaledBound(m nat, base int, d int64) *Float {
	for t := uint(z.prec) + guardBits(d); ; t *= 2 {
		v := powBound(base, d, t)
		v.mul(&v, &lowerBound{p: m}, t)

		lo := Float{prec: z.prec, mode: z.mode, neg: z.neg}
		hi := lo
		lo.setBits(v.p, v.exp, 0)
		hi.setBits(v.upper(), v.exp, 0)
		if lo.acc != Exact && lo.acc == hi.acc && lo.form == hi.form &&
			(lo.form != finite || lo.exp == hi.exp && lo.mant.cmp(hi.mant) == 0) {
			z.form = lo.form
			z.exp = lo.exp
			z.acc = lo.acc
			z.mant = z.mant.set(lo.mant)
			return z
		}
	}
}

// floorBound returns floor(m × 2**e2 × base**k). The result must not be an
// integer, so the discarded fraction is always non-zero.
func floorBound(m nat, e2 int64, base int, k int64) nat {
	for t := uint(m.bitLen()) + guardBits(k); ; t *= 2 {
		v := powBound(base, k, t)
		v.mul(&v, &lowerBound{p: m}, t)
		v.exp += e2
		if v.exp >= 0 {
			// the interval is at least one unit wide
			continue
		}
		s := uint(-v.exp)
		lo := nat(nil).shr(v.p, s)
		hi := v.upper()
		hi = hi.shr(hi, s)
		if lo.cmp(hi) == 0 {
			return lo
		}
	}
}
