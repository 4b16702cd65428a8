// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hugefloat

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

// scan scans the number corresponding to the longest possible prefix
// from r representing an unsigned number in a given conversion base.
// scan returns the corresponding natural number res, the actual base b,
// a digit count, and a read or syntax error err, if any.
//
// For base 0, an optional prefix "0b", "0B", "0o", "0O", "0x" or "0X"
// selects base 2, 8 or 16; otherwise the base is 10. For bases 2 to
// MaxBase no prefix is permitted.
//
// If fracOk is set, a period followed by a fractional part is permitted.
// The result value is computed as if there were no period present; and
// the count value is used to determine the fractional part: the count
// is the negative number of digits following the period.
//
// A result digit count > 0 corresponds to the number of (non-prefix) digits
// parsed. A digit count <= 0 indicates the presence of a period (if fracOk
// is set, only), and -count is the number of fractional digits found.
// In this case, the actual value of the scanned number is res * b**count.
func (z nat) scan(r io.ByteScanner, base int, fracOk bool) (res nat, b, count int, err error) {
	// reject invalid bases
	if base != 0 && (base < 2 || base > MaxBase) {
		return z[:0], base, 0, errors.Wrapf(ErrInvalidBase, "base %d", base)
	}

	// one char look-ahead
	ch, err := r.ReadByte()

	// determine actual base
	b, prefix := base, 0
	if base == 0 {
		// actual base is 10 unless there's a base prefix
		b = 10
		if err == nil && ch == '0' {
			count = 1
			ch, err = r.ReadByte()
			if err == nil {
				// possibly one of 0b, 0B, 0o, 0O, 0x, 0X
				switch ch {
				case 'b', 'B':
					b, prefix = 2, 'b'
				case 'o', 'O':
					b, prefix = 8, 'o'
				case 'x', 'X':
					b, prefix = 16, 'x'
				}
				if prefix != 0 {
					count = 0 // prefix is not counted
					ch, err = r.ReadByte()
				}
			}
		}
	}

	// convert string
	// Algorithm: Collect digits in groups of at most n digits in di
	// and then use mulAddWW for every such group to add them to the
	// result.
	z = z[:0]
	b1 := Word(b)
	bn, n := maxPow(b1) // at most n digits in base b1 fit into Word
	di := Word(0)       // 0 <= di < b1**i < bn
	i := 0              // 0 <= i < n
	dp := -1            // position of decimal point
	for err == nil {
		if ch == '.' && fracOk {
			fracOk = false
			dp = count
		} else {
			// convert rune into digit value d1
			d1 := digitVal(ch, b)
			if d1 >= b1 {
				err = r.UnreadByte() // ch does not belong to number anymore
				break
			}
			count++

			// collect d1 in di
			di = di*b1 + d1
			i++

			// if di is "full", add it to the result
			if i == n {
				z = z.mulAddWW(z, bn, di)
				di = 0
				i = 0
			}
		}

		ch, err = r.ReadByte()
	}

	if err == io.EOF {
		err = nil
	}

	if err == nil && count == 0 {
		// no digits found
		err = errNoDigits
	}

	// add remaining digits to result
	if i > 0 {
		z = z.mulAddWW(z, pow(b1, i), di)
	}
	res = z.norm()

	// adjust count for fraction, if any
	if dp >= 0 {
		// 0 <= dp <= count
		count = dp - count
	}

	return
}

// utoa converts x to an ASCII representation in the given base using the
// given digit alphabet; base must be between 2 and MaxBase, inclusive.
func (x nat) utoa(base int, digits string) []byte {
	// x == 0
	if len(x) == 0 {
		return []byte("0")
	}
	// len(x) > 0

	// allocate buffer for conversion
	i := int(float64(x.bitLen())/math.Log2(float64(base))) + 1 // off by 1 at most
	s := make([]byte, i)

	b := Word(base)
	bb, ndigits := maxPow(b)

	// preserve x, create local copy for use by the conversion loop
	q := nat(nil).set(x)

	// Extract the least significant base bb "digit" with a single word
	// division, then split it into ndigits base b digits.
	for len(q) > 0 {
		var r Word
		q, r = q.divW(q, bb)
		for j := 0; j < ndigits && i > 0; j++ {
			i--
			s[i] = digits[r%b]
			r /= b
		}
	}

	// prepend high-order zeros
	for i > 0 { // while need more leading zeros
		i--
		s[i] = '0'
	}

	// strip leading zeros
	// (x != 0; thus s must contain at least one non-zero digit
	// and the loop will terminate)
	i = 0
	for s[i] == '0' {
		i++
	}

	return s[i:]
}
