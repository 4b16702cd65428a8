// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Floats.

package hugefloat

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const floatGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
// The Float value and all its attributes (precision,
// rounding mode, accuracy) are marshaled.
func (x *Float) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}

	// determine max. space (bytes) required for encoding
	sz := 1 + 1 + 4 // version + mode|acc|form|neg (3+2+2+1bit) + prec
	n := 0          // number of mantissa words
	if x.form == finite {
		// add space for mantissa and exponent
		n = int((x.prec + (_W - 1)) / _W) // required mantissa length in words for given precision
		// the mantissa is shorter when it has trailing zero words
		if len(x.mant) < n {
			n = len(x.mant)
		}
		sz += 4 + n*_S // exp + mant
	}
	buf := make([]byte, sz)

	buf[0] = floatGobVersion
	b := byte(x.mode&7)<<5 | byte((x.acc+1)&3)<<3 | byte(x.form&3)<<1
	if x.neg {
		b |= 1
	}
	buf[1] = b
	binary.BigEndian.PutUint32(buf[2:], x.prec)

	if x.form == finite {
		binary.BigEndian.PutUint32(buf[6:], uint32(x.exp))
		x.mant[len(x.mant)-n:].bytes(buf[10:])
	}

	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
// The result is rounded per the precision and rounding mode of
// z unless z's precision is 0, in which case z is set exactly
// to the decoded value.
func (z *Float) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Float{}
		return nil
	}
	if len(buf) < 6 {
		return errors.Errorf("Float.GobDecode: buffer too small (%d bytes)", len(buf))
	}

	if buf[0] != floatGobVersion {
		return errors.Errorf("Float.GobDecode: encoding version %d not supported", buf[0])
	}

	oldPrec := z.prec
	oldMode := z.mode

	b := buf[1]
	mode := RoundingMode((b >> 5) & 7)
	acc := Accuracy((b>>3)&3) - 1
	fm := form((b >> 1) & 3)
	if mode > ToPositiveInf || acc > Above || fm > inf {
		return errors.Errorf("Float.GobDecode: invalid attributes %#02x", b)
	}
	z.mode = mode
	z.acc = acc
	z.form = fm
	z.neg = b&1 != 0
	z.prec = binary.BigEndian.Uint32(buf[2:])

	if z.form == finite {
		if len(buf) < 10 {
			return errors.Errorf("Float.GobDecode: buffer too small for finite value (%d bytes)", len(buf))
		}
		z.exp = int32(binary.BigEndian.Uint32(buf[6:]))
		z.mant = z.mant.setBytes(buf[10:])
		if len(z.mant) == 0 || z.prec == 0 || z.mant[len(z.mant)-1]>>(_W-1) == 0 {
			return errors.New("Float.GobDecode: invalid mantissa")
		}
		// a mantissa encoded with a larger word size may end in a zero word
		acc := z.acc
		z.round(0)
		z.acc = acc
	}

	if oldPrec != 0 {
		z.mode = oldMode
		z.SetPrec(uint(oldPrec))
	}

	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
// Only the Float value is marshaled, in base 10 with a decimal exponent and
// one digit more than Text would write, enough for UnmarshalText to restore
// the exact value at the same precision. Other attributes such as precision
// or accuracy are ignored.
func (x *Float) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.append(nil, 10, DecimalExp, digitBudget(x.prec, 10)+1), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// The result is rounded per the precision and rounding mode of z.
// If z's precision is 0, it is changed to the default precision before
// rounding takes effect.
func (z *Float) UnmarshalText(text []byte) error {
	_, err := z.Parse(string(text), 0, DecimalExp)
	if err != nil {
		err = errors.WithMessagef(err, "hugefloat: cannot unmarshal %q into a *hugefloat.Float", text)
	}
	return err
}

// bytes writes the value of x into buf using big-endian encoding.
// buf must hold len(x)*_S bytes.
func (x nat) bytes(buf []byte) {
	i := len(buf)
	for _, d := range x {
		for j := 0; j < _S; j++ {
			i--
			buf[i] = byte(d)
			d >>= 8
		}
	}
}

// setBytes interprets buf as the bytes of a big-endian unsigned
// integer, sets z to that value, and returns z.
func (z nat) setBytes(buf []byte) nat {
	z = z.make((len(buf) + _S - 1) / _S)

	i := len(buf)
	for k := 0; i >= _S; k++ {
		var d Word
		for j := 0; j < _S; j++ {
			i--
			d |= Word(buf[i]) << (8 * uint(j))
		}
		z[k] = d
	}
	if i > 0 {
		var d Word
		for s := uint(0); i > 0; s += 8 {
			i--
			d |= Word(buf[i]) << s
		}
		z[len(z)-1] = d
	}

	return z.norm()
}
