// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hugefloat implements multi-precision binary floating-point numbers
with exact conversions to and from text in any base between 2 and 62.

The implementation follows big.Float: a Float holds a sign, a mantissa stored
as a little-endian slice of machine Words normalized so that its most
significant bit is set, and a 32 bit binary exponent. A finite Float x has
the value

    sign × 0.mantissa × 2**exponent

with 0.5 <= mantissa < 1. Every Float has a precision in bits and a rounding
mode; results are rounded to the precision of the receiver.

The zero value for a Float corresponds to 0 and adopts the default precision
(see SetDefaultPrec) on its first assignment:

    var x hugefloat.Float       // x is 0, precision 0
    x.SetInt64(-42)             // x is -42, precision DefaultPrec

Floats with an explicit precision are created by Allocate or ParseFloat, and
the precision of an existing Float only changes with SetPrec:

    z, err := hugefloat.Allocate(1200)

Setters, numeric operations and predicates are represented as methods of the
form:

    func (z *Float) SetV(v V) *Float               // z = v
    func (z *Float) Unary(x *Float) *Float         // z = unary x
    func (z *Float) Binary(x, y *Float) *Float     // z = x binary y
    func (x *Float) Pred() P                       // p = pred(x)

For unary and binary operations, the result is the receiver (usually named z
in that case); if it is one of the operands x or y it may be safely
overwritten (and its memory reused). For instance

    sum.Add(sum, x)

accumulates values x in sum.

Text conversions use the form

    [-]0.<digits>@<exponent>

where the value is 0.<digits> × base**exponent. Text writes the exponent in
the mantissa base unless the DecimalExp mode is given; Parse reads it the same
way. String writes base 10 with a decimal exponent.

Conversions to native types truncate toward zero: Int64 and Uint64 keep the
low 64 bits of the integer part, and Float64 drops mantissa bits beyond those
of a float64. Guard narrowing conversions with the Fits predicates:

    if x.FitsInt32() {
        i := int32(x.Int64())
        ...
    }

The context sub-package bundles a precision and a rounding mode, and turns
ErrNaN panics into errors.
*/
package hugefloat
