// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides IEEE-754 style contexts for Floats.
//
// All factory functions of the form
//
//    func (c *Context) NewT(x T) *hugefloat.Float
//
// create a new hugefloat.Float set to the value of x, and rounded using c's
// precision and rounding mode.
//
// Operators that set a receiver z to function of other Float arguments like:
//
//    func (c *Context) UnaryOp(z, x *hugefloat.Float) *hugefloat.Float
//    func (c *Context) BinaryOp(z, x, y *hugefloat.Float) *hugefloat.Float
//
// set z to the result of z.Op(args), rounded using the c's precision and
// rounding mode and return z.
//
// A Context catches NaN errors: if an operation generates a NaN, the operation
// will silently succeed with an undefined result. Further operations with the
// context will be no-ops (they simply return the receiver z) until
// (*Context).Err is called to check for errors.
package context

import (
	"github.com/db47h/hugefloat"
	"github.com/pkg/errors"
)

// A Context is a wrapper around Floats that facilitates management of
// rounding modes, precision and error handling.
type Context struct {
	prec uint32
	mode hugefloat.RoundingMode
	err  error
}

// New creates a new context with the given precision and rounding mode. If
// prec is 0, the current default precision is used.
func New(prec uint, mode hugefloat.RoundingMode) *Context {
	return new(Context).SetMode(mode).SetPrec(prec)
}

// Mode returns the rounding mode of c.
func (c *Context) Mode() hugefloat.RoundingMode {
	return c.mode
}

// Prec returns the mantissa precision of c in bits.
func (c *Context) Prec() uint {
	return uint(c.prec)
}

// SetMode sets c's rounding mode to mode and returns c.
func (c *Context) SetMode(mode hugefloat.RoundingMode) *Context {
	c.mode = mode
	return c
}

// SetPrec sets c's precision to prec and returns c.
//
// If prec > MaxPrec, it is set to MaxPrec. If prec == 0, it is set to
// hugefloat.DefaultPrecision().
func (c *Context) SetPrec(prec uint) *Context {
	// special case
	if prec == 0 {
		prec = hugefloat.DefaultPrecision()
	}
	// general case
	if prec > hugefloat.MaxPrec {
		prec = hugefloat.MaxPrec
	}
	c.prec = uint32(prec)
	return c
}

// New returns a new hugefloat.Float with value 0, precision and rounding mode
// set to c's precision and rounding mode.
func (c *Context) New() *hugefloat.Float {
	return new(hugefloat.Float).SetMode(c.mode).SetPrec(uint(c.prec))
}

// NewInt64 returns a new *hugefloat.Float set to the (possibly rounded) value
// of x.
func (c *Context) NewInt64(x int64) *hugefloat.Float {
	return c.New().SetInt64(x)
}

// NewUint64 returns a new *hugefloat.Float set to the (possibly rounded) value
// of x.
func (c *Context) NewUint64(x uint64) *hugefloat.Float {
	return c.New().SetUint64(x)
}

// NewFloat64 returns a new *hugefloat.Float set to the (possibly rounded)
// value of x. A NaN x sets c's error state and returns a zero Float.
func (c *Context) NewFloat64(x float64) (r *hugefloat.Float) {
	z := c.New()
	if c.err != nil {
		return z
	}
	defer c.recoverNaN(z, &r)
	return z.SetFloat64(x)
}

// NewString returns a new Float with the value of s, which must be a base 10
// number as accepted by (*hugefloat.Float).SetString. The entire string (not
// just a prefix) must be valid for success. If the operation failed, the
// returned value is nil. The Float's precision and rounding mode are set to
// c's precision and rounding mode.
func (c *Context) NewString(s string) (*hugefloat.Float, error) {
	return c.New().SetString(s)
}

// Parse is like f.Parse(s, base, mode) with f set to c's precision and
// rounding mode.
func (c *Context) Parse(s string, base int, mode hugefloat.TextMode) (*hugefloat.Float, error) {
	return c.New().Parse(s, base, mode)
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// Round sets z's to the value of x and returns z rounded using c's precision
// and rounding mode.
func (c *Context) Round(z, x *hugefloat.Float) *hugefloat.Float {
	if c.err != nil {
		return z
	}
	return c.apply(z.Copy(x))
}

// apply applies c's precision and rounding mode to z and returns z.
func (c *Context) apply(z *hugefloat.Float) *hugefloat.Float {
	z.SetMode(c.mode)
	if z.Prec() != uint(c.prec) {
		z.SetPrec(uint(c.prec))
	}
	return z
}

// recoverNaN turns an ErrNaN panic into c's error state and sets *r to z.
// It must be deferred.
func (c *Context) recoverNaN(z *hugefloat.Float, r **hugefloat.Float) {
	if p := recover(); p != nil {
		err, ok := p.(error)
		if !ok || !errors.As(err, new(hugefloat.ErrNaN)) {
			panic(p)
		}
		c.err = err
		*r = z
	}
}

// Add sets z to the rounded sum x+y and returns z.
func (c *Context) Add(z, x, y *hugefloat.Float) (r *hugefloat.Float) {
	if c.err != nil {
		return z
	}
	defer c.recoverNaN(z, &r)
	return c.apply(z).Add(x, y)
}

// Sub sets z to the rounded difference x-y and returns z.
func (c *Context) Sub(z, x, y *hugefloat.Float) (r *hugefloat.Float) {
	if c.err != nil {
		return z
	}
	defer c.recoverNaN(z, &r)
	return c.apply(z).Sub(x, y)
}

// Neg sets z to the (possibly rounded) value of x with its sign negated,
// and returns z.
func (c *Context) Neg(z, x *hugefloat.Float) *hugefloat.Float {
	if c.err != nil {
		return z
	}
	return c.apply(z).Neg(x)
}

// Abs sets z to the (possibly rounded) value |x| (the absolute value of x)
// and returns z.
func (c *Context) Abs(z, x *hugefloat.Float) *hugefloat.Float {
	if c.err != nil {
		return z
	}
	return c.apply(z).Abs(x)
}
