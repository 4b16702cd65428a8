// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hugefloat

import (
	"math"
	"sync/atomic"

	"github.com/pkg/errors"
)

// DefaultPrec is the precision, in bits, of Floats created without an
// explicit precision, unless changed with SetDefaultPrec. It spans three
// 64-bit limbs, which holds any 64-bit integer exactly with room to spare for
// fractional digits.
const DefaultPrec = 192

var defaultPrec uint32 = DefaultPrec

// DefaultPrecision returns the precision used for Floats created without an
// explicit precision.
func DefaultPrecision() uint {
	return uint(atomic.LoadUint32(&defaultPrec))
}

// SetDefaultPrec sets the precision used for Floats created afterwards
// without an explicit precision. Existing Floats keep their precision.
// It is meant to be called once, at program start.
func SetDefaultPrec(prec uint) error {
	if err := checkPrec(prec); err != nil {
		return err
	}
	atomic.StoreUint32(&defaultPrec, uint32(prec))
	return nil
}

func checkPrec(prec uint) error {
	if prec == 0 || prec > MaxPrec {
		return errors.Wrapf(ErrInvalidPrecision, "precision %d", prec)
	}
	return nil
}

// DefaultStringDigits is the number of significant digits String writes at
// most, unless changed with SetMaxStringDigits.
const DefaultStringDigits = 256

var maxStringDigits uint32 = DefaultStringDigits

// MaxStringDigits returns the maximum number of significant digits written by
// String.
func MaxStringDigits() int {
	return int(atomic.LoadUint32(&maxStringDigits))
}

// SetMaxStringDigits sets the maximum number of significant digits written by
// String. Text and MarshalText are not affected.
func SetMaxStringDigits(n uint) error {
	if n == 0 || n > math.MaxUint32 {
		return errors.Errorf("hugefloat: invalid string digit count %d", n)
	}
	atomic.StoreUint32(&maxStringDigits, uint32(n))
	return nil
}
