// This file mirrors types and constants from math/big.

package hugefloat

import (
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"
)

// Digit alphabets. Bases up to 36 are case-insensitive on input and use
// upper case letters on output unless Lower is requested; bases 37 to 62 use
// upper case letters for the digits 10 to 35 and lower case letters for 36 to
// 61.
const (
	upperDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	lowerDigits = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// MaxBase is the largest number base accepted for string conversions.
const MaxBase = 10 + ('z' - 'a' + 1) + ('Z' - 'A' + 1)
const maxBaseSmall = 10 + ('z' - 'a' + 1)

// Exponent and precision limits.
const (
	MaxExp  = math.MaxInt32  // largest supported exponent
	MinExp  = math.MinInt32  // smallest supported exponent
	MaxPrec = math.MaxUint32 // largest (theoretically) supported precision; likely memory-limited
)

// Internal representation: The mantissa bits x.mant of a nonzero finite
// Float x are stored in a nat slice long enough to hold up to x.prec bits;
// the slice may (but doesn't have to) be shorter if the mantissa contains
// trailing 0 bits. x.mant is normalized such that the msb of x.mant == 1
// (i.e., the msb is shifted all the way "to the left"). Thus, if the mantissa
// has trailing 0 bits or x.prec is not a multiple of the Word size _W,
// x.mant[0] has trailing zero bits. The msb of the mantissa corresponds to the
// value 0.5; the exponent x.exp shifts the binary point as needed.
//
// A zero or non-finite Float x ignores x.mant and x.exp.
//
// x                 form      neg      mant         exp
// ----------------------------------------------------------
// ±0                zero      sign     -            -
// 0 < |x| < +Inf    finite    sign     mantissa     exponent
// ±Inf              inf       sign     -            -

// A form value describes the internal representation.
type form byte

// The form value order is relevant - do not change!
const (
	zero form = iota
	finite
	inf
)

// RoundingMode determines how a Float value is rounded to the
// desired precision. Rounding may change the Float value; the
// rounding error is described by the Float's Accuracy.
type RoundingMode byte

// These constants define supported rounding modes.
const (
	ToNearestEven RoundingMode = iota // == IEEE 754-2008 roundTiesToEven
	ToNearestAway                     // == IEEE 754-2008 roundTiesToAway
	ToZero                            // == IEEE 754-2008 roundTowardZero
	AwayFromZero                      // no IEEE 754-2008 equivalent
	ToNegativeInf                     // == IEEE 754-2008 roundTowardNegative
	ToPositiveInf                     // == IEEE 754-2008 roundTowardPositive
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=RoundingMode

// Accuracy describes the rounding error produced by the most recent
// operation that generated a Float value, relative to the exact value.
type Accuracy int8

// Constants describing the Accuracy of a Float.
const (
	Below Accuracy = -1
	Exact Accuracy = 0
	Above Accuracy = +1
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Accuracy

func makeAcc(above bool) Accuracy {
	if above {
		return Above
	}
	return Below
}

// Errors reported by conversions and constructors. They are wrapped with
// context; test for them with errors.Is.
var (
	ErrInvalidFormat    = errors.New("hugefloat: invalid number format")
	ErrInvalidBase      = errors.New("hugefloat: invalid base")
	ErrInvalidPrecision = errors.New("hugefloat: invalid precision")
)

// scan errors
var (
	errNoDigits    = errors.WithMessage(ErrInvalidFormat, "number has no digits")
	errNoExpDigits = errors.WithMessage(ErrInvalidFormat, "exponent has no digits")
)

// An ErrNaN panic is raised by a Float operation that would lead to
// a NaN under IEEE-754 rules. An ErrNaN implements the error interface.
type ErrNaN struct {
	msg string
}

func (err ErrNaN) Error() string {
	return err.msg
}

// byteReader is a local wrapper around fmt.ScanState;
// it implements the ByteReader interface.
type byteReader struct {
	fmt.ScanState
}

func (r byteReader) ReadByte() (byte, error) {
	ch, size, err := r.ReadRune()
	if size != 1 && err == nil {
		err = fmt.Errorf("invalid rune %#U", ch)
	}
	return byte(ch), err
}

func (r byteReader) UnreadByte() error {
	return r.UnreadRune()
}

func same(x, y []Word) bool {
	return len(x) == len(y) && len(x) > 0 && &x[0] == &y[0]
}

func alias(x, y []Word) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// digitVal returns the value of the digit ch in the given base, or a value
// >= base if ch is not a valid digit.
func digitVal(ch byte, base int) Word {
	switch {
	case '0' <= ch && ch <= '9':
		return Word(ch - '0')
	case 'A' <= ch && ch <= 'Z':
		return Word(ch - 'A' + 10)
	case 'a' <= ch && ch <= 'z':
		if base <= maxBaseSmall {
			return Word(ch - 'a' + 10)
		}
		return Word(ch - 'a' + maxBaseSmall)
	}
	return MaxBase + 1
}

// digitsFor returns the output alphabet for base.
func digitsFor(base int, lower bool) string {
	if lower && base <= maxBaseSmall {
		return lowerDigits
	}
	return upperDigits
}

func scanSign(r io.ByteScanner) (neg bool, err error) {
	var ch byte
	if ch, err = r.ReadByte(); err != nil {
		return false, err
	}
	switch ch {
	case '-':
		neg = true
	case '+':
		// nothing to do
	default:
		_ = r.UnreadByte()
	}
	return
}

// expLimit bounds the magnitude of scanned exponents. Anything that large
// overflows the binary exponent range for every base.
const expLimit = 1 << 40

// scanExponent scans an optional exponent. The exponent is introduced by '@',
// or by 'e' or 'E' if the mantissa base is at most 10, and its digits are
// read in expBase.
func scanExponent(r io.ByteScanner, base, expBase int) (exp int64, err error) {
	// one char look-ahead
	ch, err := r.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = nil
		}
		return 0, err
	}

	// exponent char
	switch {
	case ch == '@':
	case (ch == 'e' || ch == 'E') && base <= 10:
	default:
		_ = r.UnreadByte() // ch does not belong to exponent anymore
		return 0, nil
	}

	// sign
	neg := false
	ch, err = r.ReadByte()
	if err == nil && (ch == '+' || ch == '-') {
		neg = ch == '-'
		ch, err = r.ReadByte()
	}

	// exponent value
	b := Word(expBase)
	hasDigits := false
	for err == nil {
		d := digitVal(ch, expBase)
		if d >= b {
			_ = r.UnreadByte() // ch does not belong to number anymore
			break
		}
		hasDigits = true
		if exp = exp*int64(b) + int64(d); exp > expLimit {
			exp = expLimit
		}
		ch, err = r.ReadByte()
	}

	if err == io.EOF {
		err = nil
	}
	if err == nil && !hasDigits {
		err = errNoExpDigits
	}
	if neg {
		exp = -exp
	}
	return
}

// pow returns x**n for n > 0, and 1 otherwise.
func pow(x Word, n int) (p Word) {
	// n == sum of bi * 2**i, for 0 <= i < imax, and bi is 0 or 1
	// thus x**n == product of x**(2**i) for all i where bi == 1
	// (Russian Peasant Method for exponentiation)
	p = 1
	for n > 0 {
		if n&1 != 0 {
			p *= x
		}
		x *= x
		n >>= 1
	}
	return
}

// maxPow returns (b**n, n) such that b**n is the largest power b**n <= _M.
// For instance maxPow(10) == (1e19, 19) for 19 decimal digits in a 64bit Word.
// In other words, at most n digits in base b fit into a Word.
func maxPow(b Word) (p Word, n int) {
	p, n = b, 1 // assuming b <= _M
	for max := _M / b; p <= max; {
		// p == b**n && p <= max
		p *= b
		n++
	}
	// p == b**n && p <= _M
	return
}
