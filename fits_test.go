package hugefloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFits(t *testing.T) {
	almostOne := NewFloat(0.99999)
	one := NewInt64(1)

	for _, test := range []struct {
		name     string
		min, max *Float
		fits     func(*Float) bool
	}{
		{"int16", NewInt64(math.MinInt16), NewInt64(math.MaxInt16), (*Float).FitsInt16},
		{"uint16", NewInt64(0), NewInt64(math.MaxUint16), (*Float).FitsUint16},
		{"int32", NewInt64(math.MinInt32), NewInt64(math.MaxInt32), (*Float).FitsInt32},
		{"uint32", NewInt64(0), NewInt64(math.MaxUint32), (*Float).FitsUint32},
		{"int64", NewInt64(math.MinInt64), NewInt64(math.MaxInt64), (*Float).FitsInt64},
		{"uint64", NewInt64(0), NewUint64(math.MaxUint64), (*Float).FitsUint64},
	} {
		t.Run(test.name, func(t *testing.T) {
			x := New()
			assert.True(t, test.fits(test.min), "min")
			assert.True(t, test.fits(test.max), "max")
			assert.True(t, test.fits(x.Add(test.max, almostOne)), "max + 0.99999")
			assert.False(t, test.fits(x.Add(test.max, one)), "max + 1")
			assert.True(t, test.fits(x.Sub(test.min, almostOne)), "min - 0.99999")
			assert.False(t, test.fits(x.Sub(test.min, one)), "min - 1")
			assert.True(t, test.fits(New()), "0")
			assert.True(t, test.fits(NewFloat(math.Copysign(0, -1))), "-0")
			assert.False(t, test.fits(New().SetInf(false)), "+Inf")
			assert.False(t, test.fits(New().SetInf(true)), "-Inf")
		})
	}
}

func TestFitsLarge(t *testing.T) {
	x := makeFloat("1e1000")
	assert.False(t, x.FitsInt64())
	assert.False(t, x.FitsUint64())
	x = makeFloat("-1e-1000")
	assert.True(t, x.FitsInt16())
	assert.True(t, x.FitsUint16())
	x = makeFloat("-0x10000")
	assert.False(t, x.FitsInt16())
	assert.True(t, x.FitsInt32())
	assert.False(t, x.FitsUint32())
}
