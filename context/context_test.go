package context

import (
	"math"
	"testing"

	"github.com/db47h/hugefloat"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextPrec(t *testing.T) {
	c := New(0, hugefloat.ToZero)
	assert.Equal(t, hugefloat.DefaultPrecision(), c.Prec())
	assert.Equal(t, hugefloat.ToZero, c.Mode())

	c.SetPrec(hugefloat.MaxPrec + 1)
	assert.Equal(t, uint(hugefloat.MaxPrec), c.Prec())

	c.SetPrec(8).SetMode(hugefloat.AwayFromZero)
	z := c.New()
	assert.Equal(t, uint(8), z.Prec())
	assert.Equal(t, hugefloat.AwayFromZero, z.Mode())
	assert.Equal(t, 0, z.Sign())
}

func TestContextFactories(t *testing.T) {
	c := New(8, hugefloat.ToNearestEven)

	x := c.NewInt64(-0x1ff)
	assert.Equal(t, int64(-0x200), x.Int64())
	assert.Equal(t, hugefloat.Below, x.Acc())

	x = c.NewUint64(257)
	assert.Equal(t, uint64(256), x.Uint64())

	x = c.NewFloat64(-math.Pi)
	assert.Equal(t, -3.140625, x.Float64())
	require.NoError(t, c.Err())

	x, err := c.NewString("1.5e3")
	require.NoError(t, err)
	assert.Equal(t, "0.15@4", x.String())
	assert.Equal(t, uint(8), x.Prec())

	x, err = c.Parse("-f.8", 16, 0)
	require.NoError(t, err)
	assert.Equal(t, -15.5, x.Float64())
	assert.Equal(t, hugefloat.Exact, x.Acc())

	x, err = c.Parse("-ff.8", 16, 0)
	require.NoError(t, err)
	assert.Equal(t, -256.0, x.Float64())

	_, err = c.NewString("12345A")
	assert.True(t, errors.Is(err, hugefloat.ErrInvalidFormat))
}

func TestContextNaN(t *testing.T) {
	c := New(64, hugefloat.ToNearestEven)
	pinf := new(hugefloat.Float).SetInf(false)
	ninf := new(hugefloat.Float).SetInf(true)
	one := c.NewInt64(1)

	z := c.New()
	assert.Equal(t, z, c.Add(z, pinf, ninf))

	// further operations are no-ops until Err is called
	z.SetInt64(7)
	assert.Equal(t, z, c.Add(z, one, one))
	assert.Equal(t, int64(7), z.Int64())
	assert.Equal(t, z, c.Sub(z, one, one))
	assert.Equal(t, z, c.Neg(z, one))
	assert.Equal(t, z, c.Abs(z, one))
	assert.Equal(t, z, c.Round(z, one))
	assert.Equal(t, int64(7), z.Int64())

	err := c.Err()
	var nan hugefloat.ErrNaN
	require.True(t, errors.As(err, &nan))
	assert.Equal(t, "addition of infinities with opposite signs", nan.Error())
	require.NoError(t, c.Err())

	c.Sub(z, pinf, pinf)
	assert.EqualError(t, c.Err(), "subtraction of infinities with equal signs")

	x := c.NewFloat64(math.NaN())
	assert.Equal(t, 0, x.Sign())
	assert.Error(t, c.Err())

	// other panics are not swallowed
	assert.Panics(t, func() { c.Add(z, nil, one) })
}

func TestContextOps(t *testing.T) {
	c := New(3, hugefloat.ToNearestEven)
	x := hugefloat.NewInt64(8)
	y := hugefloat.NewInt64(3)

	// the receiver's precision and mode are replaced by c's
	z := hugefloat.New().SetMode(hugefloat.ToZero)
	c.Add(z, x, y)
	assert.Equal(t, uint(3), z.Prec())
	assert.Equal(t, hugefloat.ToNearestEven, z.Mode())
	assert.Equal(t, int64(12), z.Int64())
	assert.Equal(t, hugefloat.Above, z.Acc())

	c.SetMode(hugefloat.ToZero)
	c.Sub(z, x, y)
	assert.Equal(t, int64(5), z.Int64())
	c.Sub(z, y, x)
	assert.Equal(t, int64(-5), z.Int64())

	c.Neg(z, hugefloat.NewInt64(9))
	assert.Equal(t, int64(-8), z.Int64())
	c.Abs(z, hugefloat.NewInt64(-9))
	assert.Equal(t, int64(8), z.Int64())

	// Round copies x, then rounds
	r := c.Round(new(hugefloat.Float), hugefloat.NewInt64(15))
	assert.Equal(t, uint(3), r.Prec())
	assert.Equal(t, int64(14), r.Int64())
	assert.Equal(t, hugefloat.Below, r.Acc())
	require.NoError(t, c.Err())
}
