package hugefloat

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toExpForm writes d in the 0.<digits>@<exp> form used by Float.Text with
// DecimalExp.
func toExpForm(d decimal.Decimal) string {
	if d.IsZero() {
		return "0"
	}
	sign := ""
	if d.Sign() < 0 {
		sign = "-"
	}
	s := d.Abs().String()
	ip, fp := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		ip, fp = s[:i], s[i+1:]
	}
	digits := ip + fp
	lead := len(digits) - len(strings.TrimLeft(digits, "0"))
	exp := len(ip) - lead
	digits = strings.TrimRight(digits[lead:], "0")
	return sign + "0." + digits + "@" + strconv.Itoa(exp)
}

func TestToExpForm(t *testing.T) {
	for _, test := range []struct {
		s    string
		want string
	}{
		{"0", "0"},
		{"123.5", "0.1235@3"},
		{"-0.0009765625", "-0.9765625@-3"},
		{"1200", "0.12@4"},
		{"-1", "-0.1@1"},
	} {
		assert.Equal(t, test.want, toExpForm(decimal.RequireFromString(test.s)), test.s)
	}
}

// randPair returns the same dyadic value i + k/1024 as a Float and as a
// decimal.Decimal. Both representations are exact.
func randPair(r *rand.Rand) (*Float, decimal.Decimal) {
	i := r.Int63n(2e15) - 1e15
	k := r.Int63n(2e6) - 1e6
	if r.Intn(4) == 0 {
		k = 0
	}
	f := NewInt64(i)
	f.Add(f, NewFloat(float64(k)/1024))
	d := decimal.NewFromInt(i).Add(decimal.NewFromInt(k).Div(decimal.NewFromInt(1024)))
	return f, d
}

// TestFloatAgainstDecimal checks exact sums and differences against an
// independent arbitrary precision decimal implementation.
func TestFloatAgainstDecimal(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for n := 0; n < 2000; n++ {
		x, dx := randPair(r)
		y, dy := randPair(r)

		// the operands print identically
		sx, err := x.Text(10, DecimalExp)
		require.NoError(t, err)
		require.Equal(t, toExpForm(dx), sx)

		// and parse back from the decimal text
		px, err := New().SetString(dx.String())
		require.NoError(t, err)
		require.Equal(t, 0, px.Cmp(x), "SetString(%s)", dx)

		sum := New().Add(x, y)
		assert.Equal(t, toExpForm(dx.Add(dy)), sum.String(), "%s + %s", dx, dy)
		assert.Equal(t, Exact, sum.Acc())

		diff := New().Sub(x, y)
		assert.Equal(t, toExpForm(dx.Sub(dy)), diff.String(), "%s - %s", dx, dy)

		assert.Equal(t, dx.Cmp(dy), x.Cmp(y), "cmp(%s, %s)", dx, dy)
		assert.Equal(t, dx.Sign(), x.Sign())
		assert.Equal(t, dx.IntPart(), x.Int64(), "int(%s)", dx)
		assert.Equal(t, dx.IsInteger(), x.IsInt(), "isInt(%s)", dx)
	}
}
