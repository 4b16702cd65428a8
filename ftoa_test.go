// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hugefloat

import (
	"math/big"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatText(t *testing.T) {
	const hexVal = "-23429abcdef29835746298.3fedcba34562"
	const mixed = "0.12354523094527035843ABCDEF54@10"

	for i, test := range []struct {
		s     string
		base  int
		pmode TextMode
		prec  uint

		fbase int
		fmode TextMode
		want  string
	}{
		// hexadecimal, exponent in either base
		{hexVal, 16, 0, 192, 16, Lower, "-0.23429abcdef298357462983fedcba34562@16"},
		{hexVal, 16, 0, 192, 16, 0, "-0.23429ABCDEF298357462983FEDCBA34562@16"},
		{hexVal, 16, 0, 192, 16, Lower | DecimalExp, "-0.23429abcdef298357462983fedcba34562@22"},
		{hexVal, 16, 0, 192, 16, DecimalExp, "-0.23429ABCDEF298357462983FEDCBA34562@22"},

		// the parse mode decides how the exponent is read
		{mixed, 16, DecimalExp, 192, 16, DecimalExp, "0.12354523094527035843ABCDEF54@10"},
		{mixed, 16, DecimalExp, 192, 16, 0, "0.12354523094527035843ABCDEF54@A"},
		{mixed, 16, 0, 192, 16, DecimalExp, "0.12354523094527035843ABCDEF54@16"},
		{mixed, 16, 0, 192, 16, 0, "0.12354523094527035843ABCDEF54@10"},

		// decimal
		{"-234293847562.98357462983476598345623984756", 10, 0, 192, 10, DecimalExp, "-0.23429384756298357462983476598345623984756@12"},
		{"98762934876529834765234123.984761", 10, 0, 192, 10, 0, "0.98762934876529834765234123984761@26"},
		{"-123.25", 10, 0, 192, 10, DecimalExp, "-0.12325@3"},
		{"0.5", 10, 0, 192, 10, 0, "0.5@0"},
		{"1200", 10, 0, 192, 10, 0, "0.12@4"},
		{"-1e-10", 10, 0, 192, 10, 0, "-0.1@-9"},
		{"1e1000", 10, 0, 192, 10, 0, "0.1@1001"},
		{"12.34e-5", 10, 0, 64, 10, 0, "0.1234@-3"},
		{"99.96", 10, 0, 12, 10, 0, "0.9997@2"},
		{"0.1", 10, 0, 4, 10, 0, "0.1@0"},
		{"3.14159265358979323846264338327950288419716939937510582097494459", 10, 0, 256, 10, 0, "0.314159265358979323846264338327950288419716939937510582097494459000000000000002@1"},

		// other bases
		{"zZ.9@-2", 62, 0, 128, 62, 0, "0.zZ90000000000000000002@0"},
		{"zZ.9@-2", 62, 0, 128, 62, Lower, "0.zZ90000000000000000002@0"},
		{"zZ.9@-2", 62, 0, 128, 10, DecimalExp, "0.99301382968010472961632707864791379947@0"},
		{"zz.9@-2", 36, 0, 128, 36, 0, "0.ZZ9@0"},
		{"zz.9@-2", 36, 0, 128, 36, Lower, "0.zz9@0"},
		{"zz.9@-2", 36, 0, 128, 10, 0, "0.999421296296296296296296296296296296296@0"},
		{"101.011", 2, DecimalExp, 64, 2, DecimalExp, "0.101011@3"},
		{"101.011", 2, DecimalExp, 64, 2, 0, "0.101011@11"},
		{"101.011", 2, DecimalExp, 64, 10, 0, "0.5375@1"},
		{"-0.000111e+11", 2, 0, 64, 2, 0, "-0.111@0"},
		{"-0.000111e+11", 2, 0, 64, 10, 0, "-0.875@0"},
		{"7777.777@-7", 8, 0, 64, 8, 0, "0.7777777@-3"},
		{"7777.777@-7", 8, 0, 64, 10, 0, "0.19531240686774253845@-2"},
		{"abc.def", 16, 0, 40, 16, 0, "0.ABCDEF@3"},
		{"abc.def", 16, 0, 40, 16, Lower, "0.abcdef@3"},
		{"abc.def", 16, 0, 40, 10, 0, "0.2748870849609@4"},
		{"A@A", 11, 0, 64, 11, 0, "0.A@10"},
		{"A@A", 11, 0, 64, 11, DecimalExp, "0.A@11"},
		{"A@A", 11, 0, 64, 10, 0, "0.25937424601@12"},
		{"1@-10", 16, DecimalExp, 64, 16, DecimalExp, "0.1@-9"},
		{"1@-10", 16, DecimalExp, 64, 10, 0, "0.90949470177292823792@-12"},

		// specials
		{"0", 10, 0, 192, 10, 0, "0"},
		{"-0", 16, 0, 192, 16, 0, "-0"},
		{"+Inf", 10, 0, 192, 36, 0, "+Inf"},
		{"-Inf", 10, 0, 192, 2, Lower, "-Inf"},
	} {
		x, err := ParseFloat(test.s, test.base, test.prec, test.pmode)
		if !assert.NoError(t, err, "%d: parse %q", i, test.s) {
			continue
		}
		got, err := x.Text(test.fbase, test.fmode)
		require.NoError(t, err)
		assert.Equal(t, test.want, got, "%d: %q Text(%d, %d)", i, test.s, test.fbase, test.fmode)

		buf, err := x.Append([]byte("x = "), test.fbase, test.fmode)
		require.NoError(t, err)
		assert.Equal(t, "x = "+test.want, string(buf))
	}
}

func TestFloatTextInvalidBase(t *testing.T) {
	x := NewInt64(42)
	for _, base := range []int{-1, 0, 1, 63, 100} {
		s, err := x.Text(base, 0)
		assert.Equal(t, "", s)
		assert.True(t, errors.Is(err, ErrInvalidBase), "Text(%d): %v", base, err)

		buf, err := x.Append([]byte("keep"), base, 0)
		assert.Equal(t, "keep", string(buf))
		assert.True(t, errors.Is(err, ErrInvalidBase), "Append(%d): %v", base, err)
	}
}

func TestFloatString(t *testing.T) {
	for _, test := range []struct {
		x    func() *Float
		want string
	}{
		{func() *Float { return New() }, "0"},
		{func() *Float { return new(Float) }, "0"},
		{func() *Float { return NewFloat(0.5) }, "0.5@0"},
		{func() *Float { return NewInt64(1200) }, "0.12@4"},
		{func() *Float { return NewInt64(-0x784739ABCDEF4876) }, "-0.8666959417955010678@19"},
		{func() *Float { return NewUint64(0xF84739ABCDEF4876) }, "0.17890331454809786486@20"},
		{func() *Float { return new(Float).SetInf(true) }, "-Inf"},
	} {
		assert.Equal(t, test.want, test.x().String())
	}
}

// TestFloatDigitBudget checks that the number of digits written depends on
// the base and precision, and that String caps it.
func TestFloatDigitBudget(t *testing.T) {
	const (
		d     = "115756986668303657898962467957"
		first = "0.4319884437934365936167071051580911432969784089374402560671264954744515916674533904269164136705042696266273091586258250615682073940558331752887625716915229667209353290921481895937206549526567083940043978666377866410748379009597275082251936508951721024676412"
		full  = "0.431988443793436593616707105158091143296978408937440256067126495474451591667453390426916413670504269626627309158625825061568207394055833175288762571691522966720935329092148189593720654952656708394004397866637786641074837900959727508225193650895172102467641248251435859103226599397272308044249"
	)

	// d**10 is a 291 digit integer
	b := new(big.Int)
	b.SetString(d, 10)
	b.Exp(b, big.NewInt(10), nil)
	require.Len(t, b.String(), 291)

	x, err := ParseFloat(b.String(), 10, 1200, DecimalExp)
	require.NoError(t, err)
	assert.Equal(t, uint(1200), x.Prec())
	assert.Equal(t, Exact, x.Acc())
	assert.Equal(t, uint(966), x.MinPrec())

	s := x.String()
	assert.Equal(t, first+"@291", s)
	assert.Equal(t, MaxStringDigits(), len(strings.TrimPrefix(strings.Split(s, "@")[0], "0.")))

	s, err = x.Text(10, 0)
	require.NoError(t, err)
	assert.Equal(t, full+"@291", s)
	assert.Len(t, strings.TrimPrefix(strings.Split(s, "@")[0], "0."), 291)

	assert.True(t, x.IsInt())
}

func TestDigitBudget(t *testing.T) {
	for _, test := range []struct {
		prec uint32
		base int
		want int
	}{
		{1, 10, 1},
		{53, 10, 16},
		{64, 10, 20},
		{192, 10, 58},
		{1200, 10, 362},
		{64, 2, 64},
		{64, 16, 16},
		{65, 16, 17},
		{64, 8, 22},
		{128, 62, 22},
		{128, 36, 25},
		{40, 16, 10},
	} {
		assert.Equal(t, test.want, digitBudget(test.prec, test.base), "digitBudget(%d, %d)", test.prec, test.base)
	}
}

func TestFloatTextCarry(t *testing.T) {
	// at 3 bits, the budget is a single decimal digit
	for _, test := range []struct {
		s    string
		want string
	}{
		{"96", "0.1@3"}, // 9.6 rounds up to 10 and the exponent moves
		{"0.0009765625", "0.1@-2"},
		{"0.125", "0.1@0"},
		{"0.375", "0.4@0"},
		{"-96", "-0.1@3"},
	} {
		x, err := ParseFloat(test.s, 10, 3, DecimalExp)
		require.NoError(t, err)
		s, err := x.Text(10, 0)
		require.NoError(t, err)
		assert.Equal(t, test.want, s, test.s)
	}
}

func BenchmarkFloatString(b *testing.B) {
	x := makeFloat("-234293847562.98357462983476598345623984756")
	for i := 0; i < b.N; i++ {
		_ = x.String()
	}
}
