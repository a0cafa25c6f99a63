// Copyright 2026 Aleksandr Demakin. All rights reserved.

package bigreal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		v   Value
		err string
	}{
		{"0", Zero, ""},
		{"-0", Zero, ""},
		{"+0", Zero, ""},
		{"1", One, ""},
		{"  42  ", FromInt64(42), ""},
		{"-123", FromInt64(-123), ""},
		{"123.456", New(123456, 1000), ""},
		{"-123.456", New(-123456, 1000), ""},
		{".5", New(1, 2), ""},
		{"5.", FromInt64(5), ""},
		{"0.125", New(1, 8), ""},
		{"1e3", FromInt64(1000), ""},
		{"1E3", FromInt64(1000), ""},
		{"123.456e4", FromInt64(1234560), ""},
		{"1.5e-2", New(15, 1000), ""},
		{"-2.5e-1", New(-1, 4), ""},
		{"1e+2", FromInt64(100), ""},
		{"NaN", NaN, ""},
		{"nan", NaN, ""},
		{"-NaN", NaN, ""},
		{"Infinity", Inf, ""},
		{"-infinity", NegInf, ""},
		{"+INFINITY", Inf, ""},
		{"", NaN, "empty input"},
		{"   ", NaN, "empty input"},
		{"-", NaN, "empty input"},
		{".", NaN, "parsing failed: empty input"},
		{"abc", NaN, `parsing failed: unexpected symbol 'a' at pos 1`},
		{"  -bad", NaN, `parsing failed: unexpected symbol 'b' at pos 4`},
		{"1.2.3", NaN, "parsing failed: unexpected delimiter at pos 4"},
		{"--5", NaN, `parsing failed: unexpected symbol '-' at pos 2`},
		{"1e", NaN, "parsing failed: missing exponent at pos 3"},
		{"12a4", NaN, `parsing failed: unexpected symbol 'a' at pos 3`},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := FromString(test.s)
			if len(test.err) == 0 {
				if a.NoError(err) {
					a.True(test.v.Eq(v), "%s: got %s", test.s, v)
				}
			} else {
				a.EqualError(err, test.err)
				a.Panics(func() {
					MustFromString(test.s)
				})
			}
		})
	}
}

func TestFromStringFractionalExponent(t *testing.T) {
	a := assert.New(t)
	// 2e2.5 = 2*10^2.5 = 632.45553203367586639977...
	v, err := FromString("2e2.5")
	if a.NoError(err) {
		a.Equal("632.45553203", v.StringFixed(8))
	}
	v, err = FromString("1e0.5")
	if a.NoError(err) {
		a.Equal("3.16227766", v.StringFixed(8))
	}
	_, err = FromString("1eInfinity")
	a.Error(err)
}

func TestTryFromString(t *testing.T) {
	a := assert.New(t)
	v, ok := TryFromString("1.5")
	a.True(ok)
	a.True(v.Eq(New(3, 2)))
	v, ok = TryFromString("bad")
	a.False(ok)
	a.True(v.IsNaN())
}

func TestFromStringWithSymbols(t *testing.T) {
	a := assert.New(t)
	sym := Symbols{Decimal: ",", NaN: "keineZahl", Inf: "unendlich"}
	tests := []struct {
		s string
		v Value
	}{
		{"123,456", New(123456, 1000)},
		{"-0,5", New(-1, 2)},
		{"keinezahl", NaN},
		{"-Unendlich", NegInf},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := FromStringWith(test.s, sym)
			if a.NoError(err) {
				a.True(test.v.Eq(v))
			}
		})
	}
	a.Equal("-0,5", New(-1, 2).Format(5, sym, false))
	a.Equal("unendlich", Inf.Format(5, sym, false))
}

func TestFormat(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v        Value
		decimals int
		pad      bool
		s        string
	}{
		{Zero, 5, false, "0"},
		{Zero, 5, true, "0.0"},
		{One, 2, false, "1"},
		{One, 2, true, "1.0"},
		{New(-1, 2), 5, false, "-0.5"},
		{New(1, -2), 5, false, "-0.5"},
		{New(-3, -2), 5, false, "1.5"},
		{New(1234, 100), 2, false, "12.34"},
		{New(1234, 100), 1, false, "12.3"},
		{New(1234, 100), 0, false, "12"},
		{New(1, 3), 5, false, "0.33333"},
		{New(2, 3), 5, false, "0.66666"},
		{New(1, 8), 5, false, "0.125"},
		{New(1, 8), 2, false, "0.12"},
		{New(1000001, 1000000), 2, false, "1"},
		{New(1000001, 1000000), 2, true, "1.0"},
		{New(-1, 1000), 5, false, "-0.001"},
		{NaN, 5, false, "NaN"},
		{Inf, 5, false, "Infinity"},
		{NegInf, 5, false, "-Infinity"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.s, test.v.Format(test.decimals, DefaultSymbols, test.pad))
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s        string
		decimals int
	}{
		{"12.34", 2},
		{"12.34", 10},
		{"-0.5", 1},
		{"0.125", 3},
		{"123456789.987654321", 9},
		{"-1000000", 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v := MustFromString(test.s)
			a.Equal(test.s, v.StringFixed(test.decimals))
			back, err := FromString(v.StringFixed(test.decimals))
			if a.NoError(err) {
				a.True(v.Eq(back))
			}
		})
	}
}

func TestRationalString(t *testing.T) {
	a := assert.New(t)
	a.Equal("3 / 4", New(6, 8).RationalString())
	a.Equal("-3 / 4", New(6, -8).RationalString())
	a.Equal("0 / 1", Zero.RationalString())
	a.Equal("1 / 0", Inf.RationalString())
	a.Equal("-1 / 0", NegInf.RationalString())
	a.Equal("0 / 0", NaN.RationalString())
}

func TestGoString(t *testing.T) {
	a := assert.New(t)
	a.Equal("0.5 {1, 2}", New(1, 2).GoString())
}
