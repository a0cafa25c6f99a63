// Copyright 2026 Aleksandr Demakin. All rights reserved.

package bigreal

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroValueIsNaN(t *testing.T) {
	a := assert.New(t)
	var v Value
	a.True(v.IsNaN())
	a.False(v.IsZero())
	a.True(v.Eq(NaN))
}

func TestSignInvariance(t *testing.T) {
	a := assert.New(t)
	a.True(New(1, 1).Eq(New(-1, -1)))
	a.True(New(-1, 1).Eq(New(1, -1)))
	a.Equal(1, New(-1, -1).Sign())
	a.Equal(-1, New(1, -1).Sign())
	a.True(New(-2, -4).IsPositive())
	a.True(New(2, -4).IsNegative())
}

func TestPredicates(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v                        Value
		finite, nan, inf         bool
		zero, one, integer, even bool
	}{
		{NaN, false, true, false, false, false, false, false},
		{Inf, false, false, true, false, false, false, false},
		{NegInf, false, false, true, false, false, false, false},
		{Zero, true, false, false, true, false, true, true},
		{One, true, false, false, false, true, true, false},
		{New(3, 3), true, false, false, false, true, true, false},
		{New(4, 2), true, false, false, false, false, true, true},
		{New(-6, 2), true, false, false, false, false, true, false},
		{New(1, 2), true, false, false, false, false, false, false},
		{New(0, 5), true, false, false, true, false, true, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.finite, test.v.IsFinite())
			a.Equal(test.nan, test.v.IsNaN())
			a.Equal(test.inf, test.v.IsInf())
			a.Equal(test.zero, test.v.IsZero())
			a.Equal(test.one, test.v.IsOne())
			a.Equal(test.integer, test.v.IsInteger())
			a.Equal(test.even, test.v.IsEvenInteger())
		})
	}
	a.True(New(-6, 2).IsOddInteger())
	a.False(New(1, 2).IsOddInteger())
	a.True(Inf.IsPositiveInf())
	a.False(Inf.IsNegativeInf())
	a.True(NegInf.IsNegativeInf())
}

func TestSimplify(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v        Value
		num, den int64
	}{
		{New(6, 8), 3, 4},
		{New(-6, 8), -3, 4},
		{New(6, -8), -3, 4},
		{New(-6, -8), 3, 4},
		{New(0, 7), 0, 1},
		{New(5, 1), 5, 1},
		{New(7, 0), 1, 0},
		{New(-7, 0), -1, 0},
		{NaN, 0, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			s := test.v.Simplify()
			a.Equal(test.num, s.Num().Int64())
			a.Equal(test.den, s.Den().Int64())
			a.True(s.IsCanonical())
		})
	}
}

func TestIsCanonical(t *testing.T) {
	a := assert.New(t)
	a.True(New(3, 4).IsCanonical())
	a.False(New(6, 8).IsCanonical())
	a.False(New(3, -4).IsCanonical())
	a.False(New(0, 7).IsCanonical())
	a.True(Zero.IsCanonical())
	a.True(Inf.IsCanonical())
	a.False(New(7, 0).IsCanonical())
	a.True(NaN.IsCanonical())
}

func TestAccessors(t *testing.T) {
	a := assert.New(t)
	v := New(3, 7)
	a.Equal(int64(3), v.Num().Int64())
	a.Equal(int64(7), v.Den().Int64())
	// mutating the copies must not affect the value
	v.Num().SetInt64(100)
	a.Equal(int64(3), v.Num().Int64())

	r := v.BigRat()
	a.Equal("3/7", r.String())
	a.Panics(func() {
		Inf.BigRat()
	})

	a.True(FromBigRat(big.NewRat(22, 7)).Eq(New(22, 7)))
	a.True(FromBigInt(big.NewInt(-5)).Eq(FromInt64(-5)))
	a.True(FromUint64(5).Eq(FromInt(5)))
	a.True(NewBig(big.NewInt(1), big.NewInt(3)).Eq(New(1, 3)))
}

func TestHash(t *testing.T) {
	a := assert.New(t)
	a.Equal(New(1, 2).Hash(), New(2, 4).Hash())
	a.Equal(New(-1, 2).Hash(), New(1, -2).Hash())
	a.Equal(NaN.Hash(), Value{}.Hash())
	a.Equal(Inf.Hash(), New(5, 0).Hash())
	a.NotEqual(New(1, 2).Hash(), New(1, 3).Hash())
	a.NotEqual(Inf.Hash(), NegInf.Hash())
}
