// Copyright 2026 Aleksandr Demakin. All rights reserved.

// Package bigreal implements an arbitrary-precision rational number,
// stored as a quotient of two big integers.
// Values are exact: no arithmetic operation loses precision, and
// transcendental functions compute results to a caller-chosen number
// of decimal digits.
package bigreal

import (
	"errors"
	"math/big"

	"github.com/cespare/xxhash/v2"
)

var (
	// ErrRange is returned by narrowing conversions when the value
	// does not fit the target type.
	ErrRange = errors.New("value out of range")
	// ErrDomain is returned when an argument lies outside a function's domain.
	ErrDomain = errors.New("argument out of domain")
)

// Value is an arbitrary-precision rational number, a quotient of two
// big integers. Values are immutable, every operation returns a new Value,
// so they may be freely shared between goroutines.
//
// A denominator of zero encodes the non-finite values:
//
//	 0/0 - NaN
//	 n/0 - +Inf for n > 0
//	-n/0 - -Inf for n < 0
//
// The zero Value is NaN, not zero: both components of a default-initialized
// struct are zero, which is the NaN encoding. Use Zero for the number 0.
//
// A Value is not kept in lowest terms. Arithmetic never reduces its result,
// as reduction costs a big-integer GCD most call sites don't need;
// call Simplify where canonical form matters.
// The sign of a value is the product of the signs of its components,
// so -1/-1 and 1/1 both represent +1.
type Value struct {
	num, den big.Int
}

var (
	// Zero is the number 0.
	Zero = FromInt64(0)
	// One is the number 1.
	One = FromInt64(1)
	// NegativeOne is the number -1.
	NegativeOne = FromInt64(-1)
	// OneHalf is the number 1/2.
	OneHalf = New(1, 2)
	// Ten is the number 10.
	Ten = FromInt64(10)
	// NaN is the not-a-number sentinel. Note that the zero Value is also NaN.
	NaN = Value{}
	// Inf is positive infinity.
	Inf = makeValue(big.NewInt(1), new(big.Int))
	// NegInf is negative infinity.
	NegInf = makeValue(big.NewInt(-1), new(big.Int))

	// E is Euler's number, cached to 100 decimal digits.
	// Use CalculateE for more digits.
	E = mustParseDecimal(eDigits)
	// Pi is the circle constant, cached to 100 decimal digits.
	// Use CalculatePi for more digits.
	Pi = mustParseDecimal(piDigits)
	// Tau is 2*Pi, derived exactly from the cached Pi.
	// Use CalculateTau for more digits.
	Tau = Pi.Add(Pi)

	bigOne = big.NewInt(1)
)

// makeValue builds a Value taking ownership of both arguments.
func makeValue(num, den *big.Int) Value {
	return Value{num: *num, den: *den}
}

// New returns the value num/den.
// New(n, 0) produces a non-finite value, see the Value docs.
func New(num, den int64) Value {
	return makeValue(big.NewInt(num), big.NewInt(den))
}

// NewBig returns the value num/den. Both arguments are copied.
func NewBig(num, den *big.Int) Value {
	return makeValue(new(big.Int).Set(num), new(big.Int).Set(den))
}

// FromInt64 returns the value v/1.
func FromInt64(v int64) Value {
	return New(v, 1)
}

// FromUint64 returns the value v/1.
func FromUint64(v uint64) Value {
	return makeValue(new(big.Int).SetUint64(v), big.NewInt(1))
}

// FromInt returns the value v/1.
func FromInt(v int) Value {
	return FromInt64(int64(v))
}

// FromBigInt returns the value v/1. The argument is copied.
func FromBigInt(v *big.Int) Value {
	return makeValue(new(big.Int).Set(v), big.NewInt(1))
}

// FromBigRat returns a value equal to r. The argument is copied.
func FromBigRat(r *big.Rat) Value {
	return makeValue(new(big.Int).Set(r.Num()), new(big.Int).Set(r.Denom()))
}

// Num returns a copy of the numerator.
func (v Value) Num() *big.Int {
	return new(big.Int).Set(&v.num)
}

// Den returns a copy of the denominator.
func (v Value) Den() *big.Int {
	return new(big.Int).Set(&v.den)
}

// BigRat returns the value as a big.Rat.
// It panics for non-finite values, as big.Rat cannot represent them.
func (v Value) BigRat() *big.Rat {
	if !v.IsFinite() {
		panic("bigreal: non-finite value is not representable as big.Rat")
	}
	return new(big.Rat).SetFrac(&v.num, &v.den)
}

// IsFinite reports whether v is neither infinite nor NaN.
func (v Value) IsFinite() bool {
	return v.den.Sign() != 0
}

// IsNaN reports whether v is the not-a-number sentinel.
func (v Value) IsNaN() bool {
	return v.den.Sign() == 0 && v.num.Sign() == 0
}

// IsInf reports whether v is positive or negative infinity.
func (v Value) IsInf() bool {
	return v.den.Sign() == 0 && v.num.Sign() != 0
}

// IsPositiveInf reports whether v is positive infinity.
func (v Value) IsPositiveInf() bool {
	return v.den.Sign() == 0 && v.num.Sign() > 0
}

// IsNegativeInf reports whether v is negative infinity.
func (v Value) IsNegativeInf() bool {
	return v.den.Sign() == 0 && v.num.Sign() < 0
}

// IsZero reports whether v is a finite zero.
func (v Value) IsZero() bool {
	return v.num.Sign() == 0 && v.den.Sign() != 0
}

// IsOne reports whether v equals 1.
func (v Value) IsOne() bool {
	return v.den.Sign() != 0 && v.num.Cmp(&v.den) == 0
}

// IsPositive reports whether v is greater than zero. False for NaN.
func (v Value) IsPositive() bool {
	return v.Sign() > 0
}

// IsNegative reports whether v is less than zero. False for NaN.
func (v Value) IsNegative() bool {
	return v.Sign() < 0
}

// IsInteger reports whether v is finite and has no fractional part.
func (v Value) IsInteger() bool {
	if !v.IsFinite() {
		return false
	}
	return new(big.Int).Rem(&v.num, &v.den).Sign() == 0
}

// IsEvenInteger reports whether v is an even integer.
func (v Value) IsEvenInteger() bool {
	q, ok := v.integer()
	return ok && q.Bit(0) == 0
}

// IsOddInteger reports whether v is an odd integer.
func (v Value) IsOddInteger() bool {
	q, ok := v.integer()
	return ok && q.Bit(0) == 1
}

func (v Value) integer() (*big.Int, bool) {
	if !v.IsFinite() {
		return nil, false
	}
	q, r := new(big.Int).QuoRem(&v.num, &v.den, new(big.Int))
	if r.Sign() != 0 {
		return nil, false
	}
	return q, true
}

// IsCanonical reports whether v is in canonical form: the denominator is
// positive and the components share no common factor, or, for the
// non-finite values, the numerator is 0, 1, or -1.
func (v Value) IsCanonical() bool {
	if !v.IsFinite() {
		return v.num.CmpAbs(bigOne) <= 0
	}
	if v.den.Sign() < 0 {
		return false
	}
	if v.num.Sign() == 0 {
		return v.den.Cmp(bigOne) == 0
	}
	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(&v.num), &v.den)
	return gcd.Cmp(bigOne) == 0
}

// Sign returns -1 for negative values, 1 for positive ones, and 0 for
// zero and NaN. The components' signs cancel, so Sign of -1/-1 is 1.
func (v Value) Sign() int {
	if v.den.Sign() == 0 {
		return v.num.Sign()
	}
	return v.num.Sign() * v.den.Sign()
}

// SimplifySigns normalizes the denominator's sign to be positive,
// moving a negative sign to the numerator. The represented number
// does not change.
func (v Value) SimplifySigns() Value {
	if v.den.Sign() >= 0 {
		return v
	}
	return makeValue(new(big.Int).Neg(&v.num), new(big.Int).Neg(&v.den))
}

// Simplify returns v reduced to canonical form: components divided by
// their GCD, denominator positive. Reduction runs a big-integer GCD,
// which can be slow for huge components, so it is never done implicitly.
func (v Value) Simplify() Value {
	v = v.SimplifySigns()
	if v.IsNaN() {
		return v
	}
	if v.num.Sign() == 0 {
		return Zero
	}
	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(&v.num), new(big.Int).Abs(&v.den))
	num := new(big.Int).Quo(&v.num, gcd)
	den := new(big.Int).Quo(&v.den, gcd)
	return makeValue(num, den)
}

// Hash returns a 64-bit hash of the value, equal for values that are
// Eq to each other. The value is reduced to canonical form first.
func (v Value) Hash() uint64 {
	c := v.Simplify()
	d := xxhash.New()
	if c.Sign() < 0 {
		d.Write([]byte{'-'})
	}
	d.Write(new(big.Int).Abs(&c.num).Bytes())
	d.Write([]byte{'/'})
	d.Write(new(big.Int).Abs(&c.den).Bytes())
	return d.Sum64()
}
