package bigreal

import (
	"fmt"
	"math/big"

	"github.com/avdva/bigreal/internal/mathutil"
)

// RoundingMode selects how Round resolves fractional parts.
type RoundingMode int

const (
	// ToEven rounds to the nearest integer, resolving ties to the even one.
	ToEven RoundingMode = iota
	// AwayFromZero rounds to the nearest integer, resolving ties away from zero.
	AwayFromZero
	// ToZero truncates the fractional part.
	ToZero
	// ToPositiveInfinity rounds up.
	ToPositiveInfinity
	// ToNegativeInfinity rounds down.
	ToNegativeInfinity
)

// Binary operations do not compute with non-finite operands: the first
// non-finite operand absorbs the operation, the left one winning ties.

// Add returns v + other.
func (v Value) Add(other Value) Value {
	if !v.IsFinite() {
		return v
	}
	if !other.IsFinite() {
		return other
	}
	num := new(big.Int).Mul(&v.num, &other.den)
	num.Add(num, new(big.Int).Mul(&other.num, &v.den))
	den := new(big.Int).Mul(&v.den, &other.den)
	return makeValue(num, den)
}

// Sub returns v - other.
func (v Value) Sub(other Value) Value {
	return v.Add(other.Neg())
}

// Mul returns v * other.
func (v Value) Mul(other Value) Value {
	if !v.IsFinite() {
		return v
	}
	if !other.IsFinite() {
		return other
	}
	num := new(big.Int).Mul(&v.num, &other.num)
	den := new(big.Int).Mul(&v.den, &other.den)
	return makeValue(num, den)
}

// Div returns v / other. Division by zero needs no special branch:
// a zero divisor produces a zero denominator, i.e. a signed infinity,
// and 0/0 produces NaN.
func (v Value) Div(other Value) Value {
	if !v.IsFinite() {
		return v
	}
	if !other.IsFinite() {
		return other
	}
	num := new(big.Int).Mul(&v.num, &other.den)
	den := new(big.Int).Mul(&v.den, &other.num)
	return makeValue(num, den)
}

// Rem returns the floor-based remainder v - floor(v/other)*other.
// The result has the divisor's sign or is zero.
func (v Value) Rem(other Value) Value {
	_, rem := v.DivRem(other)
	return rem
}

// DivRem returns the integer quotient floor(v/other) and the remainder
// v - quo*other.
func (v Value) DivRem(other Value) (quo, rem Value) {
	quo = v.Div(other).Floor()
	rem = v.Sub(quo.Mul(other))
	return quo, rem
}

// Neg returns -v.
func (v Value) Neg() Value {
	return makeValue(new(big.Int).Neg(&v.num), new(big.Int).Set(&v.den))
}

// Abs returns the absolute value of v.
func (v Value) Abs() Value {
	if v.Sign() >= 0 {
		return v
	}
	return v.Neg()
}

// Inverse returns 1/v: the components swapped.
// Inverse of zero is +Inf, inverse of an infinity is zero.
func (v Value) Inverse() Value {
	return makeValue(new(big.Int).Set(&v.den), new(big.Int).Set(&v.num))
}

// Inc returns v + 1.
func (v Value) Inc() Value {
	return makeValue(new(big.Int).Add(&v.num, &v.den), new(big.Int).Set(&v.den))
}

// Dec returns v - 1.
func (v Value) Dec() Value {
	return makeValue(new(big.Int).Sub(&v.num, &v.den), new(big.Int).Set(&v.den))
}

// PowInt returns v raised to an integer power.
// Components are raised independently, negative powers invert the result.
func (v Value) PowInt(exp int) Value {
	switch exp {
	case 0:
		return One
	case 1:
		return v
	case -1:
		return v.Inverse()
	case 2, 3:
		r := v.Mul(v)
		if exp == 3 {
			r = r.Mul(v)
		}
		return r
	case -2, -3:
		return v.PowInt(-exp).Inverse()
	}
	if exp < 0 {
		return v.Inverse().PowInt(-exp)
	}
	e := big.NewInt(int64(exp))
	num := new(big.Int).Exp(&v.num, e, nil)
	den := new(big.Int).Exp(&v.den, e, nil)
	return makeValue(num, den)
}

// LeftShift returns v * base^count. A negative count shifts right.
func (v Value) LeftShift(count int, base int64) Value {
	if !v.IsFinite() {
		return v
	}
	if count < 0 {
		return v.RightShift(-count, base)
	}
	p := mathutil.PowBig(base, count)
	return makeValue(new(big.Int).Mul(&v.num, p), new(big.Int).Set(&v.den))
}

// RightShift returns v / base^count. A negative count shifts left.
func (v Value) RightShift(count int, base int64) Value {
	if !v.IsFinite() {
		return v
	}
	if count < 0 {
		return v.LeftShift(-count, base)
	}
	p := mathutil.PowBig(base, count)
	return makeValue(new(big.Int).Set(&v.num), new(big.Int).Mul(&v.den, p))
}

// WholePart returns the integer part of v, truncated toward zero.
func (v Value) WholePart() Value {
	return v.Truncate()
}

// FractionalPart returns v - WholePart(v). The result has v's sign:
// FractionalPart of -1.25 is -0.25.
func (v Value) FractionalPart() Value {
	if !v.IsFinite() {
		return v
	}
	return v.Sub(v.Truncate())
}

// Truncate rounds v toward zero to an integer.
func (v Value) Truncate() Value {
	if !v.IsFinite() {
		return v
	}
	return makeValue(new(big.Int).Quo(&v.num, &v.den), big.NewInt(1))
}

// Floor rounds v toward negative infinity to an integer.
func (v Value) Floor() Value {
	if !v.IsFinite() {
		return v
	}
	s := v.SimplifySigns()
	// big.Int.Div floors for a positive divisor.
	return makeValue(new(big.Int).Div(&s.num, &s.den), big.NewInt(1))
}

// Ceil rounds v toward positive infinity to an integer.
func (v Value) Ceil() Value {
	if !v.IsFinite() {
		return v
	}
	return v.Neg().Floor().Neg()
}

// Round rounds v to an integer according to mode.
// It panics for a rounding mode it does not implement.
func (v Value) Round(mode RoundingMode) Value {
	if !v.IsFinite() {
		return v
	}
	switch mode {
	case ToZero:
		return v.Truncate()
	case ToPositiveInfinity:
		return v.Ceil()
	case ToNegativeInfinity:
		return v.Floor()
	case ToEven, AwayFromZero:
	default:
		panic(fmt.Sprintf("bigreal: unsupported rounding mode %d", mode))
	}
	neg := v.Sign() < 0
	s := v.Abs().SimplifySigns()
	q, r := new(big.Int).QuoRem(&s.num, &s.den, new(big.Int))
	// compare the fractional part against 1/2: 2*r vs den
	r.Lsh(r, 1)
	switch c := r.Cmp(&s.den); {
	case c > 0:
		q.Add(q, bigOne)
	case c == 0:
		// a tie: away from zero, then pull back to even if required
		q.Add(q, bigOne)
		if mode == ToEven && q.Bit(0) == 1 {
			q.Sub(q, bigOne)
		}
	}
	if neg {
		q.Neg(q)
	}
	return makeValue(q, big.NewInt(1))
}

// RoundTo rounds v to the given number of decimal places according to mode.
// A negative decimals rounds to tens, hundreds, and so on:
// RoundTo(-1, ...) of 12.34 is 10.
func (v Value) RoundTo(decimals int, mode RoundingMode) Value {
	if !v.IsFinite() {
		return v
	}
	p := mathutil.Pow10Big(mathutil.AbsInt(decimals))
	scale := FromBigInt(p)
	if decimals < 0 {
		scale = scale.Inverse()
	}
	return v.Mul(scale).Round(mode).Div(scale)
}
