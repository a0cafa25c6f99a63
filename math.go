// Copyright 2026 Aleksandr Demakin. All rights reserved.

package bigreal

import (
	"fmt"
	"math"
	"math/big"

	"github.com/avdva/bigreal/internal/mathutil"
)

// Every function here takes a decimals argument: the number of correct
// decimal digits requested. It converts to the convergence threshold
// epsilon = 1/10^decimals. When the operands fit a float64 and the
// requested precision does not exceed the ~15 reliable digits of that
// format, the result is computed in double precision and rounded
// (the fast path); otherwise the exact rational series run.

// maxFastDecimals is the largest precision served by the float64 fast path.
const maxFastDecimals = 15

// seriesGuard is the number of extra digits carried by intermediate
// computations before the final rounding.
const seriesGuard = 4

func epsilonFor(decimals int) Value {
	return makeValue(big.NewInt(1), mathutil.Pow10Big(decimals))
}

// floatInRange returns v as a float64 if v is finite and within the
// double range.
func (v Value) floatInRange() (float64, bool) {
	if !v.IsFinite() {
		return 0, false
	}
	f := v.Float64()
	if math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// roundedFromFloat converts a fast-path result. A non-finite result
// means the double computation overflowed and the exact path must run.
func roundedFromFloat(f float64, decimals int) (Value, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NaN, false
	}
	return FromFloat64(f).RoundTo(decimals, ToEven), true
}

func (v Value) fastPath(decimals int, fn func(float64) float64) (Value, bool) {
	if decimals > maxFastDecimals {
		return NaN, false
	}
	f, ok := v.floatInRange()
	if !ok {
		return NaN, false
	}
	return roundedFromFloat(fn(f), decimals)
}

// Exp returns e raised to the power v, correct to decimals digits.
func (v Value) Exp(decimals int) Value {
	switch {
	case v.IsNaN():
		return NaN
	case v.IsPositiveInf():
		return Inf
	case v.IsNegativeInf():
		return Zero
	case v.IsZero():
		return One
	}
	if v.Sign() < 0 {
		return One.Div(v.Neg().Exp(decimals+seriesGuard)).RoundTo(decimals, ToEven)
	}
	if v.IsOne() && decimals <= cachedConstDecimals {
		return E.RoundTo(decimals, ToEven)
	}
	if r, ok := v.fastPath(decimals, math.Exp); ok {
		return r
	}
	// Maclaurin series: sum of v^k/k!
	eps := epsilonFor(decimals+2)
	sum, term := One, One
	for k := int64(1); ; k++ {
		term = term.Mul(v).Div(FromInt64(k)).Simplify()
		sum = sum.Add(term).Simplify()
		if term.Abs().Cmp(eps) <= 0 {
			break
		}
	}
	return sum.RoundTo(decimals, ToEven)
}

// Log returns the natural logarithm of v, correct to decimals digits.
// Log of a negative value is NaN, Log(0) is -Inf.
func (v Value) Log(decimals int) Value {
	switch {
	case v.IsNaN() || v.Sign() < 0:
		return NaN
	case v.IsPositiveInf():
		return Inf
	case v.IsZero():
		return NegInf
	case v.IsOne():
		return Zero
	}
	if r, ok := v.fastPath(decimals, math.Log); ok {
		return r
	}
	inner := decimals + seriesGuard
	// bring the argument into [3/4, 3/2) counting powers of two,
	// the artanh series converges slowly far from 1
	x, m := v.SimplifySigns(), 0
	if shift := x.num.BitLen() - x.den.BitLen(); shift != 0 {
		x = x.RightShift(shift, 2).Simplify()
		m += shift
	}
	for x.Cmp(threeHalves) >= 0 {
		x = x.RightShift(1, 2)
		m++
	}
	for x.Cmp(threeQuarters) < 0 {
		x = x.LeftShift(1, 2)
		m--
	}
	res := logSeries(x, inner)
	if m != 0 {
		res = res.Add(FromInt(m).Mul(logSeries(two, inner)))
	}
	return res.RoundTo(decimals, ToEven)
}

// logSeries computes ln(x) as 2*artanh((x-1)/(x+1)), summing the series
// until successive partial sums differ by no more than epsilon.
func logSeries(x Value, decimals int) Value {
	eps := epsilonFor(decimals)
	z := x.Dec().Div(x.Inc()).Simplify()
	z2 := z.Mul(z).Simplify()
	sum, p := z, z
	for k := int64(3); ; k += 2 {
		p = p.Mul(z2).Simplify()
		term := p.Div(FromInt64(k))
		sum = sum.Add(term).Simplify()
		if term.Abs().Cmp(eps) <= 0 {
			break
		}
	}
	return sum.Add(sum)
}

// Log2 returns the base-2 logarithm of v.
func (v Value) Log2(decimals int) Value {
	return v.LogBase(two, decimals)
}

// Log10 returns the base-10 logarithm of v.
func (v Value) Log10(decimals int) Value {
	return v.LogBase(Ten, decimals)
}

// LogBase returns the logarithm of v in the given base,
// computed as Log(v)/Log(base).
func (v Value) LogBase(base Value, decimals int) Value {
	inner := decimals + seriesGuard
	return v.Log(inner).Div(base.Log(inner)).RoundTo(decimals, ToEven)
}

// Sqrt returns the square root of v. Negative arguments yield NaN.
func (v Value) Sqrt(decimals int) Value {
	return v.RootN(2, decimals)
}

// Cbrt returns the cube root of v.
func (v Value) Cbrt(decimals int) Value {
	return v.RootN(3, decimals)
}

// RootN returns the n-th root of v via the identity
// root_n(x) = e^(ln(x)/n). A negative argument is a domain error
// yielding NaN, a negative order inverts the result.
func (v Value) RootN(n, decimals int) Value {
	switch {
	case v.IsNaN() || n == 0:
		return NaN
	case v.Sign() < 0:
		return NaN
	case n < 0:
		return One.Div(v.RootN(-n, decimals+2)).RoundTo(decimals, ToEven)
	case v.IsPositiveInf():
		return Inf
	case v.IsZero():
		return Zero
	case v.IsOne() || n == 1:
		return v
	}
	if decimals <= maxFastDecimals {
		if f, ok := v.floatInRange(); ok {
			var r float64
			switch n {
			case 2:
				r = math.Sqrt(f)
			case 3:
				r = math.Cbrt(f)
			default:
				r = math.Pow(f, 1/float64(n))
			}
			if res, ok := roundedFromFloat(r, decimals); ok {
				return res
			}
		}
	}
	inner := decimals + wholeDigits(v)/n + seriesGuard
	return v.Log(inner).Div(FromInt(n)).Exp(inner).RoundTo(decimals, ToEven)
}

// wholeDigits estimates the decimal length of v's whole part; the inner
// precision of Exp/Log compositions is widened by it so that the
// requested fractional digits survive the exponentiation.
func wholeDigits(v Value) int {
	bits := v.num.BitLen() - v.den.BitLen()
	if bits <= 0 {
		return 0
	}
	return bits*31/100 + 1
}

// Pow returns v raised to the power exp, correct to decimals digits.
// Integral exponents are computed exactly. A fractional exponent of a
// negative value is NaN.
func (v Value) Pow(exp Value, decimals int) Value {
	switch {
	case v.IsNaN() || exp.IsNaN():
		return NaN
	case exp.IsZero():
		return One
	case exp.IsInf():
		c := v.Abs().Cmp(One)
		if c == 0 {
			return One
		}
		if (c > 0) == exp.IsPositiveInf() {
			return Inf
		}
		return Zero
	}
	if exp.IsInteger() {
		if e, err := exp.Int(); err == nil {
			return v.PowInt(e)
		}
	}
	if v.Sign() < 0 {
		return NaN
	}
	inner := decimals + seriesGuard
	return exp.Mul(v.Log(inner)).Exp(inner).RoundTo(decimals, ToEven)
}

// Hypot returns sqrt(x^2 + y^2).
func Hypot(x, y Value, decimals int) Value {
	if x.IsNaN() || y.IsNaN() {
		return NaN
	}
	if x.IsInf() || y.IsInf() {
		return Inf
	}
	return x.Mul(x).Add(y.Mul(y)).Sqrt(decimals)
}

// Lerp linearly interpolates between a and b: a + (b-a)*t. Exact.
func Lerp(a, b, t Value) Value {
	return a.Add(b.Sub(a).Mul(t))
}

// InverseLerp returns the t for which Lerp(a, b, t) == v: (v-a)/(b-a).
func InverseLerp(a, b, v Value) Value {
	return v.Sub(a).Div(b.Sub(a))
}

// Sin returns the sine of v radians via the Maclaurin series.
// The argument is not range-reduced. Non-finite input yields NaN.
func (v Value) Sin(decimals int) Value {
	if !v.IsFinite() {
		return NaN
	}
	if v.IsZero() {
		return Zero
	}
	if r, ok := v.fastPath(decimals, math.Sin); ok {
		return r
	}
	eps := epsilonFor(decimals+2)
	x2 := v.Mul(v).Simplify()
	sum, term := v, v
	for k := int64(1); ; k++ {
		term = term.Mul(x2).Div(FromInt64(2*k*(2*k+1))).Neg().Simplify()
		sum = sum.Add(term).Simplify()
		if term.Abs().Cmp(eps) <= 0 {
			break
		}
	}
	return sum.RoundTo(decimals, ToEven)
}

// Cos returns the cosine of v radians. Non-finite input yields NaN.
func (v Value) Cos(decimals int) Value {
	if !v.IsFinite() {
		return NaN
	}
	if v.IsZero() {
		return One
	}
	if r, ok := v.fastPath(decimals, math.Cos); ok {
		return r
	}
	eps := epsilonFor(decimals+2)
	x2 := v.Mul(v).Simplify()
	sum, term := One, One
	for k := int64(1); ; k++ {
		term = term.Mul(x2).Div(FromInt64((2*k-1)*2*k)).Neg().Simplify()
		sum = sum.Add(term).Simplify()
		if term.Abs().Cmp(eps) <= 0 {
			break
		}
	}
	return sum.RoundTo(decimals, ToEven)
}

// Tan returns sin(v)/cos(v). The result near the poles of the tangent
// is undefined: the ratio grows without a guard there.
func (v Value) Tan(decimals int) Value {
	if !v.IsFinite() {
		return NaN
	}
	inner := decimals + seriesGuard
	return v.Sin(inner).Div(v.Cos(inner)).RoundTo(decimals, ToEven)
}

// Sec returns 1/cos(v).
func (v Value) Sec(decimals int) Value {
	if !v.IsFinite() {
		return NaN
	}
	inner := decimals + seriesGuard
	return One.Div(v.Cos(inner)).RoundTo(decimals, ToEven)
}

// Cosec returns 1/sin(v).
func (v Value) Cosec(decimals int) Value {
	if !v.IsFinite() {
		return NaN
	}
	inner := decimals + seriesGuard
	return One.Div(v.Sin(inner)).RoundTo(decimals, ToEven)
}

// Cot returns cos(v)/sin(v).
func (v Value) Cot(decimals int) Value {
	if !v.IsFinite() {
		return NaN
	}
	inner := decimals + seriesGuard
	return v.Cos(inner).Div(v.Sin(inner)).RoundTo(decimals, ToEven)
}

// Asin returns the arcsine of v. Arguments outside [-1, 1] are a domain
// error: the result is NaN and the error is ErrDomain.
func (v Value) Asin(decimals int) (Value, error) {
	if v.IsNaN() {
		return NaN, nil
	}
	if v.Abs().Cmp(One) > 0 {
		return NaN, fmt.Errorf("asin: %w", ErrDomain)
	}
	switch {
	case v.Eq(One):
		return halfPi(decimals).RoundTo(decimals, ToEven), nil
	case v.Eq(NegativeOne):
		return halfPi(decimals).Neg().RoundTo(decimals, ToEven), nil
	}
	inner := decimals + seriesGuard
	s := One.Add(v).Mul(One.Sub(v)).Sqrt(inner)
	return Atan2(v, s, inner).RoundTo(decimals, ToEven), nil
}

// Acos returns the arccosine of v. Arguments outside [-1, 1] are a
// domain error: the result is NaN and the error is ErrDomain.
func (v Value) Acos(decimals int) (Value, error) {
	if v.IsNaN() {
		return NaN, nil
	}
	if v.Abs().Cmp(One) > 0 {
		return NaN, fmt.Errorf("acos: %w", ErrDomain)
	}
	switch {
	case v.Eq(One):
		return Zero, nil
	case v.Eq(NegativeOne):
		return piTo(decimals+2).RoundTo(decimals, ToEven), nil
	}
	inner := decimals + seriesGuard
	s := One.Add(v).Mul(One.Sub(v)).Sqrt(inner)
	return Atan2(s, v, inner).RoundTo(decimals, ToEven), nil
}

// Atan returns the arctangent of v via the Maclaurin series.
// Arguments beyond the unit interval reduce through
// atan(x) = pi/2 - atan(1/x), where the series converges quickly.
func (v Value) Atan(decimals int) Value {
	switch {
	case v.IsNaN():
		return NaN
	case v.IsPositiveInf():
		return halfPi(decimals).RoundTo(decimals, ToEven)
	case v.IsNegativeInf():
		return halfPi(decimals).Neg().RoundTo(decimals, ToEven)
	case v.IsZero():
		return Zero
	}
	if v.Sign() < 0 {
		return v.Neg().Atan(decimals+2).Neg().RoundTo(decimals, ToEven)
	}
	if r, ok := v.fastPath(decimals, math.Atan); ok {
		return r
	}
	switch c := v.Cmp(One); {
	case c == 0:
		return piTo(decimals+2).Div(four).RoundTo(decimals, ToEven)
	case c > 0:
		inner := decimals + seriesGuard
		return halfPi(inner).Sub(v.Inverse().Atan(inner)).RoundTo(decimals, ToEven)
	}
	eps := epsilonFor(decimals+2)
	x2 := v.Mul(v).Simplify()
	sum, p := v, v
	for k := int64(3); ; k += 2 {
		p = p.Mul(x2).Neg().Simplify()
		term := p.Div(FromInt64(k))
		sum = sum.Add(term).Simplify()
		if term.Abs().Cmp(eps) <= 0 {
			break
		}
	}
	return sum.RoundTo(decimals, ToEven)
}

// Atan2 returns the angle of the point (x, y), a full quadrant case
// analysis over Atan. Atan2(0, 0) is NaN.
func Atan2(y, x Value, decimals int) Value {
	if y.IsNaN() || x.IsNaN() || (y.IsInf() && x.IsInf()) {
		return NaN
	}
	switch {
	case y.IsInf():
		r := halfPi(decimals)
		if y.IsNegativeInf() {
			r = r.Neg()
		}
		return r.RoundTo(decimals, ToEven)
	case x.IsPositiveInf():
		return Zero
	case x.IsNegativeInf():
		r := piTo(decimals+2)
		if y.Sign() < 0 {
			r = r.Neg()
		}
		return r.RoundTo(decimals, ToEven)
	}
	inner := decimals + seriesGuard
	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs > 0:
		return y.Div(x).Atan(inner).RoundTo(decimals, ToEven)
	case xs < 0 && ys >= 0:
		return y.Div(x).Atan(inner).Add(piTo(inner)).RoundTo(decimals, ToEven)
	case xs < 0:
		return y.Div(x).Atan(inner).Sub(piTo(inner)).RoundTo(decimals, ToEven)
	case ys > 0:
		return halfPi(decimals).RoundTo(decimals, ToEven)
	case ys < 0:
		return halfPi(decimals).Neg().RoundTo(decimals, ToEven)
	}
	return NaN
}

var (
	two           = FromInt64(2)
	four          = FromInt64(4)
	threeHalves   = New(3, 2)
	threeQuarters = New(3, 4)
)

// piTo returns pi to at least the requested number of correct decimals,
// from the cached constant when it suffices.
func piTo(decimals int) Value {
	if decimals <= cachedConstDecimals {
		return Pi
	}
	return CalculatePi(decimals)
}

func halfPi(decimals int) Value {
	return piTo(decimals+2).Mul(OneHalf)
}
