// Copyright 2026 Aleksandr Demakin. All rights reserved.

package bigreal

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"github.com/avdva/bigreal/internal/mathutil"
)

const (
	// decimal digits used by String, enough for any float64
	// and for round-tripping the cached constants.
	defaultStringDecimals = 50

	// precision used to evaluate a non-integral exponent found while
	// parsing, see FromStringWith.
	parseExpDecimals = 50
)

// Symbols carries culture-specific number symbols used by parsing
// and formatting.
type Symbols struct {
	// Decimal is the decimal separator, "." in DefaultSymbols.
	Decimal string
	// NaN is the not-a-number symbol.
	NaN string
	// Inf is the infinity symbol, written with a leading '-' when negative.
	Inf string
}

// DefaultSymbols is used by FromString, String, and StringFixed.
var DefaultSymbols = Symbols{Decimal: ".", NaN: "NaN", Inf: "Infinity"}

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func addPosErrorOffset(err error, offset int) error {
	var pe *posError
	if !errors.As(err, &pe) {
		return err
	}
	pe.pos += offset
	return pe
}

// FromString parses a decimal string into a value using DefaultSymbols.
//
// The accepted form is an optional sign, a digit run with an optional
// decimal separator, and an optional exponent part introduced by 'e' or 'E'.
// The exponent is itself parsed as a value, so it may carry a fractional
// part: "2e2.5" is legal and equals 2*10^2.5, evaluated to parseExpDecimals
// digits. Integral exponents scale the result exactly.
// The NaN and infinity symbols are matched case-insensitively.
func FromString(s string) (Value, error) {
	return FromStringWith(s, DefaultSymbols)
}

// FromStringWith parses a decimal string using the given symbols.
func FromStringWith(s string, sym Symbols) (Value, error) {
	s, offset, neg, err := prepareString(s)
	if err != nil {
		return NaN, err
	}
	switch {
	case strings.EqualFold(s, sym.NaN):
		return NaN, nil
	case strings.EqualFold(s, sym.Inf):
		if neg {
			return NegInf, nil
		}
		return Inf, nil
	}
	v, err := parseNumber(s, sym)
	if err != nil {
		// +1 to start indices from 1.
		return NaN, fmt.Errorf("parsing failed: %w", addPosErrorOffset(err, offset+1))
	}
	if neg {
		v = v.Neg()
	}
	return v, nil
}

// MustFromString is like FromString, but panics on a malformed input.
func MustFromString(s string) Value {
	v, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// mustParseDecimal parses an unsigned digit string without an exponent
// part. The package constants initialize through it: the full parser
// evaluates fractional exponents with Exp, and Exp reads the cached E,
// which the compiler would reject as an initialization cycle.
func mustParseDecimal(s string) Value {
	v, err := parseMantissa(s, DefaultSymbols)
	if err != nil {
		panic(err)
	}
	return v
}

// TryFromString converts any parse failure into ok == false,
// returning the type's default value, NaN.
func TryFromString(s string) (v Value, ok bool) {
	v, err := FromString(s)
	if err != nil {
		return NaN, false
	}
	return v, true
}

func prepareString(s string) (prepared string, offset int, neg bool, err error) {
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset = len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", 0, false, fmt.Errorf("empty input")
	}
	switch s[0] {
	case '-':
		neg = true
		fallthrough
	case '+':
		offset++
		s = s[1:]
	}
	if len(s) == 0 {
		return "", 0, false, fmt.Errorf("empty input")
	}
	return s, offset, neg, nil
}

func parseNumber(s string, sym Symbols) (Value, error) {
	mant := s
	var expStr string
	hasExp := false
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mant, expStr, hasExp = s[:i], s[i+1:], true
		if len(expStr) == 0 {
			return NaN, newPosError("missing exponent", i+1)
		}
	}
	v, err := parseMantissa(mant, sym)
	if err != nil {
		return NaN, err
	}
	if !hasExp {
		return v, nil
	}
	exp, err := FromStringWith(expStr, sym)
	if err != nil {
		return NaN, fmt.Errorf("bad exponent: %w", err)
	}
	return scaleByPow10(v, exp)
}

func parseMantissa(s string, sym Symbols) (Value, error) {
	delimPos := -1
	var b strings.Builder
	for i := 0; i < len(s); {
		if strings.HasPrefix(s[i:], sym.Decimal) {
			if delimPos >= 0 {
				return NaN, newPosError("unexpected delimiter", i)
			}
			delimPos = b.Len()
			i += len(sym.Decimal)
			continue
		}
		c := s[i]
		if c < '0' || c > '9' {
			return NaN, newPosError(fmt.Sprintf("unexpected symbol %q", rune(c)), i)
		}
		b.WriteByte(c)
		i++
	}
	digits := b.String()
	if len(digits) == 0 {
		return NaN, fmt.Errorf("empty input")
	}
	num, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return NaN, fmt.Errorf("bad digit run %q", digits)
	}
	den := big.NewInt(1)
	if delimPos >= 0 {
		den = mathutil.Pow10Big(len(digits)-delimPos)
	}
	return makeValue(num, den), nil
}

// scaleByPow10 multiplies v by 10^exp. An integral exponent scales the
// components exactly; a fractional one goes through the iterative engine.
func scaleByPow10(v Value, exp Value) (Value, error) {
	if !exp.IsFinite() {
		return NaN, fmt.Errorf("bad exponent: %w", ErrRange)
	}
	if exp.IsInteger() {
		e, err := exp.Int()
		if err != nil {
			return NaN, fmt.Errorf("bad exponent: %w", ErrRange)
		}
		if e >= 0 {
			return v.LeftShift(e, 10), nil
		}
		return v.RightShift(-e, 10), nil
	}
	return v.Mul(Ten.Pow(exp, parseExpDecimals)), nil
}

// String formats the value with up to defaultStringDecimals decimal places,
// trailing zeros trimmed.
func (v Value) String() string {
	return v.Format(defaultStringDecimals, DefaultSymbols, false)
}

// GoString returns a debug representation with the raw components.
func (v Value) GoString() string {
	return v.String() + fmt.Sprintf(" {%v, %v}", v.num.String(), v.den.String())
}

// StringFixed formats the value with up to decimals decimal places
// using DefaultSymbols.
func (v Value) StringFixed(decimals int) string {
	return v.Format(decimals, DefaultSymbols, false)
}

// Format renders the value in decimal notation.
// The fractional part is truncated after decimals digits and trailing
// zeros are trimmed. padDecimal appends ".0" to integral results.
// Non-finite values render as the Symbols' NaN and infinity symbols.
func (v Value) Format(decimals int, sym Symbols, padDecimal bool) string {
	switch {
	case v.IsNaN():
		return sym.NaN
	case v.IsPositiveInf():
		return sym.Inf
	case v.IsNegativeInf():
		return "-" + sym.Inf
	}
	if decimals < 0 {
		decimals = 0
	}
	num := new(big.Int).Abs(&v.num)
	den := new(big.Int).Abs(&v.den)
	whole, rem := new(big.Int).QuoRem(num, den, new(big.Int))

	var b strings.Builder
	if v.Sign() < 0 {
		// the whole part alone can be zero for a negative value, "-0.5"
		b.WriteByte('-')
	}
	b.WriteString(whole.String())
	frac := fracDigits(rem, den, decimals)
	if len(frac) == 0 {
		if padDecimal {
			b.WriteString(sym.Decimal)
			b.WriteByte('0')
		}
		return b.String()
	}
	b.WriteString(sym.Decimal)
	b.WriteString(frac)
	return b.String()
}

// fracDigits extracts exactly decimals fractional digits of rem/den
// and trims the trailing zeros. rem and den must be non-negative.
func fracDigits(rem, den *big.Int, decimals int) string {
	if rem.Sign() == 0 || decimals == 0 {
		return ""
	}
	scaled := new(big.Int).Mul(rem, mathutil.Pow10Big(decimals))
	scaled.Quo(scaled, den)
	digits := scaled.String()
	if pad := decimals - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	return strings.TrimRight(digits, "0")
}

// RationalString returns the GCD-reduced "numerator / denominator" form.
func (v Value) RationalString() string {
	s := v.Simplify()
	return s.num.String() + " / " + s.den.String()
}
