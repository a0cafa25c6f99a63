package bigreal

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/avdva/bigreal/internal/mathutil"
)

// FromDecimal converts a shopspring decimal exactly:
// coefficient*10^exp becomes a rational with a power-of-ten denominator.
func FromDecimal(d decimal.Decimal) Value {
	coef := new(big.Int).Set(d.Coefficient())
	exp := int(d.Exponent())
	den := big.NewInt(1)
	if exp >= 0 {
		coef.Mul(coef, mathutil.Pow10Big(exp))
	} else {
		den = mathutil.Pow10Big(-exp)
	}
	return makeValue(coef, den)
}

// Decimal converts the value to a shopspring decimal with the given
// number of decimal places (negative values round to tens, hundreds,
// and so on), rounding to even. Non-finite values are not representable
// and return ErrRange.
func (v Value) Decimal(decimals int32) (decimal.Decimal, error) {
	if !v.IsFinite() {
		return decimal.Decimal{}, fmt.Errorf("decimal: %w", ErrRange)
	}
	// after rounding to decimals places, scaling by 10^decimals leaves
	// an exact integer coefficient
	coef, err := v.RoundTo(int(decimals), ToEven).LeftShift(int(decimals), 10).BigInt()
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("decimal: %w", err)
	}
	return decimal.NewFromBigInt(coef, -decimals), nil
}
