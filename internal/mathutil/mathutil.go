package mathutil

import (
	"math/big"
)

var (
	bigTen = big.NewInt(10)

	// small powers of ten are requested constantly by the formatter
	// and the rounding code, so they are precomputed once.
	pow10Cache = func() []*big.Int {
		cache := make([]*big.Int, 32)
		p := big.NewInt(1)
		for i := range cache {
			cache[i] = new(big.Int).Set(p)
			p.Mul(p, bigTen)
		}
		return cache
	}()
)

// Pow10Big returns 10^pow as a big integer.
// The result is always a fresh value owned by the caller.
// Negative powers are not representable as integers, so pow must be >= 0.
func Pow10Big(pow int) *big.Int {
	if pow < 0 {
		panic("mathutil: negative power of ten")
	}
	if pow < len(pow10Cache) {
		return new(big.Int).Set(pow10Cache[pow])
	}
	return new(big.Int).Exp(bigTen, big.NewInt(int64(pow)), nil)
}

// PowBig returns base^pow for pow >= 0.
func PowBig(base int64, pow int) *big.Int {
	if pow < 0 {
		panic("mathutil: negative power")
	}
	return new(big.Int).Exp(big.NewInt(base), big.NewInt(int64(pow)), nil)
}

func AbsInt(val int) int {
	if val < 0 {
		return -val
	}
	return val
}
