package bigreal

import (
	"math"
	"math/big"
)

// floatInfo describes an IEEE-754 binary interchange format.
type floatInfo struct {
	mantbits uint
	expbits  uint
	bias     int
}

var (
	float16info = floatInfo{10, 5, -15}
	float32info = floatInfo{23, 8, -127}
	float64info = floatInfo{52, 11, -1023}
)

// FromFloat64 decomposes the bit pattern of f into an exact rational.
// The conversion never goes through decimal text, so every finite
// float64, subnormals included, round-trips through Float64 bit-for-bit.
func FromFloat64(f float64) Value {
	return fromFloatBits(math.Float64bits(f), &float64info)
}

// FromFloat32 is the float32 analogue of FromFloat64.
func FromFloat32(f float32) Value {
	return fromFloatBits(uint64(math.Float32bits(f)), &float32info)
}

// FromFloat16Bits converts the bit pattern of an IEEE half-precision
// number. Go has no float16 type, so the raw bits are taken directly.
func FromFloat16Bits(bits uint16) Value {
	return fromFloatBits(uint64(bits), &float16info)
}

func fromFloatBits(bits uint64, flt *floatInfo) Value {
	neg := bits>>(flt.expbits+flt.mantbits) != 0
	exp := int(bits>>flt.mantbits) & (1<<flt.expbits - 1)
	mant := bits & (uint64(1)<<flt.mantbits - 1)

	switch exp {
	case 1<<flt.expbits - 1:
		if mant != 0 {
			return NaN
		}
		if neg {
			return NegInf
		}
		return Inf
	case 0:
		// zero or subnormal: no implicit leading bit,
		// the exponent acts as if it were 1
		if mant == 0 {
			return Zero
		}
		exp++
	default:
		mant |= uint64(1) << flt.mantbits
	}
	exp += flt.bias - int(flt.mantbits)

	num := new(big.Int).SetUint64(mant)
	if neg {
		num.Neg(num)
	}
	den := big.NewInt(1)
	if exp >= 0 {
		num.Lsh(num, uint(exp))
	} else {
		den.Lsh(den, uint(-exp))
	}
	return makeValue(num, den)
}

// Float64 returns the nearest float64 to v.
// Sentinels map to the IEEE NaN and infinities; finite values too large
// for the format overflow to an infinity.
func (v Value) Float64() float64 {
	switch {
	case v.IsNaN():
		return math.NaN()
	case v.IsPositiveInf():
		return math.Inf(1)
	case v.IsNegativeInf():
		return math.Inf(-1)
	}
	f, _ := new(big.Rat).SetFrac(&v.num, &v.den).Float64()
	return f
}

// Float32 returns the nearest float32 to v.
func (v Value) Float32() float32 {
	switch {
	case v.IsNaN():
		return float32(math.NaN())
	case v.IsPositiveInf():
		return float32(math.Inf(1))
	case v.IsNegativeInf():
		return float32(math.Inf(-1))
	}
	f, _ := new(big.Rat).SetFrac(&v.num, &v.den).Float32()
	return f
}

// Float16Bits returns the bit pattern of the nearest IEEE half-precision
// number, the counterpart of FromFloat16Bits. The conversion goes through
// float32: with 24 significand bits against the half's 11, the second
// rounding cannot change the correctly rounded result.
func (v Value) Float16Bits() uint16 {
	switch {
	case v.IsNaN():
		return 0x7e00
	case v.IsPositiveInf():
		return 0x7c00
	case v.IsNegativeInf():
		return 0xfc00
	}
	return float16FromFloat32(v.Float32())
}

// float16FromFloat32 narrows a float32 to the half bit pattern,
// rounding to nearest with ties to even.
func float16FromFloat32(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16(bits>>16) & 0x8000
	exp := int(bits>>23&0xff) - 127
	mant := bits & (1<<23 - 1)
	switch {
	case exp == 128:
		if mant != 0 {
			return sign | 0x7e00
		}
		return sign | 0x7c00
	case exp > 15:
		return sign | 0x7c00
	case exp >= -14:
		// normal: 13 of the 24 significand bits are dropped;
		// a mantissa carry rolls into the exponent field, and past the
		// largest exponent it lands exactly on the infinity encoding
		m := mant | 1<<23
		r := m >> 13
		if rem := m & (1<<13 - 1); rem > 1<<12 || rem == 1<<12 && r&1 == 1 {
			r++
		}
		return sign | uint16(exp+14)<<10 + uint16(r)
	case exp >= -25:
		// half subnormal: shift the full significand down to units
		// of 2^-24, rounding the dropped bits the same way
		m := mant | 1<<23
		shift := uint(-exp - 1)
		r := uint16(m >> shift)
		half := uint32(1) << (shift - 1)
		if rem := m & (1<<shift - 1); rem > half || rem == half && r&1 == 1 {
			r++
		}
		return sign | r
	}
	// too small for the smallest subnormal
	return sign
}
