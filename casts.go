package bigreal

import (
	"fmt"
	"math"
	"math/big"
)

// Narrowing integer conversions truncate toward zero and return ErrRange
// if the truncated value does not fit the target type, or if the value
// is not finite.

// BigInt returns the value truncated to a big integer.
func (v Value) BigInt() (*big.Int, error) {
	if !v.IsFinite() {
		return nil, fmt.Errorf("bigint: %w", ErrRange)
	}
	return new(big.Int).Quo(&v.num, &v.den), nil
}

// Int64 returns the value truncated to an int64.
func (v Value) Int64() (int64, error) {
	i, err := v.BigInt()
	if err != nil {
		return 0, fmt.Errorf("int64: %w", ErrRange)
	}
	if !i.IsInt64() {
		return 0, fmt.Errorf("int64: %w", ErrRange)
	}
	return i.Int64(), nil
}

// Uint64 returns the value truncated to a uint64.
func (v Value) Uint64() (uint64, error) {
	i, err := v.BigInt()
	if err != nil {
		return 0, fmt.Errorf("uint64: %w", ErrRange)
	}
	if !i.IsUint64() {
		return 0, fmt.Errorf("uint64: %w", ErrRange)
	}
	return i.Uint64(), nil
}

// Int returns the value truncated to an int.
func (v Value) Int() (int, error) {
	i, err := v.Int64()
	if err != nil {
		return 0, fmt.Errorf("int: %w", ErrRange)
	}
	if int64(int(i)) != i {
		return 0, fmt.Errorf("int: %w", ErrRange)
	}
	return int(i), nil
}

// Int32 returns the value truncated to an int32.
func (v Value) Int32() (int32, error) {
	i, err := v.Int64()
	if err != nil || i < math.MinInt32 || i > math.MaxInt32 {
		return 0, fmt.Errorf("int32: %w", ErrRange)
	}
	return int32(i), nil
}

// Int16 returns the value truncated to an int16.
func (v Value) Int16() (int16, error) {
	i, err := v.Int64()
	if err != nil || i < math.MinInt16 || i > math.MaxInt16 {
		return 0, fmt.Errorf("int16: %w", ErrRange)
	}
	return int16(i), nil
}

// Int8 returns the value truncated to an int8.
func (v Value) Int8() (int8, error) {
	i, err := v.Int64()
	if err != nil || i < math.MinInt8 || i > math.MaxInt8 {
		return 0, fmt.Errorf("int8: %w", ErrRange)
	}
	return int8(i), nil
}

// Uint32 returns the value truncated to a uint32.
func (v Value) Uint32() (uint32, error) {
	u, err := v.Uint64()
	if err != nil || u > math.MaxUint32 {
		return 0, fmt.Errorf("uint32: %w", ErrRange)
	}
	return uint32(u), nil
}

// Uint16 returns the value truncated to a uint16.
func (v Value) Uint16() (uint16, error) {
	u, err := v.Uint64()
	if err != nil || u > math.MaxUint16 {
		return 0, fmt.Errorf("uint16: %w", ErrRange)
	}
	return uint16(u), nil
}

// Uint8 returns the value truncated to a uint8.
func (v Value) Uint8() (uint8, error) {
	u, err := v.Uint64()
	if err != nil || u > math.MaxUint8 {
		return 0, fmt.Errorf("uint8: %w", ErrRange)
	}
	return uint8(u), nil
}
