package bigreal

import "math/big"

// classification for ordering: NaN sorts below everything,
// mirroring total-order comparison semantics.
const (
	classNaN = iota
	classNegInf
	classFinite
	classPosInf
)

func (v Value) class() int {
	switch {
	case v.IsNaN():
		return classNaN
	case v.IsNegativeInf():
		return classNegInf
	case v.IsPositiveInf():
		return classPosInf
	}
	return classFinite
}

// Cmp compares two values under a total order:
// NaN < -Inf < finite < +Inf, equal sentinels compare equal.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
//
// Note that Cmp(NaN, NaN) == 0 while the relational methods treat NaN
// as unordered; see Eq and Equal for the same split in equality.
func (v Value) Cmp(other Value) int {
	c1, c2 := v.class(), other.class()
	if c1 != classFinite || c2 != classFinite {
		switch {
		case c1 < c2:
			return -1
		case c1 > c2:
			return 1
		}
		return 0
	}
	// cross-multiply after normalizing the denominators' signs;
	// without the normalization a negative denominator flips the result.
	a, b := v.SimplifySigns(), other.SimplifySigns()
	l := new(big.Int).Mul(&a.num, &b.den)
	r := new(big.Int).Mul(&b.num, &a.den)
	return l.Cmp(r)
}

// Eq reports whether two values are structurally equal.
// Unlike the relational methods, NaN.Eq(NaN) is true,
// the way value-type equality differs from IEEE comparison.
func (v Value) Eq(other Value) bool {
	return v.Cmp(other) == 0
}

// Equal mirrors the == comparison of IEEE floating point: it is false
// whenever either operand is NaN, and true for equal numbers and
// same-signed infinities.
func (v Value) Equal(other Value) bool {
	if v.IsNaN() || other.IsNaN() {
		return false
	}
	return v.Cmp(other) == 0
}

// Less reports whether v < other. False if either operand is NaN.
func (v Value) Less(other Value) bool {
	if v.IsNaN() || other.IsNaN() {
		return false
	}
	return v.Cmp(other) < 0
}

// LessEqual reports whether v <= other. False if either operand is NaN.
func (v Value) LessEqual(other Value) bool {
	if v.IsNaN() || other.IsNaN() {
		return false
	}
	return v.Cmp(other) <= 0
}

// Greater reports whether v > other. False if either operand is NaN.
func (v Value) Greater(other Value) bool {
	if v.IsNaN() || other.IsNaN() {
		return false
	}
	return v.Cmp(other) > 0
}

// GreaterEqual reports whether v >= other. False if either operand is NaN.
func (v Value) GreaterEqual(other Value) bool {
	if v.IsNaN() || other.IsNaN() {
		return false
	}
	return v.Cmp(other) >= 0
}

// Max returns the larger of a and b, or NaN if either is NaN.
func Max(a, b Value) Value {
	if a.IsNaN() || b.IsNaN() {
		return NaN
	}
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// Min returns the smaller of a and b, or NaN if either is NaN.
func Min(a, b Value) Value {
	if a.IsNaN() || b.IsNaN() {
		return NaN
	}
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Clamp limits v to the [lo, hi] range, or returns NaN if any input is NaN.
func Clamp(v, lo, hi Value) Value {
	return Min(Max(v, lo), hi)
}
