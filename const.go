package bigreal

import (
	"math/big"

	"github.com/avdva/bigreal/internal/mathutil"
)

// cachedConstDecimals is the precision of the E, Pi, and Tau singletons.
// CalculateE, CalculatePi, and CalculateTau compute past it on demand.
const cachedConstDecimals = 100

const (
	eDigits = "2.7182818284590452353602874713526624977572470936999" +
		"595749669676277240766303535475945713821785251664274"
	piDigits = "3.1415926535897932384626433832795028841971693993751" +
		"058209749445923078164062862089986280348253421170679"
)

// CalculatePi computes pi to exactly decimals verified decimal digits
// with the Rabinowitz-Wagon spigot algorithm, independently of the
// cached Pi constant.
func CalculatePi(decimals int) Value {
	if decimals < 0 {
		decimals = 0
	}
	digits := piSpigot(decimals+1)
	num, _ := new(big.Int).SetString(string(digits), 10)
	return makeValue(num, mathutil.Pow10Big(decimals))
}

// CalculateTau computes 2*pi to decimals decimal digits.
func CalculateTau(decimals int) Value {
	if decimals < 0 {
		decimals = 0
	}
	p := CalculatePi(decimals+2)
	return p.Add(p).RoundTo(decimals, ToZero)
}

// CalculateE computes Euler's number to decimals decimal digits by
// summing the factorial series.
func CalculateE(decimals int) Value {
	if decimals < 0 {
		decimals = 0
	}
	eps := epsilonFor(decimals+4)
	sum, term := One, One
	for k := int64(1); ; k++ {
		term = term.Div(FromInt64(k)).Simplify()
		sum = sum.Add(term).Simplify()
		if term.Cmp(eps) <= 0 {
			break
		}
	}
	return sum.RoundTo(decimals, ToZero)
}

// piSpigot produces the first n decimal digits of pi, "31415...".
// A digit is emitted only once the algorithm has proven it cannot be
// changed by a carry, which is what makes the digits verified: runs of
// nines are held back until a non-nine settles them.
func piSpigot(n int) []byte {
	if n <= 0 {
		return nil
	}
	// the accumulator array sizes for a few digits more than requested,
	// so held-back nine runs at the cut can settle.
	const guard = 32
	m := n + guard
	ln := 10*m/3 + 1
	a := make([]uint64, ln)
	for i := range a {
		a[i] = 2
	}
	out := make([]byte, 0, n+2)
	predigit, nines := 0, 0
	for j := 0; j < m && len(out) < n+1; j++ {
		var q uint64
		for i := ln; i > 0; i-- {
			x := 10*a[i-1] + q*uint64(i)
			a[i-1] = x % uint64(2*i-1)
			q = x / uint64(2*i-1)
		}
		a[0] = q % 10
		q /= 10
		switch {
		case q == 9:
			nines++
		case q == 10:
			out = append(out, byte('0'+predigit+1))
			for ; nines > 0; nines-- {
				out = append(out, '0')
			}
			predigit = 0
		default:
			out = append(out, byte('0'+predigit))
			predigit = int(q)
			for ; nines > 0; nines-- {
				out = append(out, '9')
			}
		}
	}
	if len(out) < n+1 {
		out = append(out, byte('0'+predigit))
		for ; nines > 0 && len(out) < n+1; nines-- {
			out = append(out, '9')
		}
	}
	// the first emitted digit is a spurious zero from priming predigit
	return out[1 : n+1]
}
