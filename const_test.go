package bigreal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePi(t *testing.T) {
	a := assert.New(t)
	a.True(CalculatePi(0).Eq(FromInt64(3)))
	a.Equal("3.1", CalculatePi(1).StringFixed(1))
	a.Equal("3.1415926535", CalculatePi(10).StringFixed(10))
	a.Equal(piDigits[:52], CalculatePi(50).StringFixed(50))

	for _, decimals := range []int{5, 20, 50, 100, 120} {
		t.Run(fmt.Sprintf("%d", decimals), func(t *testing.T) {
			eps := cachedConstDecimals
			if decimals < eps {
				eps = decimals
			}
			diff := CalculatePi(decimals).Sub(Pi).Abs()
			assert.True(t, diff.LessEqual(epsilonFor(eps)))
		})
	}
}

func TestCalculateE(t *testing.T) {
	a := assert.New(t)
	a.Equal("2.7", CalculateE(1).StringFixed(1))
	a.Equal(eDigits[:22], CalculateE(20).StringFixed(20))
	a.Equal(eDigits[:52], CalculateE(50).StringFixed(50))
	diff := CalculateE(30).Sub(E).Abs()
	a.True(diff.LessEqual(epsilonFor(30)))
}

func TestCalculateTau(t *testing.T) {
	a := assert.New(t)
	a.Equal("6.28318530717958647692", CalculateTau(20).StringFixed(20))
	diff := CalculateTau(30).Sub(Tau).Abs()
	a.True(diff.LessEqual(epsilonFor(29)))
}

func TestConstants(t *testing.T) {
	a := assert.New(t)
	a.True(Tau.Eq(Pi.Add(Pi)))
	a.Equal(piDigits, Pi.StringFixed(cachedConstDecimals))
	a.Equal(eDigits, E.StringFixed(cachedConstDecimals))
	a.True(Pi.IsFinite())
	a.True(E.Less(Pi))
	// the constants parse once at init through a restricted path, which
	// must agree with the full parser
	a.True(MustFromString(eDigits).Eq(E))
	a.True(MustFromString(piDigits).Eq(Pi))
	a.True(One.Exp(20).Eq(E.RoundTo(20, ToEven)))
}
