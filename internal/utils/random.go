package utils

import (
	"crypto/rand"
	"math"
	"math/big"
)

// BandedRand draws a fare amount from an inclusive [min, max] band, rounded to
// 2 decimals. Price randomization within a band is a pricing policy, not noise;
// the fare service takes this as an injectable dependency so tests can pin draws.
type BandedRand interface {
	Between(min, max float64) float64
}

type secureBandedRand struct{}

// NewBandedRand returns the production randomizer backed by crypto/rand.
func NewBandedRand() BandedRand {
	return secureBandedRand{}
}

func (secureBandedRand) Between(min, max float64) float64 {
	if max <= min {
		return Round2(min)
	}
	return Round2(min + secureFloat()*(max-min))
}

func secureFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(1<<53))
	return float64(n.Int64()) / float64(1<<53)
}

// Round2 rounds a monetary amount to 2 decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func GenerateRandomNumericString(length int) string {
	const digits = "0123456789"
	result := make([]byte, length)
	for i := range result {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		result[i] = digits[n.Int64()]
	}
	return string(result)
}
