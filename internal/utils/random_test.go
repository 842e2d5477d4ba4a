package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBetweenStaysInBand(t *testing.T) {
	rand := NewBandedRand()

	for i := 0; i < 100; i++ {
		v := rand.Between(3.50, 5.00)
		assert.GreaterOrEqual(t, v, 3.50)
		assert.LessOrEqual(t, v, 5.00)
	}
}

func TestBetweenDegenerateBand(t *testing.T) {
	rand := NewBandedRand()

	assert.Equal(t, 2.00, rand.Between(2.00, 2.00))
	assert.Equal(t, 2.00, rand.Between(2.00, 1.00))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.56, Round2(10.556))
	assert.Equal(t, 10.55, Round2(10.554))
	assert.Equal(t, 0.00, Round2(0))
	assert.Equal(t, -1.23, Round2(-1.2349))
}

func TestGenerateRandomNumericString(t *testing.T) {
	code := GenerateRandomNumericString(OTPLength)
	assert.Len(t, code, OTPLength)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9')
	}
}
