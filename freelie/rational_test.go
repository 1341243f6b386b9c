// SPDX-License-Identifier: MIT

package freelie_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/bch/freelie"
	"github.com/stretchr/testify/assert"
)

// TestCommonDenominator pins n!·lcm(1..n) for small n.
func TestCommonDenominator(t *testing.T) {
	cases := map[int]int64{0: 1, 1: 1, 2: 4, 3: 36, 4: 288, 8: 33868800}
	for n, want := range cases {
		assert.Zero(t, big.NewInt(want).Cmp(freelie.CommonDenominator(n)), "n=%d", n)
	}
	// Divisibility across orders keeps lower-order numerators exact.
	for n := 2; n <= 32; n++ {
		m := new(big.Int).Mod(freelie.CommonDenominator(n), freelie.CommonDenominator(n-1))
		assert.Zero(t, m.Sign(), "D(%d) must divide D(%d)", n-1, n)
	}
}

// TestFormatRational covers reduction, integers and the degenerate denominator.
func TestFormatRational(t *testing.T) {
	assert.Equal(t, "1/12", freelie.FormatRational(big.NewInt(3), big.NewInt(36)))
	assert.Equal(t, "-1/6", freelie.FormatRational(big.NewInt(-6), big.NewInt(36)))
	assert.Equal(t, "0", freelie.FormatRational(big.NewInt(0), big.NewInt(36)))
	assert.Equal(t, "2", freelie.FormatRational(big.NewInt(72), big.NewInt(36)))
	assert.Equal(t, "NaN", freelie.FormatRational(big.NewInt(1), big.NewInt(0)))
	assert.Equal(t, "0", freelie.FormatRational(nil, big.NewInt(5)))
}
