// SPDX-License-Identifier: MIT

package freelie

import "math/big"

// CommonDenominator returns order!·lcm(1..order). Every coefficient of a word
// of length m ≤ order in BCH() is a sum over block decompositions of terms
// ±1/(k·∏p!q!) with k ≤ m and Σ(p+q) = m; m!·lcm(1..m) clears each of them
// and divides the returned value. For order < 1 it returns 1.
func CommonDenominator(order int) *big.Int {
	d := big.NewInt(1)
	l := big.NewInt(1)
	g := new(big.Int)
	for k := 2; k <= order; k++ {
		bk := big.NewInt(int64(k))
		d.Mul(d, bk)
		// lcm(l, k) = l·k / gcd(l, k)
		g.GCD(nil, nil, l, bk)
		l.Mul(l, bk).Quo(l, g)
	}
	return d.Mul(d, l)
}

// FormatRational renders num/den in lowest terms, "p/q" or just "p" when the
// value is an integer. A zero denominator renders as "NaN".
func FormatRational(num, den *big.Int) string {
	if den == nil || den.Sign() == 0 {
		return "NaN"
	}
	if num == nil {
		return "0"
	}
	r := new(big.Rat).SetFrac(num, den)
	if r.IsInt() {
		return r.Num().String()
	}
	return r.String()
}
