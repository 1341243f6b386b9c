// SPDX-License-Identifier: MIT

package freelie

import "math/big"

// vector holds one rational per word position 0..L.
type vector []*big.Rat

func newVector(n int) vector {
	v := make(vector, n)
	for i := range v {
		v[i] = new(big.Rat)
	}
	return v
}

func (v vector) clone() vector {
	c := make(vector, len(v))
	for i, x := range v {
		c[i] = new(big.Rat).Set(x)
	}
	return c
}

func (v vector) add(u vector) {
	for i := range v {
		v[i].Add(v[i], u[i])
	}
}

func (v vector) sub(u vector) {
	for i := range v {
		v[i].Sub(v[i], u[i])
	}
}

func (v vector) addScaled(u vector, c *big.Rat) {
	t := new(big.Rat)
	for i := range v {
		if u[i].Sign() != 0 {
			v[i].Add(v[i], t.Mul(u[i], c))
		}
	}
}

func (v vector) scale(c *big.Rat) {
	for i := range v {
		v[i].Mul(v[i], c)
	}
}

func (v vector) zero() bool {
	for _, x := range v {
		if x.Sign() != 0 {
			return false
		}
	}
	return true
}
