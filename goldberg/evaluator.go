// SPDX-License-Identifier: MIT

package goldberg

import (
	"math/big"

	"github.com/katalvlaran/bch/freelie"
)

// Evaluator computes the numerators Build stores.
//
// Phi must return, for k = 0..len(word)-1, scale times the coefficient of
// word[k:], as exact integers. Denominator(n) must clear every coefficient of
// order ≤ n and is used as the scale.
type Evaluator interface {
	Phi(word []freelie.Generator, scale *big.Int) ([]*big.Int, error)
	Denominator(order int) *big.Int
}

// seriesEvaluator evaluates a fixed freelie expression.
type seriesEvaluator struct {
	expr freelie.Expr
}

// DefaultEvaluator returns an Evaluator over log(exp(A)·exp(B)) with
// freelie.CommonDenominator as the shared denominator.
func DefaultEvaluator() Evaluator {
	return seriesEvaluator{expr: freelie.BCH()}
}

func (s seriesEvaluator) Phi(word []freelie.Generator, scale *big.Int) ([]*big.Int, error) {
	return freelie.Phi(word, s.expr, scale)
}

func (seriesEvaluator) Denominator(order int) *big.Int {
	return freelie.CommonDenominator(order)
}
