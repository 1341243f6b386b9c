// SPDX-License-Identifier: MIT

package freelie

import (
	"fmt"
	"math/big"
)

// Phi evaluates e on word w and returns, for k = 0..len(w)-1, the integer
// scale·c(w[k:]) where c(u) is the coefficient of the word u in e.
//
// Dropping the first k letters of a canonical word shrinks its first run by
// k, so a single call yields the numerators of a whole chain of related
// words of orders len(w), len(w)-1, ....
//
// Errors:
//   - ErrEmptyWord, ErrUnknownGenerator for a malformed word.
//   - ErrNilExpr, ErrConstantTerm for a malformed expression.
//   - ErrNotIntegral if scale does not clear some coefficient's denominator.
//
// Complexity: dominated by e.apply; for BCH() it is O(L³) rational
// operations in the worst case.
func Phi(w []Generator, e Expr, scale *big.Int) ([]*big.Int, error) {
	r, err := evaluate(w, e)
	if err != nil {
		return nil, fmt.Errorf("Phi: %w", err)
	}
	if scale == nil {
		scale = big.NewInt(1)
	}
	s := new(big.Rat).SetInt(scale)
	out := make([]*big.Int, len(w))
	t := new(big.Rat)
	for k := range out {
		t.Mul(r[k], s)
		if !t.IsInt() {
			return nil, fmt.Errorf("Phi: %s·%v = %v: %w", FormatWord(w[k:]), scale, t, ErrNotIntegral)
		}
		out[k] = new(big.Int).Set(t.Num())
	}
	return out, nil
}

// Coefficient returns the exact coefficient of w in e.
func Coefficient(w []Generator, e Expr) (*big.Rat, error) {
	r, err := evaluate(w, e)
	if err != nil {
		return nil, fmt.Errorf("Coefficient: %w", err)
	}
	return r[0], nil
}

// evaluate validates its inputs and returns M_e·e_L for the word w.
func evaluate(w []Generator, e Expr) (vector, error) {
	if err := validateWord(w); err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrNilExpr
	}
	if err := e.check(); err != nil {
		return nil, err
	}
	unit := newVector(len(w) + 1)
	unit[len(w)].SetInt64(1)
	return e.apply(w, unit), nil
}
