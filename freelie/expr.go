// SPDX-License-Identifier: MIT

package freelie

import (
	"fmt"
	"math/big"
	"strings"
)

// Expr is a symbolic element of the free associative algebra on A and B
// (a formal power series). Values are immutable and may be shared.
type Expr interface {
	fmt.Stringer

	// check validates the tree: labels, nil children and constant terms.
	check() error
	// constant returns the coefficient of the empty word.
	constant() *big.Rat
	// apply returns M·v where M[i][j] is the coefficient of w[i:j].
	apply(w []Generator, v vector) vector
}

// Gen returns the generator g as an expression.
func Gen(g Generator) Expr { return genExpr{g: g} }

// Exp returns the exponential series of x. x must have a zero constant term.
func Exp(x Expr) Expr { return expExpr{arg: x} }

// Log returns the logarithm series of x. x must have constant term 1.
func Log(x Expr) Expr { return logExpr{arg: x} }

// Product returns the non-commutative product of factors in order.
// The empty product is 1.
func Product(factors ...Expr) Expr { return productExpr{factors: factors} }

// Sum returns the sum of terms. The empty sum is 0.
func Sum(terms ...Expr) Expr { return sumExpr{terms: terms} }

// BCH returns log(exp(A)·exp(B)).
func BCH() Expr {
	return Log(Product(Exp(Gen(A)), Exp(Gen(B))))
}

// ---------- generator ----------

type genExpr struct{ g Generator }

func (e genExpr) String() string { return e.g.String() }

func (e genExpr) check() error {
	if !e.g.Valid() {
		return fmt.Errorf("%v: %w", e.g, ErrUnknownGenerator)
	}
	return nil
}

func (genExpr) constant() *big.Rat { return new(big.Rat) }

func (e genExpr) apply(w []Generator, v vector) vector {
	r := newVector(len(v))
	for i, g := range w {
		if g == e.g {
			r[i].Set(v[i+1])
		}
	}
	return r
}

// ---------- exponential ----------

type expExpr struct{ arg Expr }

func (e expExpr) String() string { return "exp(" + str(e.arg) + ")" }

func (e expExpr) check() error {
	if e.arg == nil {
		return fmt.Errorf("exp: %w", ErrNilExpr)
	}
	if err := e.arg.check(); err != nil {
		return err
	}
	if e.arg.constant().Sign() != 0 {
		return fmt.Errorf("exp(%v): argument constant term %v: %w", e.arg, e.arg.constant(), ErrConstantTerm)
	}
	return nil
}

func (expExpr) constant() *big.Rat { return big.NewRat(1, 1) }

// apply sums x^k·v/k! for k = 0..L. x has no constant term, so its operator
// is strictly upper triangular and the series stops after L terms.
func (e expExpr) apply(w []Generator, v vector) vector {
	if g, ok := e.arg.(genExpr); ok {
		return expRun(w, g.g, v)
	}
	acc := v.clone()
	term := v
	k := new(big.Rat)
	for j := 1; j <= len(w); j++ {
		term = e.arg.apply(w, term)
		term.scale(k.SetInt64(int64(j)).Inv(k))
		if term.zero() {
			break
		}
		acc.add(term)
	}
	return acc
}

// expRun is exp(g) applied directly: the coefficient of w[i:j] is 1/(j-i)!
// when w[i:j] is a run of g, and 0 otherwise.
func expRun(w []Generator, g Generator, v vector) vector {
	r := newVector(len(v))
	inv := new(big.Rat)
	t := new(big.Rat)
	for i := range v {
		r[i].Set(v[i])
		fact := big.NewInt(1)
		for j := i; j < len(w) && w[j] == g; j++ {
			fact.Mul(fact, big.NewInt(int64(j-i+1)))
			inv.SetFrac(big.NewInt(1), fact)
			r[i].Add(r[i], t.Mul(inv, v[j+1]))
		}
	}
	return r
}

// ---------- logarithm ----------

type logExpr struct{ arg Expr }

func (e logExpr) String() string { return "log(" + str(e.arg) + ")" }

func (e logExpr) check() error {
	if e.arg == nil {
		return fmt.Errorf("log: %w", ErrNilExpr)
	}
	if err := e.arg.check(); err != nil {
		return err
	}
	if c := e.arg.constant(); c.Cmp(big.NewRat(1, 1)) != 0 {
		return fmt.Errorf("log(%v): argument constant term %v: %w", e.arg, c, ErrConstantTerm)
	}
	return nil
}

func (logExpr) constant() *big.Rat { return new(big.Rat) }

// apply sums (-1)^(k+1)·y^k·v/k for k = 1..L with y = arg − 1.
func (e logExpr) apply(w []Generator, v vector) vector {
	acc := newVector(len(v))
	term := v
	c := new(big.Rat)
	for k := 1; k <= len(w); k++ {
		next := e.arg.apply(w, term)
		next.sub(term)
		term = next
		if term.zero() {
			break
		}
		c.SetFrac64(1, int64(k))
		if k%2 == 0 {
			c.Neg(c)
		}
		acc.addScaled(term, c)
	}
	return acc
}

// ---------- product / sum ----------

type productExpr struct{ factors []Expr }

func (e productExpr) String() string {
	if len(e.factors) == 0 {
		return "1"
	}
	parts := make([]string, len(e.factors))
	for i, f := range e.factors {
		parts[i] = str(f)
	}
	return strings.Join(parts, "·")
}

func (e productExpr) check() error {
	for _, f := range e.factors {
		if f == nil {
			return fmt.Errorf("product: %w", ErrNilExpr)
		}
		if err := f.check(); err != nil {
			return err
		}
	}
	return nil
}

func (e productExpr) constant() *big.Rat {
	c := big.NewRat(1, 1)
	for _, f := range e.factors {
		c.Mul(c, f.constant())
	}
	return c
}

func (e productExpr) apply(w []Generator, v vector) vector {
	r := v
	for i := len(e.factors) - 1; i >= 0; i-- {
		r = e.factors[i].apply(w, r)
	}
	if len(e.factors) == 0 {
		r = v.clone()
	}
	return r
}

type sumExpr struct{ terms []Expr }

func (e sumExpr) String() string {
	if len(e.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(e.terms))
	for i, t := range e.terms {
		parts[i] = str(t)
	}
	return "(" + strings.Join(parts, " + ") + ")"
}

func (e sumExpr) check() error {
	for _, t := range e.terms {
		if t == nil {
			return fmt.Errorf("sum: %w", ErrNilExpr)
		}
		if err := t.check(); err != nil {
			return err
		}
	}
	return nil
}

func (e sumExpr) constant() *big.Rat {
	c := new(big.Rat)
	for _, t := range e.terms {
		c.Add(c, t.constant())
	}
	return c
}

func (e sumExpr) apply(w []Generator, v vector) vector {
	acc := newVector(len(v))
	for _, t := range e.terms {
		acc.add(t.apply(w, v))
	}
	return acc
}

func str(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.String()
}
