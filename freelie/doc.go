// SPDX-License-Identifier: MIT

// Package freelie evaluates coefficients of words in expressions over the
// free associative algebra on two generators A and B.
//
// An expression is assembled from Gen, Exp, Product, Sum and Log; BCH()
// returns log(exp(A)·exp(B)). For a word w of length L the evaluator applies
// the expression as an (L+1)×(L+1) upper-triangular operator whose (i, j)
// entry is the coefficient of the sub-word w[i:j], but only ever on vectors:
// applying it to the unit vector e_L yields the coefficients of every suffix
// w[k:] in one pass. Phi exposes exactly that vector.
//
// Arithmetic is exact (math/big). CommonDenominator(n) is a single integer
// that clears the denominator of every BCH coefficient of order ≤ n, so
// Phi(w, BCH(), CommonDenominator(n)) returns integer numerators.
//
// Example:
//
//	w, _ := freelie.ParseWord("AAB")
//	c, _ := freelie.Coefficient(w, freelie.BCH())
//	fmt.Println(c) // 1/12
package freelie
