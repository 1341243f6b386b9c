// SPDX-License-Identifier: MIT

package freelie_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/bch/freelie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWord(t *testing.T, s string) []freelie.Generator {
	t.Helper()
	w, err := freelie.ParseWord(s)
	require.NoError(t, err)
	return w
}

// TestCoefficient_BCHKnownValues pins coefficients of log(exp(A)exp(B)) through order 5.
func TestCoefficient_BCHKnownValues(t *testing.T) {
	cases := map[string]string{
		"A":     "1",
		"B":     "1",
		"AA":    "0",
		"AB":    "1/2",
		"BA":    "-1/2",
		"AAB":   "1/12",
		"ABA":   "-1/6",
		"BAA":   "1/12",
		"ABB":   "1/12",
		"BAB":   "-1/6",
		"AABB":  "1/24",
		"ABBA":  "0",
		"ABAB":  "-1/12",
		"BAAB":  "0",
		"AAAB":  "0",
		"AABAB": "-1/120",
		"ABABA": "1/30",
		"AAABB": "1/180",
	}
	bch := freelie.BCH()
	for word, want := range cases {
		got, err := freelie.Coefficient(mustWord(t, word), bch)
		require.NoError(t, err, word)
		exp, ok := new(big.Rat).SetString(want)
		require.True(t, ok)
		assert.Zero(t, exp.Cmp(got), "%s: got %v want %v", word, got, want)
	}
}

// TestCoefficient_Exp checks exp(A) has coefficient 1/n! on A^n and 0 elsewhere.
func TestCoefficient_Exp(t *testing.T) {
	e := freelie.Exp(freelie.Gen(freelie.A))
	fact := big.NewInt(1)
	for n := 1; n <= 8; n++ {
		fact.Mul(fact, big.NewInt(int64(n)))
		w := make([]freelie.Generator, n)
		got, err := freelie.Coefficient(w, e)
		require.NoError(t, err)
		assert.Zero(t, new(big.Rat).SetFrac(big.NewInt(1), fact).Cmp(got), "A^%d", n)
	}
	got, err := freelie.Coefficient(mustWord(t, "AB"), e)
	require.NoError(t, err)
	assert.Zero(t, got.Sign())
}

// TestCoefficient_GeneralExpPath forces the non-generator exp series and
// checks exp(A+B) gives 1/n! on every word of length n.
func TestCoefficient_GeneralExpPath(t *testing.T) {
	e := freelie.Exp(freelie.Sum(freelie.Gen(freelie.A), freelie.Gen(freelie.B)))
	for _, s := range []string{"AB", "BAB", "ABBA"} {
		got, err := freelie.Coefficient(mustWord(t, s), e)
		require.NoError(t, err)
		fact := new(big.Int).MulRange(1, int64(len(s)))
		assert.Zero(t, new(big.Rat).SetFrac(big.NewInt(1), fact).Cmp(got), s)
	}
}

// TestCoefficient_LogExpIdentity checks log(exp(A)) = A.
func TestCoefficient_LogExpIdentity(t *testing.T) {
	e := freelie.Log(freelie.Exp(freelie.Gen(freelie.A)))
	for _, s := range []string{"A", "AA", "AAA", "AAAA", "AB"} {
		got, err := freelie.Coefficient(mustWord(t, s), e)
		require.NoError(t, err)
		want := int64(0)
		if s == "A" {
			want = 1
		}
		assert.Zero(t, big.NewRat(want, 1).Cmp(got), s)
	}
}

// TestCoefficient_ProductSum covers the plain algebra constructors.
func TestCoefficient_ProductSum(t *testing.T) {
	ab := freelie.Product(freelie.Gen(freelie.A), freelie.Gen(freelie.B))
	got, err := freelie.Coefficient(mustWord(t, "AB"), ab)
	require.NoError(t, err)
	assert.Zero(t, big.NewRat(1, 1).Cmp(got))

	got, err = freelie.Coefficient(mustWord(t, "BA"), ab)
	require.NoError(t, err)
	assert.Zero(t, got.Sign())

	twoA := freelie.Sum(freelie.Gen(freelie.A), freelie.Gen(freelie.A))
	got, err = freelie.Coefficient(mustWord(t, "A"), twoA)
	require.NoError(t, err)
	assert.Zero(t, big.NewRat(2, 1).Cmp(got))

	// The empty product is 1 and contributes nothing to non-empty words.
	got, err = freelie.Coefficient(mustWord(t, "A"), freelie.Product())
	require.NoError(t, err)
	assert.Zero(t, got.Sign())
}

// TestPhi_Suffixes checks that Phi returns the scaled coefficients of every suffix.
func TestPhi_Suffixes(t *testing.T) {
	got, err := freelie.Phi(mustWord(t, "AAB"), freelie.BCH(), big.NewInt(36))
	require.NoError(t, err)
	// AAB = 1/12, AB = 1/2, B = 1.
	require.Len(t, got, 3)
	for k, want := range []int64{3, 18, 36} {
		assert.Zero(t, big.NewInt(want).Cmp(got[k]), "suffix %d", k)
	}

	got, err = freelie.Phi(mustWord(t, "AB"), freelie.BCH(), nil)
	assert.ErrorIs(t, err, freelie.ErrNotIntegral, "scale 1 cannot clear 1/2")
	assert.Nil(t, got)
}

// TestPhi_CommonDenominatorClears checks integrality for every word up to order 7.
func TestPhi_CommonDenominatorClears(t *testing.T) {
	const order = 7
	d := freelie.CommonDenominator(order)
	bch := freelie.BCH()
	for n := 1; n <= order; n++ {
		for bits := 0; bits < 1<<n; bits++ {
			w := make([]freelie.Generator, n)
			for i := range w {
				w[i] = freelie.Generator((bits >> i) & 1)
			}
			_, err := freelie.Phi(w, bch, d)
			require.NoError(t, err, freelie.FormatWord(w))
		}
	}
}

// TestPhi_Errors covers validation of words and expressions.
func TestPhi_Errors(t *testing.T) {
	one := big.NewInt(1)
	_, err := freelie.Phi(nil, freelie.BCH(), one)
	assert.ErrorIs(t, err, freelie.ErrEmptyWord)

	_, err = freelie.Phi([]freelie.Generator{freelie.A, 7}, freelie.BCH(), one)
	assert.ErrorIs(t, err, freelie.ErrUnknownGenerator)

	_, err = freelie.Phi(mustWord(t, "A"), nil, one)
	assert.ErrorIs(t, err, freelie.ErrNilExpr)

	_, err = freelie.Phi(mustWord(t, "A"), freelie.Exp(nil), one)
	assert.ErrorIs(t, err, freelie.ErrNilExpr)

	_, err = freelie.Phi(mustWord(t, "A"), freelie.Product(freelie.Gen(freelie.A), nil), one)
	assert.ErrorIs(t, err, freelie.ErrNilExpr)

	_, err = freelie.Phi(mustWord(t, "A"), freelie.Gen(3), one)
	assert.ErrorIs(t, err, freelie.ErrUnknownGenerator)

	// exp(exp(A)) has an argument with constant term 1.
	_, err = freelie.Coefficient(mustWord(t, "A"), freelie.Exp(freelie.Exp(freelie.Gen(freelie.A))))
	assert.ErrorIs(t, err, freelie.ErrConstantTerm)

	// log(A) has an argument with constant term 0.
	_, err = freelie.Coefficient(mustWord(t, "A"), freelie.Log(freelie.Gen(freelie.A)))
	assert.ErrorIs(t, err, freelie.ErrConstantTerm)
}
