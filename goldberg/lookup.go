// SPDX-License-Identifier: MIT

package goldberg

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/bch/freelie"
	"github.com/katalvlaran/bch/partition"
)

// Coefficient returns the numerator, over Denominator(), of the coefficient
// of word in log(exp(A)·exp(B)).
//
// Implementation:
//   - Stage 1: canonicalize word into the partition of its run lengths.
//   - Stage 2: binary search the rows of order len(word); rows are strictly
//     decreasing, so a larger key moves the search towards lower indices.
//   - Stage 3: negate when the word starts with B and its length is even
//     (swapping A and B maps the canonical word onto this one).
//
// The result is a fresh *big.Int owned by the caller.
//
// Errors:
//   - ErrNilTable, ErrTableClosed.
//   - ErrOrderOutOfRange if len(word) ∉ [1, Order()].
//   - ErrInvalidWord for labels other than A and B.
//
// Panics with an error wrapping ErrInconsistent if the partition is not in
// the table; that only happens if the table was corrupted.
//
// Complexity: O(n) + O(n·log p(n)).
func (t *Table) Coefficient(word []freelie.Generator) (*big.Int, error) {
	if err := t.usable(MethodCoefficient); err != nil {
		return nil, err
	}
	n := len(word)
	if n < 1 || n > t.order {
		return nil, fmt.Errorf("%s: word length %d not in [1,%d]: %w", MethodCoefficient, n, t.order, ErrOrderOutOfRange)
	}
	for i, g := range word {
		if !g.Valid() {
			return nil, fmt.Errorf("%s: position %d: %v: %w", MethodCoefficient, i, g, ErrInvalidWord)
		}
	}

	i := t.search(n, partition.FromWord(word))
	num := new(big.Int).Set(t.nums[i])
	if word[0] == freelie.B && n%2 == 0 {
		num.Neg(num)
	}
	t.metrics.RecordLookup(n)
	return num, nil
}

// Rat returns the coefficient of word as a reduced rational.
func (t *Table) Rat(word []freelie.Generator) (*big.Rat, error) {
	num, err := t.Coefficient(word)
	if err != nil {
		return nil, err
	}
	return new(big.Rat).SetFrac(num, t.denom), nil
}

// search returns the flat index of p among the rows of order n.
func (t *Table) search(n int, p partition.Partition) int {
	lo, hi := 0, partition.Count(n)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch partition.Compare(p, partition.Trim(t.rows.row(n, mid))) {
		case 0:
			return partition.Offset(n) + mid
		case 1:
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}
	panic(fmt.Errorf("%s: partition %v of order %d not found: %w", MethodCoefficient, p, n, ErrInconsistent))
}
