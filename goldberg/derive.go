// SPDX-License-Identifier: MIT

package goldberg

import (
	"math/big"

	"github.com/katalvlaran/bch/partition"
)

// Related is one row derived from a top-order seed partition.
type Related struct {
	Order     int
	Partition partition.Partition
	Numerator *big.Int
}

// DeriveRelated expands one evaluator result into the rows it determines.
//
// seed is a partition of n and nums[k] the numerator of its canonical word
// with the first k letters dropped. Dropping a letter shrinks the first part
// by one, so the k-th element describes the partition of n-k whose first
// part is seed[0]-k and whose other parts equal seed[1:].
//
// The chain starts at order n and stops when the first part would drop below
// the second part, or below 1 for a single-part seed. It also stops early if
// nums runs out; Build reports the resulting gap as ErrInconsistent.
//
// Complexity: O(seed[0]·len(seed)).
func DeriveRelated(seed partition.Partition, nums []*big.Int) []Related {
	if len(seed) == 0 {
		return nil
	}
	n := seed.Sum()
	l := len(seed)
	q := int(seed[0])
	out := make([]Related, 0, q)
	for order := n; n-order < len(nums); order-- {
		p := seed.Clone()
		p[0] = uint8(q)
		out = append(out, Related{Order: order, Partition: p, Numerator: nums[n-order]})

		if !((l == 1 && q > 1) || (l > 1 && q > int(seed[1]))) {
			break
		}
		q--
	}
	return out
}
