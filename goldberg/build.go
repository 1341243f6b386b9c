// SPDX-License-Identifier: MIT

package goldberg

import (
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/bch/freelie"
	"github.com/katalvlaran/bch/partition"
)

// Build computes the Goldberg coefficient table for every order 1..order.
//
// Implementation:
//   - Stage 1: validate order ∈ [1, MaxOrder]; allocate the numerators and
//     the row arena for Σ p(k) rows.
//   - Stage 2: enumerate the partitions of order straight into the arena's
//     top-order span (Algorithm P order).
//   - Stage 3: for each top-order partition, evaluate its canonical word
//     once and let DeriveRelated spread the result over the shrinking chain;
//     every triple lands in the next free row of its order.
//   - Stage 4: check that every order received exactly p(k) rows.
//
// Rows of a lower order arrive in decreasing order because their seeds do:
// seeds with a larger first part come first, and seeds sharing a first part
// are ordered by their remaining parts, which the chain leaves untouched.
//
// Errors:
//   - ErrOrderOutOfRange for order ∉ [1, MaxOrder].
//   - any evaluator error, wrapped with the failing seed.
//   - ErrInconsistent if the row bookkeeping does not balance.
//
// Complexity: p(order) evaluator calls; Σ p(k)·(k+1) bytes of rows.
func Build(order int, opts ...Option) (*Table, error) {
	if err := partition.ValidateOrder(order); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}
	o := gatherOptions(opts...)
	log := o.logger.With(zap.Int("order", order))
	start := time.Now()

	t := &Table{
		order:   order,
		nums:    make([]*big.Int, partition.Cumulative(order)),
		rows:    newRowArena(order),
		metrics: o.metrics,
	}

	top := t.rows.span(order)
	if _, err := partition.EnumerateInto(order, top); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}

	denom := o.evaluator.Denominator(order)
	filled := make([]int, order+1)
	stride := order + 1
	for k := 0; k < partition.Count(order); k++ {
		// The chain rewrites row k of the top order; work on a copy.
		seed := partition.Trim(top[k*stride : (k+1)*stride]).Clone()
		nums, err := o.evaluator.Phi(canonicalWord(seed), denom)
		if err != nil {
			return nil, fmt.Errorf("%s: seed %v: %w", MethodBuild, seed, err)
		}
		for _, rel := range DeriveRelated(seed, nums) {
			pos := filled[rel.Order]
			if pos >= partition.Count(rel.Order) {
				return nil, fmt.Errorf("%s: order %d overflows at seed %v: %w",
					MethodBuild, rel.Order, seed, ErrInconsistent)
			}
			t.rows.put(rel.Order, pos, rel.Partition)
			t.nums[partition.Offset(rel.Order)+pos] = rel.Numerator
			filled[rel.Order]++
		}
	}
	for n := 1; n <= order; n++ {
		if filled[n] != partition.Count(n) {
			return nil, fmt.Errorf("%s: order %d has %d of %d rows: %w",
				MethodBuild, n, filled[n], partition.Count(n), ErrInconsistent)
		}
	}
	t.denom = denom

	elapsed := time.Since(start)
	o.metrics.RecordBuild(order, len(t.nums), elapsed.Seconds())
	log.Info("compute goldberg coefficients",
		zap.Int("rows", len(t.nums)),
		zap.Duration("elapsed", elapsed))
	log.Debug("goldberg denominator", zap.String("denominator", denom.String()))

	return t, nil
}

// canonicalWord maps part j of p to p[j] copies of generator j mod 2.
func canonicalWord(p partition.Partition) []freelie.Generator {
	labels := p.Word()
	w := make([]freelie.Generator, len(labels))
	for i, l := range labels {
		w[i] = freelie.Generator(l)
	}
	return w
}
