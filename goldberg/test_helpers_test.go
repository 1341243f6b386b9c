// SPDX-License-Identifier: MIT

package goldberg_test

import (
	"math/big"
	"sync"
	"testing"

	"github.com/katalvlaran/bch/freelie"
	"github.com/katalvlaran/bch/goldberg"
	"github.com/stretchr/testify/require"
)

// mustBuild builds a table or fails the test, closing it on cleanup.
func mustBuild(t testing.TB, order int, opts ...goldberg.Option) *goldberg.Table {
	t.Helper()
	tbl, err := goldberg.Build(order, opts...)
	require.NoError(t, err)
	t.Cleanup(func() {
		if !tbl.Closed() {
			_ = tbl.Close()
		}
	})
	return tbl
}

// allWords returns every word of length n over {A, B}, A-first bit order.
func allWords(n int) [][]freelie.Generator {
	out := make([][]freelie.Generator, 0, 1<<n)
	for bits := 0; bits < 1<<n; bits++ {
		w := make([]freelie.Generator, n)
		for i := range w {
			w[i] = freelie.Generator((bits >> (n - 1 - i)) & 1)
		}
		out = append(out, w)
	}
	return out
}

// word parses s or fails the test.
func word(t testing.TB, s string) []freelie.Generator {
	t.Helper()
	w, err := freelie.ParseWord(s)
	require.NoError(t, err)
	return w
}

// countingMetrics records every event for assertions.
type countingMetrics struct {
	mu      sync.Mutex
	builds  []int
	lookups map[int]int
	hits    int
	misses  int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{lookups: map[int]int{}}
}

func (m *countingMetrics) RecordBuild(order, _ int, _ float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.builds = append(m.builds, order)
}

func (m *countingMetrics) RecordLookup(order int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups[order]++
}

func (m *countingMetrics) RecordCacheHit(_ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hits++
}

func (m *countingMetrics) RecordCacheMiss(_ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.misses++
}

// truncatingEvaluator keeps only the first numerator of every Phi result,
// which starves every order below the top one.
type truncatingEvaluator struct{ goldberg.Evaluator }

func (e truncatingEvaluator) Phi(w []freelie.Generator, scale *big.Int) ([]*big.Int, error) {
	nums, err := e.Evaluator.Phi(w, scale)
	if err != nil {
		return nil, err
	}
	return nums[:1], nil
}

// failingEvaluator rejects every word.
type failingEvaluator struct{ goldberg.Evaluator }

func (failingEvaluator) Phi([]freelie.Generator, *big.Int) ([]*big.Int, error) {
	return nil, freelie.ErrNotIntegral
}
