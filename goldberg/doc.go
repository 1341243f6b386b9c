// SPDX-License-Identifier: MIT

// Package goldberg builds and queries tables of Goldberg coefficients: the
// exact rational coefficient of every word over two generators A, B in the
// Baker–Campbell–Hausdorff series log(exp(A)·exp(B)), for all orders 1..N.
//
// 🚀 What does a table hold?
//
//	The coefficient of a word depends only on the multiset of its run
//	lengths (plus a sign), so one row per integer partition of each order
//	suffices:
//	  order 1: [1]
//	  order 2: [2] [1 1]
//	  order 3: [3] [2 1] [1 1 1]
//	Rows of an order are stored in Algorithm P order (strictly decreasing),
//	numerators share one denominator that depends only on N.
//
// ✨ Key features:
//   - Build: one evaluator call per partition of N; each call is amortized
//     over the chain of partitions obtained by shrinking the first part
//     (DeriveRelated), which fills every lower order in the same pass
//   - Coefficient: run-length canonicalization + binary search, O(n + log p(n))
//   - Close: releases the table's storage as one unit, exactly once
//   - Cache: concurrent order → table cache for long-lived processes
//   - Dump / Fingerprint: diagnostics
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/bch/freelie"
//	  "github.com/katalvlaran/bch/goldberg"
//	)
//
//	tbl, err := goldberg.Build(8, goldberg.WithLogger(zapLogger))
//	if err != nil { ... }
//	defer tbl.Close()
//
//	w, _ := freelie.ParseWord("ABBA")
//	num, err := tbl.Coefficient(w)       // numerator over tbl.Denominator()
//	r, err := tbl.Rat(w)                 // reduced rational
//
// Concurrency:
//
//	Build is synchronous. A built table is immutable: any number of
//	goroutines may call Coefficient/Rat/Row concurrently once the *Table has
//	been published to them. Close must not overlap with readers.
//
// Errors:
//
//	ErrOrderOutOfRange, ErrInvalidWord, ErrTableClosed, ErrNilTable and
//	ErrRowOutOfRange are ordinary errors. A lookup that finds no row means
//	the table itself is corrupt: Coefficient panics with an error wrapping
//	ErrInconsistent instead of returning it.
//
// Performance:
//
//   - Build: p(N) evaluator calls, Σ p(k)·(k+1) bytes of row storage.
//   - Coefficient: O(n) canonicalization, O(n·log p(n)) search.
package goldberg
