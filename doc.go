// SPDX-License-Identifier: MIT

// Package bch computes Goldberg coefficients: the exact rational
// coefficients of the Baker–Campbell–Hausdorff series
//
//	log(exp(A)·exp(B)) = A + B + ½·AB − ½·BA + 1/12·AAB − 1/6·ABA + …
//
// written over words in two non-commuting generators A and B.
//
// 🚀 What is in here?
//
//	A table builder that evaluates the series once per integer partition of
//	the top order N, spreads every evaluation over the lower orders it
//	determines, and answers any word of length ≤ N by binary search.
//
// ✨ Packages:
//
//	partition/ — Knuth's Algorithm P, p(n) tables, run-length canonicalization
//	freelie/   — exact evaluation of expressions in the free associative algebra
//	goldberg/  — Build, Table (lookup, dump, fingerprint, close) and Cache
//	metrics/   — Nop and Prometheus collectors for goldberg.MetricsCollector
//	cmd/goldberg — command-line front end with YAML config
//	examples/  — runnable walkthrough printing a truncated BCH series
//
// Quick example:
//
//	tbl, err := goldberg.Build(4)
//	if err != nil { ... }
//	defer tbl.Close()
//	w, _ := freelie.ParseWord("AABB")
//	c, _ := tbl.Rat(w) // 1/24
//
//	go get github.com/katalvlaran/bch
package bch
