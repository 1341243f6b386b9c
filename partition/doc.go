// SPDX-License-Identifier: MIT

// Package partition enumerates integer partitions in the canonical order of
// Knuth's Algorithm P and maps binary words onto them by run-length.
//
// 🚀 What is a partition here?
//
//	A non-increasing sequence of positive integers summing to n, e.g. the
//	partitions of 4 are visited as
//	  [4] [3 1] [2 2] [2 1 1] [1 1 1 1]
//	which is strictly decreasing lexicographic order. Downstream tables
//	(offsets, binary search) rely on exactly this order.
//
// ✨ Key pieces:
//   - EnumerateInto — non-recursive Algorithm P into a caller buffer with
//     fixed stride n+1 (zero padded, so every row is zero-terminated)
//   - Count / Offset / Cumulative — p(n) and its prefix sums for n ≤ MaxOrder
//   - Compare — term-by-term order, a shorter row counts as smaller
//   - FromWord — run-length canonicalization of a word into its partition
//   - Partition.Word — the canonical alternating word of a partition
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/bch/partition"
//
//	rows, err := partition.Enumerate(5)
//	// rows[0] = [5], rows[len(rows)-1] = [1 1 1 1 1]
//
//	p := partition.FromWord([]uint8{0, 0, 1, 0})
//	// p = [2 1 1]
//
// Performance:
//
//   - EnumerateInto: O(p(n)·n) time, O(n) scratch.
//   - FromWord:      O(n) time and space.
package partition
