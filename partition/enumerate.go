// SPDX-License-Identifier: MIT

package partition

import "fmt"

// EnumerateInto writes every partition of n into dst, one row per partition,
// with fixed stride n+1. Cells after the last part of a row are zero, so each
// row is zero-terminated. Returns the number of rows written, always p(n).
//
// Algorithm (Knuth, TAOCP 4A, §7.2.1.4, Algorithm P):
//
//	P1. a[0] ← 0, a[2..n] ← 1, m ← 1.
//	P2. a[m] ← n; q ← m − [n = 1].
//	P3. Visit a[1..m]. Go to P5 if a[q] ≠ 2.
//	P4. a[q] ← 1, q ← q − 1, m ← m + 1, a[m] ← 1; go to P3.
//	P5. Stop if q = 0. Else x ← a[q] − 1, a[q] ← x, n ← m − q + 1, m ← q + 1.
//	P6. While n > x: a[m] ← x, m ← m + 1, n ← n − x. Go to P2.
//
// Here n in P2..P6 is the amount still to be placed, q marks the last part
// that is not in the trailing run of 1s and m is the current length.
// The visit order is strictly decreasing lexicographically.
//
// Errors:
//   - ErrOrderOutOfRange if n ∉ [1, MaxOrder].
//   - ErrShortBuffer if len(dst) < p(n)·(n+1).
//
// Complexity: O(p(n)·n) time, O(n) scratch space.
func EnumerateInto(n int, dst []uint8) (int, error) {
	if err := ValidateOrder(n); err != nil {
		return 0, fmt.Errorf("EnumerateInto: %w", err)
	}
	stride := n + 1
	if need := counts[n] * stride; len(dst) < need {
		return 0, fmt.Errorf("EnumerateInto: need %d cells, have %d: %w", need, len(dst), ErrShortBuffer)
	}

	// P1
	a := make([]int, n+1)
	for k := 2; k <= n; k++ {
		a[k] = 1
	}
	m := 1
	rest := n
	rows := 0
	for {
		// P2
		a[m] = rest
		q := m
		if rest == 1 {
			q--
		}
		for {
			// P3
			row := dst[rows*stride : (rows+1)*stride]
			for j := 0; j < m; j++ {
				row[j] = uint8(a[j+1])
			}
			clear(row[m:])
			rows++
			if a[q] != 2 {
				break
			}
			// P4
			a[q] = 1
			q--
			m++
			a[m] = 1
		}
		// P5
		if q == 0 {
			break
		}
		x := a[q] - 1
		a[q] = x
		rest = m - q + 1
		m = q + 1
		// P6
		for rest > x {
			a[m] = x
			m++
			rest -= x
		}
	}

	return rows, nil
}

// Enumerate returns the partitions of n in Algorithm P order.
// Each Partition is an independent slice without the zero terminator.
func Enumerate(n int) ([]Partition, error) {
	if err := ValidateOrder(n); err != nil {
		return nil, fmt.Errorf("Enumerate: %w", err)
	}
	stride := n + 1
	buf := make([]uint8, counts[n]*stride)
	rows, err := EnumerateInto(n, buf)
	if err != nil {
		return nil, err
	}
	out := make([]Partition, rows)
	for i := range out {
		out[i] = Trim(buf[i*stride : (i+1)*stride]).Clone()
	}

	return out, nil
}
