// SPDX-License-Identifier: MIT

package partition

import (
	"slices"
	"strconv"
	"strings"
)

// Partition is a non-increasing sequence of positive parts. Unlike table
// rows it carries no zero terminator; Trim converts a row into a Partition.
type Partition []uint8

// Trim returns the prefix of row before its first zero cell.
func Trim(row []uint8) Partition {
	for i, v := range row {
		if v == 0 {
			return Partition(row[:i])
		}
	}
	return Partition(row)
}

// Clone returns an independent copy of p.
func (p Partition) Clone() Partition {
	return Partition(slices.Clone([]uint8(p)))
}

// Sum returns the integer being partitioned.
func (p Partition) Sum() int {
	s := 0
	for _, v := range p {
		s += int(v)
	}
	return s
}

// Valid reports whether p is non-empty, positive and non-increasing.
func (p Partition) Valid() bool {
	if len(p) == 0 {
		return false
	}
	for i, v := range p {
		if v == 0 || (i > 0 && v > p[i-1]) {
			return false
		}
	}
	return true
}

// Word expands p into its canonical word: part j contributes p[j] copies of
// label j mod 2, so [3 1 2] becomes 0 0 0 1 0 0.
func (p Partition) Word() []uint8 {
	w := make([]uint8, 0, p.Sum())
	for j, v := range p {
		for range int(v) {
			w = append(w, uint8(j&1))
		}
	}
	return w
}

// String renders p as "[3 1 1]".
func (p Partition) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(int(v)))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Compare orders two partitions term by term, treating positions past the
// end of a slice as 0 (the zero terminator of a row). It returns -1, 0 or +1.
// Rows emitted by EnumerateInto are strictly decreasing under Compare.
func Compare(a, b Partition) int {
	for i := 0; ; i++ {
		var x, y uint8
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		switch {
		case x > y:
			return 1
		case x < y:
			return -1
		case x == 0:
			return 0
		}
	}
}

// FromWord returns the partition formed by the lengths of the maximal runs
// of equal adjacent labels in w, sorted in non-increasing order. An empty
// word yields an empty Partition.
//
// Run lengths are bucketed by size and read back from the largest bucket,
// so the sort is a single O(n) counting pass.
func FromWord[L comparable](w []L) Partition {
	n := len(w)
	if n == 0 {
		return Partition{}
	}
	// runs[k] counts runs of length k+1.
	runs := make([]int, n)
	k := 0
	for i := 1; i < n; i++ {
		if w[i-1] == w[i] {
			k++
			continue
		}
		runs[k]++
		k = 0
	}
	runs[k]++

	p := make(Partition, 0, n)
	for i := n - 1; i >= 0; i-- {
		for range runs[i] {
			p = append(p, uint8(i+1))
		}
	}
	return p
}
