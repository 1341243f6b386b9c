// SPDX-License-Identifier: MIT

package goldberg

import "github.com/katalvlaran/bch/partition"

// rowArena stores every partition row of orders 1..order in one buffer.
// Rows of order n have stride n+1 (zero-terminated) and sit contiguously, in
// increasing n, starting at partition.CellOffset(n).
type rowArena struct {
	order int
	cells []uint8
}

func newRowArena(order int) *rowArena {
	return &rowArena{order: order, cells: make([]uint8, partition.Cells(order))}
}

// span returns the cells of all rows of order n.
func (a *rowArena) span(n int) []uint8 {
	start := partition.CellOffset(n)
	end := start + partition.Count(n)*(n+1)
	return a.cells[start:end:end]
}

// row returns the zero-terminated row at position pos within order n.
func (a *rowArena) row(n, pos int) []uint8 {
	start := partition.CellOffset(n) + pos*(n+1)
	end := start + n + 1
	return a.cells[start:end:end]
}

// put writes p into row (n, pos), zero padding the tail.
func (a *rowArena) put(n, pos int, p partition.Partition) {
	r := a.row(n, pos)
	k := copy(r, p)
	clear(r[k:])
}

// locate maps a flat row index to its (order, position).
func (a *rowArena) locate(i int) (n, pos int) {
	n = 1
	for n < a.order && i >= partition.Cumulative(n) {
		n++
	}
	return n, i - partition.Offset(n)
}
