// SPDX-License-Identifier: MIT

package partition

import "fmt"

// MaxOrder is the largest n for which partition counts are tabulated.
// Parts are stored as uint8, so the ceiling must stay below 256.
const MaxOrder = 32

// counts[n] is the number of partitions of n (OEIS A000041).
var counts = [MaxOrder + 1]int{1, 1, 2, 3, 5, 7, 11, 15, 22, 30, 42, 56, 77,
	101, 135, 176, 231, 297, 385, 490, 627, 792, 1002, 1255, 1575, 1958,
	2436, 3010, 3718, 4565, 5604, 6842, 8349}

// offsets[n] is the index of the first row of order n in a table that stores
// orders 1, 2, ... back to back; offsets[MaxOrder+1] is the total row count.
var offsets [MaxOrder + 2]int

// cells[n] is the number of bytes occupied by orders 1..n-1, each row of
// order k taking k+1 bytes (parts plus terminator).
var cells [MaxOrder + 2]int

func init() {
	for n := 1; n <= MaxOrder; n++ {
		offsets[n+1] = offsets[n] + counts[n]
		cells[n+1] = cells[n] + counts[n]*(n+1)
	}
}

// Count returns p(n), the number of partitions of n, for 0 ≤ n ≤ MaxOrder.
func Count(n int) int {
	mustOrder(n, 0)
	return counts[n]
}

// Offset returns the index of the first row of order n when orders 1..N are
// laid out consecutively: Σ p(k) for k = 1..n-1.
func Offset(n int) int {
	mustOrder(n, 1)
	return offsets[n]
}

// Cumulative returns Σ p(k) for k = 1..n, i.e. the row count of a table
// spanning orders 1..n.
func Cumulative(n int) int {
	mustOrder(n, 0)
	if n == 0 {
		return 0
	}
	return offsets[n+1]
}

// Cells returns the number of uint8 cells needed to store every partition of
// every order 1..n with stride k+1 for order k.
func Cells(n int) int {
	mustOrder(n, 0)
	if n == 0 {
		return 0
	}
	return cells[n+1]
}

// CellOffset returns the first cell of order n under the same layout as Cells.
func CellOffset(n int) int {
	mustOrder(n, 1)
	return cells[n]
}

// ValidateOrder reports ErrOrderOutOfRange unless 1 ≤ n ≤ MaxOrder.
func ValidateOrder(n int) error {
	if n < 1 || n > MaxOrder {
		return fmt.Errorf("order %d not in [1,%d]: %w", n, MaxOrder, ErrOrderOutOfRange)
	}
	return nil
}

// mustOrder panics on out-of-range n. The constant accessors are indexers
// over fixed tables; callers validate user input with ValidateOrder first.
func mustOrder(n, lo int) {
	if n < lo || n > MaxOrder {
		panic(fmt.Errorf("partition: n=%d not in [%d,%d]: %w", n, lo, MaxOrder, ErrOrderOutOfRange))
	}
}
