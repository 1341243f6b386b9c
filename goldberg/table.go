// SPDX-License-Identifier: MIT

package goldberg

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/big"
	"sync/atomic"

	"github.com/zeebo/xxh3"

	"github.com/katalvlaran/bch/partition"
)

// Table is an immutable Goldberg coefficient table for orders 1..Order().
// Row i holds a partition and the numerator, over Denominator(), of the
// coefficient of that partition's canonical word.
type Table struct {
	order   int
	denom   *big.Int
	nums    []*big.Int
	rows    *rowArena
	metrics MetricsCollector
	closed  atomic.Bool
}

// Order returns the highest order N the table covers.
func (t *Table) Order() int { return t.order }

// Len returns the total number of rows, Σ p(k) for k = 1..N.
func (t *Table) Len() int { return len(t.nums) }

// Denominator returns a copy of the shared denominator.
func (t *Table) Denominator() *big.Int {
	if t.denom == nil {
		return nil
	}
	return new(big.Int).Set(t.denom)
}

// Closed reports whether Close has been called.
func (t *Table) Closed() bool { return t.closed.Load() }

// OrderRange returns the half-open row range [start, end) of order n.
func (t *Table) OrderRange(n int) (start, end int, err error) {
	if t == nil {
		return 0, 0, ErrNilTable
	}
	if n < 1 || n > t.order {
		return 0, 0, fmt.Errorf("order %d not in [1,%d]: %w", n, t.order, ErrOrderOutOfRange)
	}
	start = partition.Offset(n)
	return start, start + partition.Count(n), nil
}

// Row returns the partition and numerator stored at flat index i. Both are
// copies; mutating them does not affect the table.
func (t *Table) Row(i int) (partition.Partition, *big.Int, error) {
	if err := t.usable(MethodRow); err != nil {
		return nil, nil, err
	}
	if i < 0 || i >= len(t.nums) {
		return nil, nil, fmt.Errorf("%s: %d not in [0,%d): %w", MethodRow, i, len(t.nums), ErrRowOutOfRange)
	}
	n, pos := t.rows.locate(i)
	return partition.Trim(t.rows.row(n, pos)).Clone(), new(big.Int).Set(t.nums[i]), nil
}

// Fingerprint hashes the rows, numerators and denominator with xxh3. Two
// tables built for the same order with the same evaluator agree.
func (t *Table) Fingerprint() (uint64, error) {
	if err := t.usable(MethodFingerprint); err != nil {
		return 0, err
	}
	var buf bytes.Buffer
	buf.Write(t.rows.cells)
	var hdr [9]byte
	writeInt := func(x *big.Int) {
		hdr[0] = byte(x.Sign() + 1)
		mag := x.Bytes()
		binary.LittleEndian.PutUint64(hdr[1:], uint64(len(mag)))
		buf.Write(hdr[:])
		buf.Write(mag)
	}
	for _, x := range t.nums {
		writeInt(x)
	}
	writeInt(t.denom)
	return xxh3.Hash(buf.Bytes()), nil
}

// Close releases the numerators, rows and denominator as one unit. It must
// be called exactly once; later calls, and any other use of the table,
// return ErrTableClosed.
func (t *Table) Close() error {
	if t == nil {
		return ErrNilTable
	}
	if !t.closed.CompareAndSwap(false, true) {
		return fmt.Errorf("%s: %w", MethodClose, ErrTableClosed)
	}
	t.nums = nil
	t.rows = nil
	t.denom = nil
	return nil
}

func (t *Table) usable(method string) error {
	if t == nil {
		return fmt.Errorf("%s: %w", method, ErrNilTable)
	}
	if t.closed.Load() {
		return fmt.Errorf("%s: %w", method, ErrTableClosed)
	}
	return nil
}
