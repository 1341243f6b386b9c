// SPDX-License-Identifier: MIT
// Package: bch/goldberg
//
// errors.go — sentinel errors for the goldberg package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Implementations attach context with "%s: ...: %w" using the Method*
//     constants, so messages read "Build: order 40 ...: goldberg: ...".
//   • ErrInconsistent is never a normal outcome. Build returns it when its own
//     row bookkeeping fails; Coefficient panics with it on a search miss.

package goldberg

import (
	"errors"

	"github.com/katalvlaran/bch/partition"
)

// ErrOrderOutOfRange indicates an order outside [1, MaxOrder] for Build, or
// a word longer than the table's order for lookups. It is the same sentinel
// as partition.ErrOrderOutOfRange.
var ErrOrderOutOfRange = partition.ErrOrderOutOfRange

// ErrInvalidWord indicates a word containing labels other than A and B.
var ErrInvalidWord = errors.New("goldberg: invalid word")

// ErrTableClosed indicates use of a table after Close, including a second Close.
var ErrTableClosed = errors.New("goldberg: table closed")

// ErrNilTable indicates a method call on a nil *Table.
var ErrNilTable = errors.New("goldberg: nil table")

// ErrRowOutOfRange indicates a row index outside [0, Len()).
var ErrRowOutOfRange = errors.New("goldberg: row index out of range")

// ErrInconsistent marks an internal invariant violation: a row left unfilled
// or written twice during Build, or a canonical partition missing from its
// order's range during lookup.
var ErrInconsistent = errors.New("goldberg: internal inconsistency")
