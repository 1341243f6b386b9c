// SPDX-License-Identifier: MIT

package partition

import "errors"

var (
	// ErrOrderOutOfRange indicates n is outside [1, MaxOrder].
	ErrOrderOutOfRange = errors.New("partition: order out of supported range")

	// ErrShortBuffer indicates the destination cannot hold p(n) rows of stride n+1.
	ErrShortBuffer = errors.New("partition: destination buffer too small")
)
