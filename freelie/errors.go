// SPDX-License-Identifier: MIT

package freelie

import "errors"

var (
	// ErrUnknownGenerator indicates a label other than A or B.
	ErrUnknownGenerator = errors.New("freelie: unknown generator")

	// ErrEmptyWord indicates a zero-length word.
	ErrEmptyWord = errors.New("freelie: empty word")

	// ErrNilExpr indicates a nil expression or sub-expression.
	ErrNilExpr = errors.New("freelie: nil expression")

	// ErrConstantTerm indicates Exp of an argument with a non-zero constant
	// term, or Log of an argument whose constant term is not 1. Neither
	// series terminates on words in that case.
	ErrConstantTerm = errors.New("freelie: invalid constant term")

	// ErrNotIntegral indicates the requested scale does not clear a
	// coefficient's denominator.
	ErrNotIntegral = errors.New("freelie: scaled coefficient is not an integer")
)
