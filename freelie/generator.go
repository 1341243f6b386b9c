// SPDX-License-Identifier: MIT

package freelie

import (
	"fmt"
	"strings"
)

// Generator labels one of the two free generators.
type Generator uint8

const (
	// A is the first generator, label 0.
	A Generator = 0
	// B is the second generator, label 1.
	B Generator = 1
)

// Valid reports whether g is A or B.
func (g Generator) Valid() bool { return g == A || g == B }

func (g Generator) String() string {
	switch g {
	case A:
		return "A"
	case B:
		return "B"
	default:
		return fmt.Sprintf("Generator(%d)", uint8(g))
	}
}

// ParseWord reads a word written with A/B (either case) or 0/1. Spaces are ignored.
func ParseWord(s string) ([]Generator, error) {
	w := make([]Generator, 0, len(s))
	for i, r := range s {
		switch r {
		case 'A', 'a', '0':
			w = append(w, A)
		case 'B', 'b', '1':
			w = append(w, B)
		case ' ', '\t':
		default:
			return nil, fmt.Errorf("ParseWord: %q at %d: %w", r, i, ErrUnknownGenerator)
		}
	}
	if len(w) == 0 {
		return nil, fmt.Errorf("ParseWord: %w", ErrEmptyWord)
	}
	return w, nil
}

// FormatWord renders w as a string of A and B.
func FormatWord(w []Generator) string {
	var sb strings.Builder
	sb.Grow(len(w))
	for _, g := range w {
		sb.WriteString(g.String())
	}
	return sb.String()
}

// validateWord checks that w is non-empty and only uses A and B.
func validateWord(w []Generator) error {
	if len(w) == 0 {
		return ErrEmptyWord
	}
	for i, g := range w {
		if !g.Valid() {
			return fmt.Errorf("position %d: %v: %w", i, g, ErrUnknownGenerator)
		}
	}
	return nil
}
