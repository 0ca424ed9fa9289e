// SPDX-License-Identifier: MIT

// Package align: sentinel error set.
// Every algorithm in this package returns one of these sentinels, optionally
// wrapped with positional context via fmt.Errorf("...: %w", ErrX). Callers
// match them with errors.Is. No exported function panics on user input.
package align

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSymbol is returned when a sequence holds a byte outside {A,G,C,T}.
	// Detected before any table is allocated.
	ErrInvalidSymbol = errors.New("align: symbol outside alphabet {A,G,C,T}")

	// ErrBadScoring is returned for a negative gap penalty, a negative
	// substitution cost or an invalid axis permutation.
	ErrBadScoring = errors.New("align: invalid scoring parameters")

	// ErrTableTooLarge is returned when (n1+1)(n2+1)(n3+1) overflows int or
	// exceeds the configured cell limit. Nothing is allocated in that case.
	ErrTableTooLarge = errors.New("align: lattice exceeds cell limit")

	// ErrInconsistentPointer indicates a move table that cannot be walked back
	// to the origin. It signals a corrupted table or a bug in the fill.
	ErrInconsistentPointer = errors.New("align: inconsistent traceback pointer")

	// ErrOutOfRange indicates a lattice coordinate outside the table.
	ErrOutOfRange = errors.New("align: index out of range")

	// ErrMalformedAlignment is returned by Rescore and Verify for rows of
	// unequal length, all-gap columns or rows that do not degap to the inputs.
	ErrMalformedAlignment = errors.New("align: malformed alignment")
)

// symbolErrorf reports the first offending byte of sequence seq (1-based).
func symbolErrorf(seq, pos int, b byte) error {
	return fmt.Errorf("seq%d[%d]=%q: %w", seq, pos, b, ErrInvalidSymbol)
}

// pointerErrorf wraps ErrInconsistentPointer with the lattice cell it was found at.
func pointerErrorf(i, j, k int, m Move, reason string) error {
	return fmt.Errorf("cell (%d,%d,%d) move %s: %s: %w", i, j, k, m, reason, ErrInconsistentPointer)
}

// scoringErrorf wraps ErrBadScoring with a formatted reason.
func scoringErrorf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrBadScoring)...)
}
