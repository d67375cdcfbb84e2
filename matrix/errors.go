// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every public method
// returns one of these (wrapped with call-site context) and tests match them
// via errors.Is. No method panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Public methods wrap these with "<Type>.<Method>(...): %w" so errors.Is
// keeps matching the sentinel.
//
// ERROR PRIORITY (enforced in tests):
// nil receiver -> invalid key -> index/shape.

var (
	// ErrInvalidKey is returned when a column or row key is not a member of
	// its key space (for Get: when BOTH keys are absent under restricted bounds).
	ErrInvalidKey = errors.New("matrix: invalid key")

	// ErrOutOfRange indicates that a grid index (row or column) is outside valid bounds.
	// Grid.At/Set/Row/Col MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates that requested grid dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrNilMatrix indicates that a nil *KeyedMatrix or *Grid receiver was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSnapshotShape signals a decoded Snapshot whose cells do not match its key lists.
	ErrSnapshotShape = errors.New("matrix: snapshot shape mismatch")
)

// keyedErrorf wraps err with the KeyedMatrix method name and the offending keys.
// Keys are rendered with %v; use it at the detection site only.
func keyedErrorf(method string, col, row any, err error) error {
	return fmt.Errorf("KeyedMatrix.%s(%v,%v): %w", method, col, row, err)
}

// keyErrorf is the single-key variant used by Row/Column.
func keyErrorf(method string, key any, err error) error {
	return fmt.Errorf("KeyedMatrix.%s(%v): %w", method, key, err)
}

// gridErrorf wraps an error with a uniform Grid context and callsite indices.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}
