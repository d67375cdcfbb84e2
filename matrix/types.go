// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the grid storage and the keyed table.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Table is the read/write surface of a keyed two-dimensional table.
// C is the column-key type, R the row-key type, U the value type.
//
// Complexity notes: Get/Set are O(1) expected (two map lookups);
// Row is O(cols), Column is O(rows).
type Table[C, R comparable, U any] interface {
	// Shape returns (rows, cols). Complexity: O(1).
	Shape() (rows, cols int)

	// Get reads the cell addressed by (col, row) under the table's default
	// bounds mode. Returns ErrInvalidKey only when the bounds mode is
	// restricted and BOTH keys are absent.
	Get(col C, row R) (U, error)

	// Set overwrites the cell addressed by (col, row).
	// Returns ErrInvalidKey if either key is absent.
	Set(col C, row R, v U) error

	// Row returns an independent copy of the row, in column-index order.
	Row(row R) ([]U, error)

	// Column returns an independent copy of the column, in row-index order.
	Column(col C) ([]U, error)
}

// Cell is one addressed value of a KeyedMatrix, as produced by Cells.
type Cell[C, R comparable, U any] struct {
	Col   C // column key
	Row   R // row key
	Value U // stored value
}
