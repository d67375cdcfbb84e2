// SPDX-License-Identifier: MIT

// Package matrix - human-readable rendering of a KeyedMatrix.
//
// Layout (lines joined by a single "\n", no trailing newline):
//
//	columns: [x y]
//	rows: [p q]
//	[0 0]
//	[0 7]
//
// Keys and row values are rendered with fmt's %v verb.

package matrix

import (
	"fmt"
	"io"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtColumns = "columns: "
	_fmtRows    = "rows: "
	_fmtLineSep = "\n"
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*KeyedMatrix[string, string, int])(nil)

// Describe writes the rendering to w.
// Implementation:
//   - Stage 1: header lines with column and row keys (ascending index order).
//   - Stage 2: one line per grid row, in row-index order.
//
// Returns the first write error, if any.
// Complexity: Time O(R*C), no intermediate string concatenation.
func (m *KeyedMatrix[C, R, U]) Describe(w io.Writer) error {
	if m == nil {
		return ErrNilMatrix
	}
	if _, err := fmt.Fprintf(w, "%s%v%s%s%v", _fmtColumns, m.cols.keys, _fmtLineSep, _fmtRows, m.rows.keys); err != nil {
		return err
	}
	cols := m.grid.c
	for i := 0; i < m.grid.r; i++ {
		if _, err := fmt.Fprintf(w, "%s%v", _fmtLineSep, m.grid.data[i*cols:(i+1)*cols]); err != nil {
			return err
		}
	}

	return nil
}

// String implements fmt.Stringer via Describe.
func (m *KeyedMatrix[C, R, U]) String() string {
	var b strings.Builder
	_ = m.Describe(&b) // strings.Builder never fails

	return b.String()
}
