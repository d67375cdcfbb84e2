// SPDX-License-Identifier: MIT

// Package matrix - Grid storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//   - Hand out copies only: Row/Col never alias the backing buffer.
//
// Complexity quicksheet:
//   - NewGrid: O(r*c) fill; At/Set: O(1); Row: O(c); Col: O(r); Clone: O(r*c).

package matrix

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
	ctxCol = "Col" // method tag used in error wrappers
)

// Grid is a concrete row-major grid of U values.
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Grid[U any] struct {
	r, c int // row and column counts (>=0)
	data []U // contiguous row-major storage (len == r*c)
}

// NewGrid creates an r×c grid with every cell set to fill.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate the flat buffer and write fill into every slot.
//
// Behavior highlights:
//   - 0×N and N×0 shapes are legal (a keyed table may have no rows or no columns).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewGrid[U any](rows, cols int, fill U) (*Grid[U], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]U, rows*cols)
	for i := range buf {
		buf[i] = fill
	}

	return &Grid[U]{r: rows, c: cols, data: buf}, nil
}

// Rows returns the row count. Complexity: O(1).
func (g *Grid[U]) Rows() int { return g.r }

// Cols returns the column count. Complexity: O(1).
func (g *Grid[U]) Cols() int { return g.c }

// Shape packs Rows() and Cols() into a single call.
func (g *Grid[U]) Shape() (rows, cols int) { return g.r, g.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (g *Grid[U]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= g.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= g.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*g.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: Time O(1), Space O(1).
func (g *Grid[U]) At(row, col int) (U, error) {
	off, err := g.indexOf(row, col)
	if err != nil {
		var zero U
		return zero, gridErrorf(ctxAt, row, col, err)
	}

	return g.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Nothing is written when the bounds check fails.
// Complexity: Time O(1), Space O(1).
func (g *Grid[U]) Set(row, col int, v U) error {
	off, err := g.indexOf(row, col)
	if err != nil {
		return gridErrorf(ctxSet, row, col, err)
	}
	g.data[off] = v

	return nil
}

// Row returns a copy of row i.
// Implementation:
//   - Stage 1: bounds-check i.
//   - Stage 2: copy the contiguous segment data[i*c : (i+1)*c].
//
// Behavior highlights:
//   - The result never aliases the backing buffer.
//
// Complexity:
//   - Time O(c), Space O(c).
func (g *Grid[U]) Row(i int) ([]U, error) {
	if i < 0 || i >= g.r {
		return nil, gridErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]U, g.c)
	copy(out, g.data[i*g.c:(i+1)*g.c])

	return out, nil
}

// Col returns a freshly built copy of column j (strided gather).
// Complexity: Time O(r), Space O(r).
func (g *Grid[U]) Col(j int) ([]U, error) {
	if j < 0 || j >= g.c {
		return nil, gridErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]U, g.r)
	for i := 0; i < g.r; i++ {
		out[i] = g.data[i*g.c+j]
	}

	return out, nil
}

// Fill sets every cell to v. Complexity: O(r*c).
func (g *Grid[U]) Fill(v U) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy (new buffer, same shape).
// Values are copied by assignment; pointer-like U values still share referents.
// Complexity: Time O(r*c), Space O(r*c).
func (g *Grid[U]) Clone() *Grid[U] {
	cp := make([]U, len(g.data))
	copy(cp, g.data)

	return &Grid[U]{r: g.r, c: g.c, data: cp}
}
