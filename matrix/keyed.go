// SPDX-License-Identifier: MIT

// Package matrix - KeyedMatrix: a fixed-shape grid addressed by two key spaces.
//
// Purpose:
//   - Address cells by (column key, row key) instead of integer indices.
//   - Answer reads for absent keys with a default value (sparse-looking access)
//     while storing a dense rows×cols Grid underneath.
//   - Keep shape and key spaces immutable after New; only cells change.
//
// Bounds policy:
//   - Get / GetBounded with restrict=true: ErrInvalidKey only when BOTH keys
//     are absent; one absent key yields the default value.
//   - restrict=false: never fails, absent keys yield the default value.
//   - Set / Row / Column: any absent key is ErrInvalidKey.
//
// Concurrency:
//   - None. Callers sharing an instance across goroutines must lock around it.

package matrix

import "go.uber.org/zap"

// ---------- error context tags ----------

const (
	ctxGet    = "Get"
	ctxKSet   = "Set"
	ctxKRow   = "Row"
	ctxColumn = "Column"
)

// KeyedMatrix is a two-dimensional table with column keys C, row keys R and values U.
// The zero value is not usable; construct with New.
type KeyedMatrix[C, R comparable, U any] struct {
	cols *KeySpace[C] // column key -> grid column
	rows *KeySpace[R] // row key -> grid row
	grid *Grid[U]     // rows.Len() × cols.Len(), row-major
	def  U            // fill value and fallback for absent keys
	opts Options
}

// Compile-time assertion for interface conformance.
var _ Table[string, string, int] = (*KeyedMatrix[string, string, int])(nil)

// New builds a table whose key spaces enumerate cols and rows and whose every
// cell holds def.
// Implementation:
//   - Stage 1: build column and row key spaces (duplicates collapse, last occurrence wins).
//   - Stage 2: allocate a rows×cols grid filled with def.
//
// Behavior highlights:
//   - nil or empty key sequences give zero columns/rows; New never fails.
//   - Collapsed duplicates are reported at debug level.
//
// Complexity:
//   - Time O(len(cols) + len(rows) + R*C), Space O(R*C).
func New[C, R comparable, U any](cols []C, rows []R, def U, opts ...Option) *KeyedMatrix[C, R, U] {
	o := gatherOptions(opts...)
	cs := NewKeySpace(cols)
	rs := NewKeySpace(rows)
	grid, _ := NewGrid(rs.Len(), cs.Len(), def) // key-space sizes are never negative

	if d := cs.duplicates(len(cols)) + rs.duplicates(len(rows)); d > 0 {
		o.logger.Debug("collapsed duplicate keys",
			zap.String("table", o.name),
			zap.Int("col_duplicates", cs.duplicates(len(cols))),
			zap.Int("row_duplicates", rs.duplicates(len(rows))),
		)
	}

	return &KeyedMatrix[C, R, U]{cols: cs, rows: rs, grid: grid, def: def, opts: o}
}

// NumRows returns the number of distinct row keys.
func (m *KeyedMatrix[C, R, U]) NumRows() int { return m.rows.Len() }

// NumCols returns the number of distinct column keys.
func (m *KeyedMatrix[C, R, U]) NumCols() int { return m.cols.Len() }

// Shape returns (rows, cols).
func (m *KeyedMatrix[C, R, U]) Shape() (rows, cols int) { return m.grid.Shape() }

// Default returns the fill/fallback value.
func (m *KeyedMatrix[C, R, U]) Default() U { return m.def }

// HasColumn reports whether col is a member of the column key space.
func (m *KeyedMatrix[C, R, U]) HasColumn(col C) bool { return m.cols.Contains(col) }

// HasRow reports whether row is a member of the row key space.
func (m *KeyedMatrix[C, R, U]) HasRow(row R) bool { return m.rows.Contains(row) }

// ColumnKeys returns the column keys in ascending index order (copy).
func (m *KeyedMatrix[C, R, U]) ColumnKeys() []C { return m.cols.Keys() }

// RowKeys returns the row keys in ascending index order (copy).
func (m *KeyedMatrix[C, R, U]) RowKeys() []R { return m.rows.Keys() }

// ColumnSpace exposes the (immutable) column key space.
func (m *KeyedMatrix[C, R, U]) ColumnSpace() *KeySpace[C] { return m.cols }

// RowSpace exposes the (immutable) row key space.
func (m *KeyedMatrix[C, R, U]) RowSpace() *KeySpace[R] { return m.rows }

// Get reads (col, row) under the table's configured bounds mode
// (DefaultRestrictBounds unless overridden by WithPermissiveBounds).
func (m *KeyedMatrix[C, R, U]) Get(col C, row R) (U, error) {
	if m == nil {
		var zero U
		return zero, ErrNilMatrix
	}

	return m.GetBounded(col, row, m.opts.restrictBounds)
}

// GetBounded reads (col, row) with an explicit bounds mode.
// Implementation:
//   - Stage 1: resolve both keys.
//   - Stage 2: both absent && restrict -> ErrInvalidKey.
//   - Stage 3: any absent key -> default value.
//   - Stage 4: load the resolved cell.
//
// Errors:
//   - ErrInvalidKey (wrapped) only in Stage 2; ErrNilMatrix on nil receiver.
//
// Complexity:
//   - Time O(1) expected, Space O(1).
func (m *KeyedMatrix[C, R, U]) GetBounded(col C, row R, restrict bool) (U, error) {
	if m == nil {
		var zero U
		return zero, ErrNilMatrix
	}
	c, validCol := m.cols.slotOf(col)
	r, validRow := m.rows.slotOf(row)

	// At least one of the keys has to resolve under restricted bounds.
	if !validCol && !validRow && restrict {
		m.reject(ctxGet, col, row)
		var zero U
		return zero, keyedErrorf(ctxGet, col, row, ErrInvalidKey)
	}
	if !validCol || !validRow {
		return m.def, nil
	}

	return m.grid.data[r*m.grid.c+c], nil
}

// Lookup is a permissive read: absent keys yield the default value, never an error.
func (m *KeyedMatrix[C, R, U]) Lookup(col C, row R) U {
	v, _ := m.GetBounded(col, row, false)
	return v
}

// Set overwrites exactly one cell.
// Both keys must be members; otherwise ErrInvalidKey and nothing is written.
// Complexity: Time O(1) expected, Space O(1).
func (m *KeyedMatrix[C, R, U]) Set(col C, row R, v U) error {
	if m == nil {
		return ErrNilMatrix
	}
	c, validCol := m.cols.slotOf(col)
	r, validRow := m.rows.slotOf(row)
	if !validCol || !validRow {
		m.reject(ctxKSet, col, row)
		return keyedErrorf(ctxKSet, col, row, ErrInvalidKey)
	}

	return m.grid.Set(r, c, v)
}

// Row returns every value along row, in column-index order.
// The result is an independent copy of internal storage.
// Complexity: Time O(cols), Space O(cols).
func (m *KeyedMatrix[C, R, U]) Row(row R) ([]U, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	r, ok := m.rows.slotOf(row)
	if !ok {
		m.reject(ctxKRow, nil, row)
		return nil, keyErrorf(ctxKRow, row, ErrInvalidKey)
	}

	return m.grid.Row(r)
}

// Column returns every value along col, in row-index order (fresh slice).
// Complexity: Time O(rows), Space O(rows).
func (m *KeyedMatrix[C, R, U]) Column(col C) ([]U, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	c, ok := m.cols.slotOf(col)
	if !ok {
		m.reject(ctxColumn, col, nil)
		return nil, keyErrorf(ctxColumn, col, ErrInvalidKey)
	}

	return m.grid.Col(c)
}

// Cells returns every cell in row-major order (rows by index, then columns by index).
// Complexity: Time O(R*C), Space O(R*C).
func (m *KeyedMatrix[C, R, U]) Cells() []Cell[C, R, U] {
	colKeys, rowKeys := m.cols.keys, m.rows.keys
	out := make([]Cell[C, R, U], 0, len(m.grid.data))
	for i, rk := range rowKeys {
		base := i * m.grid.c
		for j, ck := range colKeys {
			out = append(out, Cell[C, R, U]{Col: ck, Row: rk, Value: m.grid.data[base+j]})
		}
	}

	return out
}

// Clone returns a table with the same key spaces and default and a deep copy
// of the grid. Key spaces are immutable and therefore shared.
func (m *KeyedMatrix[C, R, U]) Clone() *KeyedMatrix[C, R, U] {
	return &KeyedMatrix[C, R, U]{
		cols: m.cols,
		rows: m.rows,
		grid: m.grid.Clone(),
		def:  m.def,
		opts: m.opts,
	}
}

// reject logs a rejected access; key fields are omitted when nil.
func (m *KeyedMatrix[C, R, U]) reject(op string, col, row any) {
	fields := []zap.Field{zap.String("table", m.opts.name), zap.String("op", op)}
	if col != nil {
		fields = append(fields, zap.Any("col", col))
	}
	if row != nil {
		fields = append(fields, zap.Any("row", row))
	}
	m.opts.logger.Debug("invalid key", fields...)
}
