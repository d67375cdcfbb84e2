// SPDX-License-Identifier: MIT

// Package matrix - Snapshot: a plain, serializable view of a KeyedMatrix.
//
// Purpose:
//   - Give callers an encoding-friendly value (YAML via gopkg.in/yaml.v3)
//     without exposing internal storage. Writing it anywhere durable is the
//     caller's business.
//   - Provide a cheap content fingerprint (Digest) for change detection.

package matrix

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// Snapshot is a deep, detached copy of a table.
// Cells[i][j] is the value at (Columns[j], Rows[i]).
type Snapshot[C, R comparable, U any] struct {
	Name    string `yaml:"name"`
	Columns []C    `yaml:"columns"`
	Rows    []R    `yaml:"rows"`
	Default U      `yaml:"default"`
	Cells   [][]U  `yaml:"cells"`
}

// Snapshot copies keys, default and every row into a detached Snapshot.
// Complexity: Time O(R*C), Space O(R*C).
func (m *KeyedMatrix[C, R, U]) Snapshot() Snapshot[C, R, U] {
	cells := make([][]U, m.grid.r)
	for i := range cells {
		cells[i], _ = m.grid.Row(i) // i is in range by construction
	}

	return Snapshot[C, R, U]{
		Name:    m.opts.name,
		Columns: m.cols.Keys(),
		Rows:    m.rows.Keys(),
		Default: m.def,
		Cells:   cells,
	}
}

// MarshalYAML implements yaml.Marshaler by encoding the Snapshot.
func (m *KeyedMatrix[C, R, U]) MarshalYAML() (interface{}, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	return m.Snapshot(), nil
}

// EncodeYAML writes the table's Snapshot to w as a YAML document.
func (m *KeyedMatrix[C, R, U]) EncodeYAML(w io.Writer) error {
	if m == nil {
		return ErrNilMatrix
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m.Snapshot()); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}

	return enc.Close()
}

// FromSnapshot rebuilds a table from s.
// Implementation:
//   - Stage 1: New(s.Columns, s.Rows, s.Default, opts...), name from s unless overridden.
//   - Stage 2: verify keys are distinct and Cells is exactly rows×cols.
//   - Stage 3: copy cells into the grid.
//
// Errors:
//   - ErrSnapshotShape (wrapped) when Stage 2 fails.
func FromSnapshot[C, R comparable, U any](s Snapshot[C, R, U], opts ...Option) (*KeyedMatrix[C, R, U], error) {
	if s.Name != "" {
		opts = append([]Option{WithName(s.Name)}, opts...)
	}
	m := New(s.Columns, s.Rows, s.Default, opts...)

	if m.NumCols() != len(s.Columns) || m.NumRows() != len(s.Rows) {
		return nil, fmt.Errorf("FromSnapshot: duplicate keys: %w", ErrSnapshotShape)
	}
	if len(s.Cells) != m.NumRows() {
		return nil, fmt.Errorf("FromSnapshot: %d cell rows for %d row keys: %w", len(s.Cells), m.NumRows(), ErrSnapshotShape)
	}
	for i, row := range s.Cells {
		if len(row) != m.NumCols() {
			return nil, fmt.Errorf("FromSnapshot: row %d has %d cells for %d column keys: %w", i, len(row), m.NumCols(), ErrSnapshotShape)
		}
		copy(m.grid.data[i*m.grid.c:(i+1)*m.grid.c], row)
	}

	return m, nil
}

// DecodeYAML reads one YAML Snapshot document from r and rebuilds the table.
func DecodeYAML[C, R comparable, U any](r io.Reader, opts ...Option) (*KeyedMatrix[C, R, U], error) {
	var s Snapshot[C, R, U]
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("yaml decode: %w", err)
	}

	return FromSnapshot(s, opts...)
}

// Digest returns the xxhash64 of the table's rendering (see Describe).
// Tables that render identically share a digest; values whose %v forms
// coincide are indistinguishable.
func (m *KeyedMatrix[C, R, U]) Digest() uint64 {
	d := xxhash.New()
	_ = m.Describe(d) // xxhash.Digest.Write never fails

	return d.Sum64()
}
