// SPDX-License-Identifier: MIT
package matrix_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/maptable/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSnapshot_Detached(t *testing.T) {
	m := newFixture(t, matrix.WithName("grid"))
	require.NoError(t, m.Set("y", "q", 7))

	s := m.Snapshot()
	assert.Equal(t, "grid", s.Name)
	assert.Equal(t, []string{"x", "y"}, s.Columns)
	assert.Equal(t, []string{"p", "q"}, s.Rows)
	assert.Equal(t, [][]int{{0, 0}, {0, 7}}, s.Cells)

	s.Cells[1][1] = 99
	assert.Equal(t, 7, mustGet(t, m, "y", "q"))
}

func TestYAML_RoundTrip(t *testing.T) {
	m := newFixture(t, matrix.WithName("scores"))
	require.NoError(t, m.Set("x", "q", 3))

	var buf bytes.Buffer
	require.NoError(t, m.EncodeYAML(&buf))
	assert.Contains(t, buf.String(), "name: scores")

	back, err := matrix.DecodeYAML[string, string, int](&buf)
	require.NoError(t, err)
	assert.Equal(t, m.String(), back.String())
	assert.Equal(t, m.Snapshot(), back.Snapshot())
}

// yaml.Marshal picks up KeyedMatrix through the yaml.Marshaler interface.
func TestYAML_Marshaler(t *testing.T) {
	m := newFixture(t)
	out, err := yaml.Marshal(m)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, yaml.Unmarshal(out, &generic))
	assert.Equal(t, []any{"x", "y"}, generic["columns"])
	assert.Equal(t, 0, generic["default"])
}

func TestFromSnapshot_ShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		s    matrix.Snapshot[string, string, int]
	}{
		{"missing row", matrix.Snapshot[string, string, int]{
			Columns: []string{"a"}, Rows: []string{"r1", "r2"}, Cells: [][]int{{1}},
		}},
		{"short row", matrix.Snapshot[string, string, int]{
			Columns: []string{"a", "b"}, Rows: []string{"r1"}, Cells: [][]int{{1}},
		}},
		{"duplicate keys", matrix.Snapshot[string, string, int]{
			Columns: []string{"a", "a"}, Rows: []string{"r1"}, Cells: [][]int{{1, 2}},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.FromSnapshot(tc.s)
			require.ErrorIs(t, err, matrix.ErrSnapshotShape)
		})
	}
}

func TestDecodeYAML_Malformed(t *testing.T) {
	_, err := matrix.DecodeYAML[string, string, int](strings.NewReader("columns: [a\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yaml decode")
}

func TestDigest(t *testing.T) {
	a := newFixture(t)
	b := newFixture(t)
	assert.Equal(t, a.Digest(), b.Digest())

	require.NoError(t, b.Set("x", "p", 1))
	assert.NotEqual(t, a.Digest(), b.Digest())

	require.NoError(t, b.Set("x", "p", 0))
	assert.Equal(t, a.Digest(), b.Digest())
}
