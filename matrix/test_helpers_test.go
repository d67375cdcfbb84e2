// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the table tests.
//   • Capture zap output in memory so log behavior can be asserted.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/maptable/matrix"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// Fixture keys used across tests.
var (
	fixtureCols = []string{"x", "y"}
	fixtureRows = []string{"p", "q"}
)

// newFixture builds the 2×2 scenario table (columns x,y; rows p,q; default 0).
func newFixture(t testing.TB, opts ...matrix.Option) *matrix.KeyedMatrix[string, string, int] {
	t.Helper()
	m := matrix.New(fixtureCols, fixtureRows, 0, opts...)
	require.NotNil(t, m)

	return m
}

// newObservedLogger returns a debug-level logger and the buffer it writes into.
func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

// mustGet reads a cell or fails the test.
func mustGet[C, R comparable, U any](t testing.TB, m *matrix.KeyedMatrix[C, R, U], col C, row R) U {
	t.Helper()
	v, err := m.Get(col, row)
	require.NoError(t, err)

	return v
}
