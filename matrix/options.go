// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for KeyedMatrix.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import "go.uber.org/zap"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRestrictBounds makes Get fail with ErrInvalidKey when BOTH keys
	// are absent. GetBounded overrides it per call.
	DefaultRestrictBounds = true

	// DefaultName labels a table in logs and snapshots.
	DefaultName = "matrix"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilLogger = "matrix: WithLogger: logger must be non-nil"
	panicEmptyName = "matrix: WithName: name must be non-empty"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	restrictBounds bool        // DefaultRestrictBounds
	name           string      // DefaultName
	logger         *zap.Logger // zap.NewNop() unless WithLogger
}

// WithRestrictBounds makes Get reject reads where both keys are absent (default).
func WithRestrictBounds() Option {
	return func(o *Options) { o.restrictBounds = true }
}

// WithPermissiveBounds makes Get fall back to the default value for any
// absent key, never failing ("probe" reads).
func WithPermissiveBounds() Option {
	return func(o *Options) { o.restrictBounds = false }
}

// WithLogger attaches a structured logger used for debug diagnostics
// (rejected accesses, collapsed duplicate keys).
// Panics when l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithName sets the label carried in log fields and snapshots.
// Panics when name is empty.
func WithName(name string) Option {
	if name == "" {
		panic(panicEmptyName)
	}

	return func(o *Options) { o.name = name }
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		restrictBounds: DefaultRestrictBounds,
		name:           DefaultName,
		logger:         zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
