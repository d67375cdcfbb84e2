// Package matrix offers a keyed, fixed-shape two-dimensional table.
//
// The matrix package provides:
//
//   - KeyedMatrix: cells addressed by a (column key, row key) pair of any
//     comparable types, backed by a dense row-major Grid.
//   - KeySpace: the immutable key → index mapping behind each axis.
//     Duplicate keys collapse to their last occurrence.
//   - Default-value reads for absent keys, with a bounds mode that rejects
//     reads where both keys are absent (ErrInvalidKey).
//   - Copy-returning Row/Column slices, a deterministic String rendering,
//     YAML snapshots and an xxhash Digest.
//
// Shape is fixed at New: no keys are added or removed afterwards.
// A KeyedMatrix does no locking; guard shared instances externally.
//
// See the examples in this package for usage patterns.
package matrix
