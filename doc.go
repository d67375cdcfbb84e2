// Package maptable is home to a small, generic two-dimensional table whose
// cells are addressed by a column key and a row key instead of integer indices.
//
// What's inside:
//
//	matrix/             — KeyedMatrix, KeySpace and the row-major Grid storage
//	examples/scoreboard — runnable demo
//
// Quick ASCII example:
//
//	        x   y
//	    p [ 0   0 ]
//	    q [ 0   7 ]
//
// is a 2×2 table with columns {x, y}, rows {p, q}, default 0 and (y, q) = 7.
//
//	go get github.com/katalvlaran/maptable/matrix
package maptable
