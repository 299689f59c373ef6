// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/orthogf2/gf2"

// Matrix represents a two-dimensional mutable array of GF(2) elements.
// Kernels accept Matrix and take a flat-slice fast path for *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (gf2.Elem, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v gf2.Elem) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
