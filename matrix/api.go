// SPDX-License-Identifier: MIT
// Package matrix: public constructors and thin facades.
//
// Purpose:
//   - Provide intention-revealing entry points (NewIdentity, NewOnes, ...).
//   - Each facade delegates to the canonical constructor.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/orthogf2/gf2"
)

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	// Direct offset writes; shape is already validated.
	for i := 0; i < n; i++ {
		I.data[i*n+i] = gf2.One
	}

	return I, nil
}

// NewOnes returns the rows×cols all-ones matrix J.
// Complexity: O(r*c).
func NewOnes(rows, cols int) (*Dense, error) {
	J, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for k := range J.data {
		J.data[k] = gf2.One
	}

	return J, nil
}

// NewFromRows builds a *Dense from a rectangular slice of rows.
// Accepts any integer-valued entries already in {0,1}.
//
// Errors:
//   - ErrInvalidDimensions for an empty input or empty first row.
//   - ErrBadShape for ragged rows.
//   - ErrNotBinary for entries outside {0,1}.
//
// Complexity: O(r*c).
func NewFromRows(rows [][]gf2.Elem) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), c, ErrBadShape))
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opFromRows, err)
			}
		}
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ColumnMatrix lifts v into an n×1 matrix.
func ColumnMatrix(v Vector) (*Dense, error) {
	m, err := NewDense(len(v), 1)
	if err != nil {
		return nil, err
	}
	copy(m.data, v)

	return m, nil
}

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (*Dense, error) { return Transpose(m) }
