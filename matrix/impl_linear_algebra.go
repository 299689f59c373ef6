// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation
// over GF(2): element-wise addition, matrix multiplication, transpose,
// matrix-vector product and the outer product. All functions perform strict
// fail-fast validation and return wrapped sentinels on dimension mismatches.
//
// Determinism:
//   - Fast paths on *Dense walk the flat slice; fallbacks use fixed i→j(→k) order.
//   - Inputs are never mutated; every kernel allocates exactly one result.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/orthogf2/gf2"
)

// Add computes a + b element-wise (XOR). Sub is identical in GF(2).
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Add").
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for k := range res.data {
				res.data[k] = da.data[k] ^ db.data[k]
			}
			return res, nil
		}
	}

	var i, j int
	var av, bv gf2.Elem
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			res.data[i*cols+j] = gf2.Add(av, bv)
		}
	}

	return res, nil
}

// Sub is an alias for Add; subtraction equals addition in characteristic 2.
func Sub(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Mul returns the matrix product a × b over GF(2).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). Allocate Dense(a.Rows, b.Cols).
//   - Stage 2: Fast-path (both *Dense): i-k-j loop that skips zero a[i,k] and
//     XOR-accumulates row k of b into row i of the result.
//     Fallback: generic i-j-k triple loop through At.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, k int
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k = 0; k < aCols; k++ {
					if da.data[rowA+k] == gf2.Zero {
						continue // skip zero for performance
					}
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] ^= db.data[rowB+j]
					}
				}
			}
			return res, nil
		}
	}

	var av, bv, acc gf2.Elem
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = gf2.Zero
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == gf2.Zero {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				acc = gf2.Add(acc, gf2.Mul(av, bv))
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Fast-path copies *Dense data via flat indexing; fallback uses At.
//
// Errors: ErrNilMatrix (wrapped with "Transpose").
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	var v gf2.Elem
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// MatVec returns y = m·x.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "MatVec").
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x Vector) (Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make(Vector, rows)

	var i, j int
	var acc, v gf2.Elem
	var err error
	if dm, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			acc = gf2.Zero
			for j = 0; j < cols; j++ {
				acc ^= dm.data[base+j] & x[j]
			}
			y[i] = acc
		}
		return y, nil
	}

	for i = 0; i < rows; i++ {
		acc = gf2.Zero
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			acc = gf2.Add(acc, gf2.Mul(v, x[j]))
		}
		y[i] = acc
	}

	return y, nil
}

// Outer returns the len(u)×len(v) outer product u·vᵗ.
//
// Errors: ErrInvalidDimensions for empty operands (wrapped with "Outer").
// Complexity: Time O(|u|*|v|), Space O(|u|*|v|).
func Outer(u, v Vector) (*Dense, error) {
	res, err := NewDense(len(u), len(v))
	if err != nil {
		return nil, matrixErrorf(opOuter, err)
	}
	cols := len(v)
	for i, ui := range u {
		if ui == gf2.Zero {
			continue // row stays zero
		}
		copy(res.data[i*cols:(i+1)*cols], v)
	}

	return res, nil
}
