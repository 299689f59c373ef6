// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support no-copy windows (MatrixView) so a caller can fill a sub-block in place.
//   - Keep every stored value inside {0,1} (ErrNotBinary on violation).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); View: O(1); Key: O(r*c).

package matrix

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/katalvlaran/orthogf2/gf2"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxApply = "Apply" // method tag used in error wrappers
	ctxView  = "View"  // ctor tag for Dense.View
	ctxCol   = "Col"   // accessor tag for Dense.Col
	ctxRow   = "Row"   // accessor tag for Dense.Row
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w". Preserves the sentinel for errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over GF(2).
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int        // row and column counts (>0)
	data []gf2.Elem // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Stage 1 (Validate): rows>0 && cols>0; else ErrInvalidDimensions.
// Stage 2 (Prepare): allocate a zero-filled flat buffer.
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically; Zero is the zero value of gf2.Elem.
	return &Dense{r: rows, c: cols, data: make([]gf2.Elem, rows*cols)}, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and computes the row-major offset.
// Returns ErrOutOfRange wrapped with the caller's method tag.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (gf2.Elem, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return gf2.Zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf; v must be Zero or One.
// Stage 2 (Execute): write into the data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v gf2.Elem) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if v > gf2.One {
		return denseErrorf(ctxSet, row, col, ErrNotBinary)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix as the Matrix interface.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.Copy() }

// Copy returns a deep copy with the concrete type preserved.
// Complexity: O(r*c).
func (m *Dense) Copy() *Dense {
	buf := make([]gf2.Elem, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// Col returns a copy of column j as a Vector.
// Complexity: O(r).
func (m *Dense) Col(j int) (Vector, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	v := make(Vector, m.r)
	for i := 0; i < m.r; i++ {
		v[i] = m.data[i*m.c+j]
	}

	return v, nil
}

// Row returns a copy of row i as a Vector.
// Complexity: O(c).
func (m *Dense) Row(i int) (Vector, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	v := make(Vector, m.c)
	copy(v, m.data[i*m.c:(i+1)*m.c])

	return v, nil
}

// Equal reports whether m and o have the same shape and entries.
// A nil operand equals only another nil operand.
// Complexity: O(r*c).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// Key returns a compact, hashable encoding of the matrix: the shape as two
// uvarints followed by the entries packed eight per byte in row-major order.
// Two matrices have equal keys iff Equal reports true, so Key is suitable as
// a map key for uniqueness sets.
// Complexity: O(r*c).
func (m *Dense) Key() string {
	buf := make([]byte, 0, 2*binary.MaxVarintLen64+(len(m.data)+7)/8)
	buf = binary.AppendUvarint(buf, uint64(m.r))
	buf = binary.AppendUvarint(buf, uint64(m.c))

	var acc byte
	for k, v := range m.data {
		acc |= byte(v) << (k % 8)
		if k%8 == 7 {
			buf = append(buf, acc)
			acc = 0
		}
	}
	if len(m.data)%8 != 0 {
		buf = append(buf, acc) // flush the partial tail byte
	}

	return string(buf)
}

// String renders rows as lines with comma-separated entries, e.g.
// "[1, 0]\n[0, 1]\n". Intended for diagnostics and CLI output.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(m.data[base+j].String())
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
// Writes via the view reflect in the base matrix.
//
// Errors:
//   - ErrBadShape when the window is empty or leaves the base matrix.
//
// Complexity: Time O(1), Space O(1).
func (m *Dense) View(r0, c0, rows, cols int) (*MatrixView, error) {
	if r0 < 0 || c0 < 0 || rows <= 0 || cols <= 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &MatrixView{base: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v gf2.Elem) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, in row-major order.
// Returns ErrNotBinary (with coordinates) if f produced a value outside
// {0,1}; elements written before the error remain updated.
// Complexity: O(r*c).
func (m *Dense) Apply(f func(i, j int, v gf2.Elem) gf2.Elem) error {
	var i, j, base int
	var nv gf2.Elem
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if nv > gf2.One {
				return denseErrorf(ctxApply, i, j, ErrNotBinary)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// Fold reduces all entries in row-major order starting from init.
// Complexity: O(r*c).
func (m *Dense) Fold(init gf2.Elem, f func(acc, v gf2.Elem) gf2.Elem) gf2.Elem {
	acc := init
	for _, v := range m.data {
		acc = f(acc, v)
	}

	return acc
}

// Map returns a new matrix of the same shape with f applied to every entry.
// The receiver is not mutated.
// Complexity: O(r*c).
func (m *Dense) Map(f func(v gf2.Elem) gf2.Elem) *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]gf2.Elem, len(m.data))}
	for k, v := range m.data {
		out.data[k] = f(v)
	}

	return out
}

// MatrixView is a non-owning window into a Dense (shared storage).
// Not implementing Matrix interface to avoid accidental copies in ops.
type MatrixView struct {
	base *Dense // underlying storage owner
	r0   int    // top-left row offset in base
	c0   int    // top-left col offset in base
	r    int    // view height
	c    int    // view width
}

// Rows returns the number of rows in the view.
func (v *MatrixView) Rows() int { return v.r }

// Cols returns the number of columns in the view.
func (v *MatrixView) Cols() int { return v.c }

// At reads element (i,j) in the view or returns ErrOutOfRange.
// Complexity: O(1).
func (v *MatrixView) At(i, j int) (gf2.Elem, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return gf2.Zero, fmt.Errorf("MatrixView.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.base.data[(v.r0+i)*v.base.c+(v.c0+j)], nil
}

// Set writes element (i,j) through to the base matrix.
// Complexity: O(1).
func (v *MatrixView) Set(i, j int, val gf2.Elem) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if val > gf2.One {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrNotBinary)
	}
	v.base.data[(v.r0+i)*v.base.c+(v.c0+j)] = val

	return nil
}

// CopyFrom overwrites the whole window with the entries of src.
// Stage 1 (Validate): src non-nil and exactly the window's shape.
// Stage 2 (Execute): row-by-row copy; *Dense sources use copy() per row.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "CopyFrom").
// Complexity: O(rows*cols).
func (v *MatrixView) CopyFrom(src Matrix) error {
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(opCopyFrom, err)
	}
	if src.Rows() != v.r || src.Cols() != v.c {
		return matrixErrorf(opCopyFrom, ErrDimensionMismatch)
	}

	var i, j, dst int
	if ds, ok := src.(*Dense); ok {
		for i = 0; i < v.r; i++ {
			dst = (v.r0+i)*v.base.c + v.c0
			copy(v.base.data[dst:dst+v.c], ds.data[i*ds.c:(i+1)*ds.c])
		}
		return nil
	}

	var val gf2.Elem
	var err error
	for i = 0; i < v.r; i++ {
		for j = 0; j < v.c; j++ {
			if val, err = src.At(i, j); err != nil {
				return matrixErrorf(opCopyFrom, err)
			}
			if err = v.Set(i, j, val); err != nil {
				return matrixErrorf(opCopyFrom, err)
			}
		}
	}

	return nil
}
