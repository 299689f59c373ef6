// SPDX-License-Identifier: MIT

package orthogonal

import (
	"fmt"
	"slices"

	"github.com/holiman/uint256"

	"github.com/katalvlaran/orthogf2/binary"
	"github.com/katalvlaran/orthogf2/gf2"
	"github.com/katalvlaran/orthogf2/matrix"
)

// IndexedElement returns the i-th element of O(n, GF(2)).
// For fixed n it is a bijection from [0, Order(n)) onto the group.
//
// Implementation:
//   - Stage 1: validate n, then 0 ≤ i < Order(n).
//   - Stage 2: recurse on (n−2, i / (p1·p2)) down to n = 2 (see package doc).
//
// i is never modified.
// Errors: ErrInvalidDimension, ErrIndexOutOfRange (also for nil i).
// Complexity: O(n⁴) time.
func IndexedElement(n int, i *uint256.Int) (*matrix.Dense, error) {
	ord, err := Order(n)
	if err != nil {
		return nil, orthErrorf(opIndexedElement, err)
	}
	if i == nil {
		return nil, orthErrorf(opIndexedElement, fmt.Errorf("nil index: %w", ErrIndexOutOfRange))
	}
	if !i.Lt(ord) {
		return nil, orthErrorf(opIndexedElement, fmt.Errorf("i=%s order=%s: %w", i.Dec(), ord.Dec(), ErrIndexOutOfRange))
	}

	return element(n, i)
}

// ElementAt is IndexedElement with a uint64 index.
func ElementAt(n int, i uint64) (*matrix.Dense, error) {
	return IndexedElement(n, uint256.NewInt(i))
}

// element is the unchecked recursion; i < Order(n) holds on entry.
func element(n int, i *uint256.Int) (*matrix.Dense, error) {
	o, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, err
	}
	if n == 2 {
		if i.IsZero() {
			return o, nil
		}
		return binary.Complement(o), nil
	}

	p1 := uint64(1) << uint(n-1)
	p2 := uint64(1)<<uint(n-2) - 1

	// i = (rec·p2 + i2)·p1 + i1
	var q, i1, rec, i2 uint256.Int
	q.DivMod(i, uint256.NewInt(p1), &i1)
	rec.DivMod(&q, uint256.NewInt(p2), &i2)

	child, err := element(n-2, &rec)
	if err != nil {
		return nil, err
	}
	block, err := o.View(2, 2, n-2, n-2)
	if err != nil {
		return nil, err
	}
	if err = block.CopyFrom(child); err != nil {
		return nil, err
	}

	f1, err := binary.OddIndex(n, i1.Uint64())
	if err != nil {
		return nil, err
	}
	tail, err := binary.OddIndex(n-1, i2.Uint64())
	if err != nil {
		return nil, err
	}
	f2 := append(matrix.Vector{gf2.Zero}, tail...)

	col0, err := o.Col(0)
	if err != nil {
		return nil, err
	}
	t1, err := MapVector(col0, f1)
	if err != nil {
		return nil, err
	}
	col1, err := o.Col(1)
	if err != nil {
		return nil, err
	}
	t2, err := secondColumnMap(col1, f2)
	if err != nil {
		return nil, err
	}

	t, err := matrix.Mul(t1, t2)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(t, o)
}

// secondColumnMap returns an orthogonal map sending col onto f while fixing e0.
// f[0] = 0 and f[1:] has odd parity.
//
// If f[1] = 0 a single reflection H(col + f) suffices. Otherwise the first
// index j ≥ 2 with f[j] = 0 is set in copies of both vectors and the result is
// H(f') · H(col').
func secondColumnMap(col, f matrix.Vector) (*matrix.Dense, error) {
	if f[1].IsZero() {
		h, err := col.Add(f)
		if err != nil {
			return nil, err
		}
		return Householder(h)
	}

	j := slices.Index(f[2:], gf2.Zero)
	if j < 0 {
		// all-ones tail: excluded from the i2 range, never reached.
		return nil, fmt.Errorf("second column %v: %w", f, ErrIndexOutOfRange)
	}
	j += 2
	h1 := col.Clone()
	h1[j] = gf2.One
	h2 := f.Clone()
	h2[j] = gf2.One

	a, err := Householder(h2)
	if err != nil {
		return nil, err
	}
	b, err := Householder(h1)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(a, b)
}

// IsOrthogonal reports whether m is square and mᵗm = I.
// Complexity: O(n³).
func IsOrthogonal(m *matrix.Dense) bool {
	if m == nil || m.Rows() != m.Cols() {
		return false
	}
	mt, err := matrix.Transpose(m)
	if err != nil {
		return false
	}
	p, err := matrix.Mul(mt, m)
	if err != nil {
		return false
	}
	I, err := matrix.NewIdentity(m.Rows())
	if err != nil {
		return false
	}

	return p.Equal(I)
}
