// SPDX-License-Identifier: MIT

package matrix

import (
	"strings"

	"github.com/katalvlaran/orthogf2/gf2"
)

// Vector is a fixed-length column vector over GF(2).
// Operations never resize a Vector; binary operations require equal lengths.
type Vector []gf2.Elem

// NewVector returns the zero vector of length n (n > 0).
func NewVector(n int) (Vector, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return make(Vector, n), nil
}

// UnitVector returns e_i of length n.
func UnitVector(n, i int) (Vector, error) {
	v, err := NewVector(n)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= n {
		return nil, ErrOutOfRange
	}
	v[i] = gf2.One

	return v, nil
}

// Len returns the number of entries.
func (v Vector) Len() int { return len(v) }

// Clone returns an independent copy.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Equal reports whether v and o have the same length and entries.
func (v Vector) Equal(o Vector) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}

	return true
}

// Add returns v + o entrywise. Sub is identical in GF(2).
// Errors: ErrDimensionMismatch when lengths differ.
func (v Vector) Add(o Vector) (Vector, error) {
	if len(v) != len(o) {
		return nil, matrixErrorf(opAdd, ErrDimensionMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = gf2.Add(v[i], o[i])
	}

	return out, nil
}

// Dot returns the bilinear form vᵗo = Σ v[i]·o[i] over GF(2).
// Errors: ErrDimensionMismatch when lengths differ.
func (v Vector) Dot(o Vector) (gf2.Elem, error) {
	if len(v) != len(o) {
		return gf2.Zero, matrixErrorf(opDot, ErrDimensionMismatch)
	}
	acc := gf2.Zero
	for i := range v {
		acc = gf2.Add(acc, gf2.Mul(v[i], o[i]))
	}

	return acc, nil
}

// Fold reduces all entries in index order starting from init.
func (v Vector) Fold(init gf2.Elem, f func(acc, e gf2.Elem) gf2.Elem) gf2.Elem {
	acc := init
	for _, e := range v {
		acc = f(acc, e)
	}

	return acc
}

// Map returns a new vector with f applied to every entry.
func (v Vector) Map(f func(e gf2.Elem) gf2.Elem) Vector {
	out := make(Vector, len(v))
	for i, e := range v {
		out[i] = f(e)
	}

	return out
}

// String renders the vector as a single bracketed row, e.g. "[1, 0, 0]".
func (v Vector) String() string {
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	for i, e := range v {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(e.String())
	}
	b.WriteString("]")

	return b.String()
}
