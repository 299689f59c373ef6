// SPDX-License-Identifier: MIT

package orthogonal

import (
	"fmt"

	"github.com/katalvlaran/orthogf2/binary"
	"github.com/katalvlaran/orthogf2/matrix"
)

// Householder returns the GF(2) reflection H = I + h·hᵗ, i.e. v ↦ v + ⟨v,h⟩h.
// h must have even parity; then hᵗh = 0 and H·H = I.
//
// Errors: ErrParityMismatch for odd h; matrix.ErrInvalidDimensions for empty h.
// Complexity: O(n²).
func Householder(h matrix.Vector) (*matrix.Dense, error) {
	if binary.Parity(h).IsOne() {
		return nil, orthErrorf(opHouseholder, fmt.Errorf("h=%v: %w", h, ErrParityMismatch))
	}
	I, err := matrix.NewIdentity(len(h))
	if err != nil {
		return nil, orthErrorf(opHouseholder, err)
	}
	hh, err := matrix.Outer(h, h)
	if err != nil {
		return nil, orthErrorf(opHouseholder, err)
	}

	return matrix.Add(I, hh)
}

// MapVector returns an orthogonal M with M·v1 = v2 for odd-parity v1, v2.
//
// Implementation:
//   - Stage 1: validate equal length and odd parity of both inputs.
//   - Stage 2: d = v2 − v1 (even parity).
//     If v1·v2 = 0: M = Householder(d).
//     Else:         M = Complement(Householder(Complement(d))).
//
// The second branch relies on even length: Complement(d) then stays even.
// v1 = v2 is not special-cased; both branches return I for it.
//
// Errors: ErrLengthMismatch, ErrParityMismatch.
// Complexity: O(n²).
func MapVector(v1, v2 matrix.Vector) (*matrix.Dense, error) {
	if len(v1) != len(v2) {
		return nil, orthErrorf(opMapVector, fmt.Errorf("len %d vs %d: %w", len(v1), len(v2), ErrLengthMismatch))
	}
	if binary.Parity(v1).IsZero() || binary.Parity(v2).IsZero() {
		return nil, orthErrorf(opMapVector, fmt.Errorf("v1=%v v2=%v: %w", v1, v2, ErrParityMismatch))
	}
	d, err := v2.Add(v1)
	if err != nil {
		return nil, orthErrorf(opMapVector, err)
	}
	dot, err := v1.Dot(v2)
	if err != nil {
		return nil, orthErrorf(opMapVector, err)
	}
	if dot.IsZero() {
		return Householder(d)
	}
	h, err := Householder(binary.Complement(d))
	if err != nil {
		return nil, orthErrorf(opMapVector, err)
	}

	return binary.Complement(h), nil
}
