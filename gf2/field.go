// SPDX-License-Identifier: MIT
// Package gf2 - element type and field operations.
//
// Determinism & Policy:
//   - Elem values are always normalized into {0,1}; constructors enforce it.
//   - Division by Zero is a user error and surfaces as ErrDivisionByZero,
//     never as a panic.

package gf2

import (
	"golang.org/x/exp/constraints"
)

// Elem is an element of GF(2). The zero value is Zero.
type Elem uint8

const (
	// Zero is the additive identity.
	Zero Elem = 0
	// One is the multiplicative identity and the only unit of the field.
	One Elem = 1
)

// Order is the number of elements of the field.
const Order = 2

// Source is the minimal random source used by Random.
// *math/rand.Rand and *math/rand/v2.Rand both satisfy it.
type Source interface {
	Uint64() uint64
}

// FromInt maps an integer onto GF(2) by reduction modulo 2.
// Negative inputs are normalized, so FromInt(-3) == One.
// Complexity: O(1).
func FromInt[T constraints.Integer](v T) Elem {
	// The signed remainder lies in {-1,0,1}; fold it into {0,1}.
	r := v % 2
	if r < 0 {
		r = -r
	}

	return Elem(r)
}

// FromBool returns One for true and Zero for false.
func FromBool(b bool) Elem {
	if b {
		return One
	}

	return Zero
}

// Add returns a + b (XOR).
func Add(a, b Elem) Elem { return a ^ b }

// Sub returns a − b. Subtraction and addition coincide in characteristic 2.
func Sub(a, b Elem) Elem { return a ^ b }

// Mul returns a · b (AND).
func Mul(a, b Elem) Elem { return a & b }

// Neg returns −a, which equals a in GF(2).
func Neg(a Elem) Elem { return a }

// Div returns a / b.
// Stage 1 (Validate): b must be non-zero, else ErrDivisionByZero.
// Stage 2 (Execute): the only admissible divisor is One, so the numerator
// is returned unchanged.
// Complexity: O(1).
func Div(a, b Elem) (Elem, error) {
	if b == Zero {
		return Zero, ErrDivisionByZero
	}

	return a, nil
}

// Rem returns the remainder of a / b, which is always Zero for a valid divisor.
func Rem(_, b Elem) (Elem, error) {
	if b == Zero {
		return Zero, ErrDivisionByZero
	}

	return Zero, nil
}

// Inv returns the multiplicative inverse of a.
func Inv(a Elem) (Elem, error) {
	return Div(One, a)
}

// Random draws a uniformly distributed element from src.
func Random(src Source) Elem {
	return Elem(src.Uint64() & 1)
}

// IsZero reports whether e is the additive identity.
func (e Elem) IsZero() bool { return e == Zero }

// IsOne reports whether e is the multiplicative identity.
func (e Elem) IsOne() bool { return e == One }

// Toggle returns e + One.
func (e Elem) Toggle() Elem { return e ^ One }

// String renders the element as "0" or "1".
func (e Elem) String() string {
	if e == Zero {
		return "0"
	}

	return "1"
}
