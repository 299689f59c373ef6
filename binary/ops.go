// SPDX-License-Identifier: MIT

package binary

import "github.com/katalvlaran/orthogf2/gf2"

// Shape is any container of GF(2) entries that can be folded and mapped
// entrywise. Both matrix.Vector and *matrix.Dense satisfy Shape of themselves.
type Shape[T any] interface {
	// Fold reduces all entries in a fixed order starting from init.
	Fold(init gf2.Elem, f func(acc, e gf2.Elem) gf2.Elem) gf2.Elem
	// Map returns a new container of the same shape with f applied entrywise.
	Map(f func(e gf2.Elem) gf2.Elem) T
}

// Parity returns the XOR of all entries of x (Zero = even, One = odd).
// Complexity: O(size).
func Parity[T Shape[T]](x T) gf2.Elem {
	return x.Fold(gf2.Zero, gf2.Add)
}

// Complement returns a copy of x with every entry toggled.
// parity(Complement(x)) = parity(x) ⊕ (size mod 2).
// Complexity: O(size).
func Complement[T Shape[T]](x T) T {
	return x.Map(gf2.Elem.Toggle)
}

// Weight returns the Hamming weight of x.
// Complexity: O(size).
func Weight[T Shape[T]](x T) int {
	w := 0
	x.Fold(gf2.Zero, func(acc, e gf2.Elem) gf2.Elem {
		if e.IsOne() {
			w++
		}
		return acc
	})

	return w
}
