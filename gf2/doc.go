// SPDX-License-Identifier: MIT

// Package gf2 implements arithmetic over the two-element field GF(2) = {0, 1}.
//
// What & Why:
//
//	Every other package in orthogf2 (matrices, parity, Householder
//	reflections, the orthogonal-group indexer) is built on Elem. The field is
//	tiny, so Elem is a plain uint8-backed value type: it compares with ==,
//	orders with <, and can be used directly as a map key.
//
// Arithmetic:
//
//	Add(a, b) = a XOR b        Sub = Add         Neg(a) = a
//	Mul(a, b) = a AND b        Div(a, 1) = a     Div(a, 0) → ErrDivisionByZero
//
// Complexity:
//
//	All operations are O(1) and allocation-free.
package gf2
