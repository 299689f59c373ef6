// SPDX-License-Identifier: MIT

// Package matrix provides dense vectors and matrices over GF(2).
//
// What & Why:
//
//	Dense is a concrete row-major implementation of the Matrix interface,
//	storing gf2.Elem values in a flat slice (offset = i*cols + j). Vector is
//	a fixed-length column vector. Together they form the numeric substrate
//	of the orthogonal-group indexer: identity/zero construction, transpose,
//	multiplication, element-wise addition, equality, a hashable Key, and
//	write-through sub-block views.
//
// Error policy:
//
//	Public accessors never panic on user input; they return the sentinels in
//	errors.go, wrapped with an operation tag. Match with errors.Is.
//
// Complexity quicksheet:
//
//	NewDense O(r*c); At/Set O(1); Clone O(r*c); View O(1);
//	Add O(r*c); Mul O(r*n*c); Transpose O(r*c); MatVec O(r*c).
package matrix
