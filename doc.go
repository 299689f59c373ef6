// Package orthogf2 indexes, samples and validates the orthogonal group
// O(n, GF(2)): the n×n matrices M over the two-element field with MᵗM = I,
// for even n.
//
// 🚀 What is orthogf2?
//
//	A small, dependency-light toolkit that brings together:
//		• Field arithmetic: GF(2) elements with explicit Add/Mul/Div
//		• Dense GF(2) matrices & vectors: identity, transpose, product, views
//		• Bit tools: parity, complement, odd-parity vector indexing
//		• Group structure: closed-form order, Householder reflections
//		• Indexing: a bijection from [0, |O(n, GF(2))|) onto the group
//		• Sampling & validation: uniform draws, concurrent whole-group checks
//
// ✨ Why orthogf2?
//
//   - Every element has a stable integer name, so groups can be enumerated,
//     sharded and sampled without storing them
//   - Pure functions with fail-fast sentinel errors; no panics on user input
//   - 256-bit indices cover every even n up to orthogonal.MaxDimension
//
// Packages, leaves first:
//
//	gf2/        - field element Elem and its arithmetic
//	matrix/     - Dense, Vector, MatrixView and GF(2) kernels
//	binary/     - Parity, Complement, Weight, Bits, OddIndex, OddRank
//	orthogonal/ - Order, Householder, MapVector, IndexedElement, Sample
//	validate/   - concurrent orthogonality & uniqueness sweep
//	cmd/orthogf2 - CLI: order, element, sample, validate
//
// Quick example (n = 2):
//
//	IndexedElement(2, 0) = [1 0]    IndexedElement(2, 1) = [0 1]
//	                       [0 1]                           [1 0]
//
//	go install github.com/katalvlaran/orthogf2/cmd/orthogf2@latest
package orthogf2
