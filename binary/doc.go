// SPDX-License-Identifier: MIT

// Package binary provides shape-generic bit operations over GF(2) containers
// and the odd-parity bit-vector indexer.
//
// What:
//
//   - Parity:     XOR-fold of every entry of a vector or matrix.
//   - Complement: every entry toggled (X + J, J the all-ones object).
//   - Weight:     Hamming weight (number of One entries).
//   - Bits:       lazy, restartable LSB-first iterator over the low n bits of k.
//   - OddIndex:   bijection [0, 2^(n−1)) → {v ∈ GF(2)^n : parity(v) = 1}.
//   - OddRank:    inverse of OddIndex.
//
// Why:
//
//   - Parity and Complement are the two primitives the orthogonal-group
//     construction needs on both vectors and matrices; one generic body keeps
//     them identical on both shapes.
//   - OddIndex enumerates candidate first/second columns of a group element.
//
// Layout:
//
//	i   = b_{n-2} … b_1 b_0          (n−1 bits, verbatim)
//	k   = b_{n-2} … b_1 b_0 c        (c forces odd popcount)
//	v   = [c, b_0, b_1, …, b_{n-2}]  (LSB first)
//
// Complexity: Parity/Complement/Weight are O(size); OddIndex and OddRank O(n).
package binary
