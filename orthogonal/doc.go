// SPDX-License-Identifier: MIT

// Package orthogonal enumerates the orthogonal group O(n, GF(2)) for even n:
// the n×n matrices M over GF(2) with MᵗM = I.
//
// What:
//
//   - Order(n):             |O(n, GF(2))| = 2^(k²)·∏_{j=1}^{k−1}(4^j − 1), k = n/2.
//   - Householder(h):       H = I + h·hᵗ for even-parity h (H·H = I).
//   - MapVector(v1, v2):    orthogonal M with M·v1 = v2 for odd-parity v1, v2.
//   - IndexedElement(n, i): bijection [0, Order(n)) → O(n, GF(2)).
//   - Sample(n, src):       uniform group element from a random source.
//
// Indexing scheme:
//
//	i = i_rec·(p1·p2) + i2·p1 + i1      p1 = 2^(n−1), p2 = 2^(n−2) − 1
//
//	i1    picks the new first column  f1 = OddIndex(n, i1)
//	i2    picks the new second column f2 = [0] ++ OddIndex(n−1, i2)
//	i_rec picks the (n−2)-dimensional element in the bottom-right block
//
// The element is t1·t2·S where S is the identity with the child written into
// its bottom-right block, t2 moves the second column onto f2 while fixing e0,
// and t1 moves e0 onto f1.
//
// Indices are 256-bit (github.com/holiman/uint256), which covers every even
// n ≤ MaxDimension. uint64 wrappers (ElementAt, OrderUint64) serve n ≤ 10.
//
// Complexity:
//
//	IndexedElement is O(n⁴) time (n/2 levels, each a constant number of n×n
//	products) and O(n²) space per level. Order is O(n) big-int multiplies.
//
// Errors:
//
//	All functions are pure and fail fast with the sentinels in errors.go.
//	No partial results are ever returned.
package orthogonal
