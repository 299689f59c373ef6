// SPDX-License-Identifier: MIT

package binary

import (
	"fmt"
	"iter"
	"math/bits"
	"slices"

	"github.com/katalvlaran/orthogf2/gf2"
	"github.com/katalvlaran/orthogf2/matrix"
)

// maxBits bounds every bit length handled here: the index is a uint64.
const maxBits = 64

// Bits yields the low n bits of k, least-significant first, as field elements.
// The sequence is lazy, finite and restartable; n ≤ 0 yields nothing and
// positions ≥ 64 yield Zero.
func Bits(n int, k uint64) iter.Seq[gf2.Elem] {
	return func(yield func(gf2.Elem) bool) {
		for j := 0; j < n; j++ {
			if !yield(gf2.Elem((k >> uint(j)) & 1)) {
				return
			}
		}
	}
}

// OddIndex returns the i-th length-n vector of odd parity.
//
// Implementation:
//   - Stage 1: validate n ∈ [1, 64] and i < 2^(n−1).
//   - Stage 2: k = (i<<1) | c where c = 1 iff popcount(i) is even, so that
//     popcount(k) is odd. Materialize Bits(n, k).
//
// Errors: ErrInvalidLength, ErrIndexOutOfRange.
// Complexity: O(n).
func OddIndex(n int, i uint64) (matrix.Vector, error) {
	if n <= 0 || n > maxBits {
		return nil, fmt.Errorf("OddIndex(n=%d): %w", n, ErrInvalidLength)
	}
	if limit := uint64(1) << uint(n-1); i >= limit {
		return nil, fmt.Errorf("OddIndex(n=%d, i=%d): limit %d: %w", n, i, limit, ErrIndexOutOfRange)
	}
	var c uint64
	if bits.OnesCount64(i)%2 == 0 {
		c = 1
	}

	return matrix.Vector(slices.Collect(Bits(n, i<<1|c))), nil
}

// OddRank is the inverse of OddIndex: for an odd-parity v of length n it
// returns the unique i with OddIndex(n, i) = v.
//
// Errors: ErrInvalidLength, ErrParityMismatch.
// Complexity: O(n).
func OddRank(v matrix.Vector) (uint64, error) {
	if len(v) == 0 || len(v) > maxBits {
		return 0, fmt.Errorf("OddRank(len=%d): %w", len(v), ErrInvalidLength)
	}
	if Parity(v).IsZero() {
		return 0, fmt.Errorf("OddRank(%v): %w", v, ErrParityMismatch)
	}
	var k uint64
	for j, e := range v {
		k |= uint64(e&1) << uint(j)
	}

	return k >> 1, nil
}
