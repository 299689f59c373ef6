// SPDX-License-Identifier: MIT

package orthogonal

import (
	"math/rand"

	"github.com/holiman/uint256"

	"github.com/katalvlaran/orthogf2/matrix"
)

// Source is the random source consumed by Sample.
// *math/rand.Rand and *math/rand/v2.Rand both satisfy it.
type Source interface {
	Uint64() uint64
}

// NewSource returns a deterministic Source seeded with seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// SampleIndex draws a uniform index in [0, Order(n)).
//
// Implementation (masked rejection):
//   - Stage 1: b = bitlen(Order(n)); fill the low ⌈b/64⌉ words from src and
//     mask the top word down to b bits.
//   - Stage 2: accept if the draw is < Order(n), else redraw. Since
//     Order(n) ≥ 2^(b−1) each round accepts with probability > 1/2.
//
// Errors: ErrNeedRandSource, ErrInvalidDimension.
func SampleIndex(n int, src Source) (*uint256.Int, error) {
	if src == nil {
		return nil, orthErrorf(opSampleIndex, ErrNeedRandSource)
	}
	ord, err := Order(n)
	if err != nil {
		return nil, orthErrorf(opSampleIndex, err)
	}
	b := ord.BitLen()
	words := (b + 63) / 64
	x := new(uint256.Int)
	for {
		x.Clear()
		for w := 0; w < words; w++ {
			x[w] = src.Uint64()
		}
		if r := b % 64; r != 0 {
			x[words-1] &= 1<<uint(r) - 1
		}
		if x.Lt(ord) {
			return x, nil
		}
	}
}

// Sample returns a uniformly random element of O(n, GF(2)).
// Errors: ErrNeedRandSource, ErrInvalidDimension.
func Sample(n int, src Source) (*matrix.Dense, error) {
	i, err := SampleIndex(n, src)
	if err != nil {
		return nil, err
	}

	return element(n, i)
}
