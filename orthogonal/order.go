// SPDX-License-Identifier: MIT

package orthogonal

import (
	"fmt"

	"github.com/holiman/uint256"
)

// MaxDimension is the largest n whose group order fits in 256 bits.
// |O(22, GF(2))| < 2^231 while |O(24, GF(2))| ≥ 2^275.
const MaxDimension = 22

// validateDimension enforces n > 0, n even, n ≤ MaxDimension.
func validateDimension(n int) error {
	if n <= 0 || n%2 != 0 || n > MaxDimension {
		return fmt.Errorf("n=%d: %w", n, ErrInvalidDimension)
	}

	return nil
}

// Order returns |O(n, GF(2))| for even n in [2, MaxDimension].
//
// Implementation:
//   - Stage 1: validate n; k = n/2.
//   - Stage 2: start from 2^(k²) and multiply in (4^j − 1) for j = 1..k−1.
//
// Examples: Order(2) = 2, Order(4) = 48, Order(6) = 23040.
// Errors: ErrInvalidDimension.
// Complexity: O(k) 256-bit multiplications.
func Order(n int) (*uint256.Int, error) {
	if err := validateDimension(n); err != nil {
		return nil, orthErrorf(opOrder, err)
	}
	k := n / 2
	ord := new(uint256.Int).Lsh(uint256.NewInt(1), uint(k*k))
	var f uint256.Int
	for j := 1; j < k; j++ {
		f.SetUint64(1<<(2*j) - 1)
		ord.Mul(ord, &f)
	}

	return ord, nil
}

// OrderUint64 is Order narrowed to uint64.
// Errors: ErrInvalidDimension, ErrIndexOverflow (n ≥ 12).
func OrderUint64(n int) (uint64, error) {
	ord, err := Order(n)
	if err != nil {
		return 0, err
	}
	if !ord.IsUint64() {
		return 0, orthErrorf(opOrderUint64, fmt.Errorf("n=%d order=%s: %w", n, ord.Dec(), ErrIndexOverflow))
	}

	return ord.Uint64(), nil
}
