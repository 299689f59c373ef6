// SPDX-License-Identifier: MIT

// Package validate sweeps a range of group indices and checks that every
// produced element of O(n, GF(2)) is orthogonal and that no two indices
// produce the same matrix.
//
// What:
//
//   - Run(ctx, n, opts...) walks [lo, hi) ⊆ [0, Order(n)) with a bounded
//     worker pool (golang.org/x/sync/errgroup), checking MᵗM = I and
//     inserting M.Key() into a shared uniqueness set.
//   - Along the way it accumulates the mean Hamming weight of M·probe
//     (default probe e0 + e1).
//   - Progress is logged through go-log and optionally exported as
//     Prometheus metrics.
//
// Failure model:
//
//	The first violation cancels the sweep. The returned error wraps
//	ErrNotOrthogonal or ErrDuplicate with the offending index; context
//	cancellation surfaces as ctx.Err().
//
// Memory:
//
//	The uniqueness set holds one Key per element, so whole-group sweeps are
//	practical up to n = 8 (≈1.9e8 keys). WithoutUniqueness drops the set.
package validate
