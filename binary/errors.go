// SPDX-License-Identifier: MIT
// Package binary: sentinel errors.

package binary

import "errors"

var (
	// ErrIndexOutOfRange is returned by OddIndex when i ≥ 2^(n−1).
	ErrIndexOutOfRange = errors.New("binary: index out of range")

	// ErrInvalidLength is returned for bit lengths outside [1, 64].
	ErrInvalidLength = errors.New("binary: length must be in [1, 64]")

	// ErrParityMismatch is returned by OddRank for an even-parity vector.
	ErrParityMismatch = errors.New("binary: vector parity mismatch")
)
