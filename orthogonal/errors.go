// SPDX-License-Identifier: MIT
// Package orthogonal: sentinel errors.
//
// Every message is prefixed with "orthogonal: ..." and wrapped at call sites
// with an operation tag via orthErrorf. Callers branch with errors.Is.

package orthogonal

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension indicates n ≤ 0, odd n, or n > MaxDimension.
	ErrInvalidDimension = errors.New("orthogonal: dimension must be even and in [2, MaxDimension]")

	// ErrIndexOutOfRange indicates a group index outside [0, Order(n)) or nil.
	ErrIndexOutOfRange = errors.New("orthogonal: group index out of range")

	// ErrLengthMismatch indicates vectors of differing length in MapVector.
	ErrLengthMismatch = errors.New("orthogonal: vector length mismatch")

	// ErrParityMismatch indicates a vector of the wrong parity: odd for
	// Householder, even for MapVector.
	ErrParityMismatch = errors.New("orthogonal: vector parity mismatch")

	// ErrIndexOverflow indicates a value that does not fit the requested
	// fixed-width integer (OrderUint64).
	ErrIndexOverflow = errors.New("orthogonal: value overflows uint64")

	// ErrNeedRandSource is returned by Sample and SampleIndex for a nil source.
	ErrNeedRandSource = errors.New("orthogonal: random source is required")
)

// Operation name constants for unified error wrapping.
const (
	opOrder          = "Order"
	opOrderUint64    = "OrderUint64"
	opHouseholder    = "Householder"
	opMapVector      = "MapVector"
	opIndexedElement = "IndexedElement"
	opSampleIndex    = "SampleIndex"
)

// orthErrorf wraps err with an operation tag, preserving it via %w.
func orthErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
