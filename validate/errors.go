// SPDX-License-Identifier: MIT
// Package validate: sentinel errors.

package validate

import "errors"

var (
	// ErrNotOrthogonal reports an element with MᵗM != I.
	ErrNotOrthogonal = errors.New("validate: element is not orthogonal")

	// ErrDuplicate reports two indices producing the same matrix.
	ErrDuplicate = errors.New("validate: duplicate element")

	// ErrInvalidRange reports lo ≥ hi or hi > Order(n).
	ErrInvalidRange = errors.New("validate: invalid index range")

	// ErrTooLarge reports a range too large to sweep: above maxUniqueSpan
	// with the uniqueness set on, or beyond uint64 in any case.
	ErrTooLarge = errors.New("validate: range too large")

	// ErrInvalidProbe reports a probe vector whose length differs from n.
	ErrInvalidProbe = errors.New("validate: probe length must equal n")
)
