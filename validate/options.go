// SPDX-License-Identifier: MIT
// Package: orthogf2/validate
//
// options.go: functional options for Run.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs
//     (nil values, non-positive counts). Run itself never panics.
//   • Range and probe checks that depend on n happen inside Run and are
//     reported as errors.

package validate

import (
	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/orthogf2/matrix"
)

// Option customizes a Run.
type Option func(*config)

// WithRange restricts the sweep to indices in [lo, hi). Both bounds are copied.
// Panics on nil bounds.
func WithRange(lo, hi *uint256.Int) Option {
	if lo == nil || hi == nil {
		panic("validate: WithRange(nil)")
	}
	lo, hi = lo.Clone(), hi.Clone()
	return func(c *config) {
		c.lo, c.hi = lo, hi
	}
}

// WithWorkers sets the maximum number of concurrent workers. Panics if k <= 0.
func WithWorkers(k int) Option {
	if k <= 0 {
		panic("validate: WithWorkers(k<=0)")
	}
	return func(c *config) {
		c.workers = k
	}
}

// WithProbe sets the vector v used for the mean-weight statistic of M·v.
// Panics on an empty vector.
func WithProbe(v matrix.Vector) Option {
	if len(v) == 0 {
		panic("validate: WithProbe(empty)")
	}
	v = v.Clone()
	return func(c *config) {
		c.probe = v
	}
}

// WithProgressEvery logs progress every step checked elements. Panics on 0.
func WithProgressEvery(step uint64) Option {
	if step == 0 {
		panic("validate: WithProgressEvery(0)")
	}
	return func(c *config) {
		c.progressEvery = step
	}
}

// WithRegisterer exports sweep metrics through reg. Panics on nil.
func WithRegisterer(reg prometheus.Registerer) Option {
	if reg == nil {
		panic("validate: WithRegisterer(nil)")
	}
	return func(c *config) {
		c.reg = reg
	}
}

// WithoutUniqueness disables the duplicate check and its memory cost.
func WithoutUniqueness() Option {
	return func(c *config) {
		c.unique = false
	}
}
