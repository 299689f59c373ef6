// SPDX-License-Identifier: MIT
// Package: orthogf2/validate
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   • range         = [0, Order(n))
//   • workers       = runtime.GOMAXPROCS(0)
//   • probe         = e0 + e1 (resolved once n is known)
//   • progressEvery = 1<<16 elements
//   • registerer    = nil (no metrics)
//   • unique        = true

package validate

import (
	"runtime"

	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/orthogf2/matrix"
)

const (
	defaultProgressEvery = uint64(1) << 16

	// maxUniqueSpan bounds the range size when the uniqueness set is on.
	maxUniqueSpan = uint64(1) << 40

	// chunksPerWorker is the number of contiguous chunks scheduled per worker.
	chunksPerWorker = 4
)

// config aggregates all knobs of Run. Built once, read-only afterwards.
type config struct {
	lo, hi        *uint256.Int // nil → defaults
	workers       int
	probe         matrix.Vector // nil → e0 + e1
	progressEvery uint64
	reg           prometheus.Registerer
	unique        bool
}

// newConfig applies opts in order over the defaults; last wins.
func newConfig(opts ...Option) config {
	cfg := config{
		workers:       runtime.GOMAXPROCS(0),
		progressEvery: defaultProgressEvery,
		unique:        true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// defaultProbe returns e0 + e1 of length n (n ≥ 2).
func defaultProbe(n int) matrix.Vector {
	v := make(matrix.Vector, n)
	v[0], v[1] = 1, 1

	return v
}
