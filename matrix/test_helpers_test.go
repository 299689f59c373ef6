// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels.
//   • Force fallback (non-*Dense) paths through the hide wrapper.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthogf2/gf2"
	"github.com/katalvlaran/orthogf2/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their generic At/Set fallback.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// mustRows builds a *Dense from 0/1 integer rows or fails the test.
func mustRows(tb testing.TB, rows ...[]int) *matrix.Dense {
	tb.Helper()
	conv := make([][]gf2.Elem, len(rows))
	for i, row := range rows {
		conv[i] = make([]gf2.Elem, len(row))
		for j, v := range row {
			conv[i][j] = gf2.FromInt(v)
		}
	}
	m, err := matrix.NewFromRows(conv)
	require.NoError(tb, err)

	return m
}

// vec builds a Vector from 0/1 integers.
func vec(bits ...int) matrix.Vector {
	v := make(matrix.Vector, len(bits))
	for i, b := range bits {
		v[i] = gf2.FromInt(b)
	}

	return v
}

// fillRand fills m with deterministic pseudo-random bits.
func fillRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	require.NoError(tb, m.Apply(func(_, _ int, _ gf2.Elem) gf2.Elem {
		return gf2.Random(rng)
	}))
}
