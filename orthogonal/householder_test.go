// SPDX-License-Identifier: MIT

package orthogonal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthogf2/matrix"
	"github.com/katalvlaran/orthogf2/orthogonal"
)

func TestHouseholderInvolution(t *testing.T) {
	for n := 2; n <= 6; n++ {
		for _, h := range vectorsOfParity(t, n, false) {
			H, err := orthogonal.Householder(h)
			require.NoError(t, err)
			HH, err := matrix.Mul(H, H)
			require.NoError(t, err)
			I, err := matrix.NewIdentity(n)
			require.NoError(t, err)
			require.True(t, HH.Equal(I), "h=%v", h)
			requireOrthogonal(t, H)
		}
	}
}

func TestHouseholderReflects(t *testing.T) {
	// H(h)·v = v + ⟨v,h⟩h
	h := matrix.Vector{1, 1, 0, 0}
	H, err := orthogonal.Householder(h)
	require.NoError(t, err)

	v := matrix.Vector{1, 0, 1, 0} // ⟨v,h⟩ = 1
	got, err := matrix.MatVec(H, v)
	require.NoError(t, err)
	assert.Equal(t, matrix.Vector{0, 1, 1, 0}, got)

	w := matrix.Vector{1, 1, 1, 0} // ⟨w,h⟩ = 0
	got, err = matrix.MatVec(H, w)
	require.NoError(t, err)
	assert.Equal(t, w, got)
}

func TestHouseholderErrors(t *testing.T) {
	_, err := orthogonal.Householder(matrix.Vector{1, 0, 0})
	assert.ErrorIs(t, err, orthogonal.ErrParityMismatch)
	_, err = orthogonal.Householder(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestMapVectorMapsEveryPair(t *testing.T) {
	for _, n := range []int{2, 4, 6} {
		odd := vectorsOfParity(t, n, true)
		for _, v1 := range odd {
			for _, v2 := range odd {
				M, err := orthogonal.MapVector(v1, v2)
				require.NoError(t, err)
				got, err := matrix.MatVec(M, v1)
				require.NoError(t, err)
				require.Equal(t, v2, got, "n=%d v1=%v v2=%v", n, v1, v2)
				require.True(t, orthogonal.IsOrthogonal(M))
			}
		}
	}
}

func TestMapVectorSameVectorIsIdentity(t *testing.T) {
	for _, v := range vectorsOfParity(t, 4, true) {
		M, err := orthogonal.MapVector(v, v)
		require.NoError(t, err)
		I, err := matrix.NewIdentity(4)
		require.NoError(t, err)
		assert.True(t, M.Equal(I), "v=%v", v)
	}
}

func TestMapVectorErrors(t *testing.T) {
	_, err := orthogonal.MapVector(matrix.Vector{1, 0}, matrix.Vector{1, 0, 0, 0})
	assert.ErrorIs(t, err, orthogonal.ErrLengthMismatch)
	_, err = orthogonal.MapVector(matrix.Vector{1, 1}, matrix.Vector{1, 0})
	assert.ErrorIs(t, err, orthogonal.ErrParityMismatch)
	_, err = orthogonal.MapVector(matrix.Vector{1, 0}, matrix.Vector{0, 0})
	assert.ErrorIs(t, err, orthogonal.ErrParityMismatch)
}
