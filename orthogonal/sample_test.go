// SPDX-License-Identifier: MIT

package orthogonal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthogf2/orthogonal"
)

func TestSampleDeterministic(t *testing.T) {
	for _, n := range []int{2, 4, 8, 14, orthogonal.MaxDimension} {
		a, err := orthogonal.Sample(n, orthogonal.NewSource(42))
		require.NoError(t, err)
		b, err := orthogonal.Sample(n, orthogonal.NewSource(42))
		require.NoError(t, err)
		require.True(t, a.Equal(b), "n=%d", n)
		require.True(t, orthogonal.IsOrthogonal(a), "n=%d", n)
	}
}

func TestSampleIndexInRange(t *testing.T) {
	src := orthogonal.NewSource(7)
	for _, n := range []int{2, 6, 12, 20} {
		ord, err := orthogonal.Order(n)
		require.NoError(t, err)
		for k := 0; k < 200; k++ {
			i, err := orthogonal.SampleIndex(n, src)
			require.NoError(t, err)
			require.True(t, i.Lt(ord), "n=%d i=%s", n, i.Dec())
		}
	}
}

func TestSampleIndexRejects(t *testing.T) {
	// n=2: Order = 2, bit length 2, mask 0b11. 3 and 2 are rejected.
	src := &scripted{words: []uint64{0xFF, 0x02, 0x01}}
	i, err := orthogonal.SampleIndex(2, src)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), i.Uint64())
	assert.Equal(t, 3, src.pos)
}

func TestSampleCoversSmallGroup(t *testing.T) {
	src := orthogonal.NewSource(2024)
	hits := make(map[uint64]int)
	for k := 0; k < 4800; k++ {
		i, err := orthogonal.SampleIndex(4, src)
		require.NoError(t, err)
		hits[i.Uint64()]++
	}
	require.Len(t, hits, 48)
	for idx, c := range hits {
		assert.Greater(t, c, 40, "index %d drawn %d times", idx, c)
	}
}

func TestSampleErrors(t *testing.T) {
	_, err := orthogonal.Sample(4, nil)
	assert.ErrorIs(t, err, orthogonal.ErrNeedRandSource)
	_, err = orthogonal.SampleIndex(3, orthogonal.NewSource(1))
	assert.ErrorIs(t, err, orthogonal.ErrInvalidDimension)
}
