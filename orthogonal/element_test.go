// SPDX-License-Identifier: MIT

package orthogonal_test

import (
	"fmt"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthogf2/matrix"
	"github.com/katalvlaran/orthogf2/orthogonal"
)

func TestIndexedElementBaseCase(t *testing.T) {
	m0, err := orthogonal.ElementAt(2, 0)
	require.NoError(t, err)
	assert.Equal(t, "[1, 0]\n[0, 1]\n", m0.String())

	m1, err := orthogonal.ElementAt(2, 1)
	require.NoError(t, err)
	assert.Equal(t, "[0, 1]\n[1, 0]\n", m1.String())
}

// TestIndexedElementBijection walks the whole group for n ∈ {2,4,6}.
func TestIndexedElementBijection(t *testing.T) {
	for _, n := range []int{2, 4, 6} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			ord, err := orthogonal.OrderUint64(n)
			require.NoError(t, err)

			seen := make(map[string]uint64, ord)
			for i := uint64(0); i < ord; i++ {
				m, err := orthogonal.ElementAt(n, i)
				require.NoError(t, err)
				require.True(t, orthogonal.IsOrthogonal(m), "n=%d i=%d\n%s", n, i, m)
				if prev, dup := seen[m.Key()]; dup {
					t.Fatalf("n=%d: index %d repeats index %d", n, i, prev)
				}
				seen[m.Key()] = i
			}
			require.Len(t, seen, int(ord))
		})
	}
}

// TestIndexedElementStrided checks a deterministic slice of the n=8 group;
// the full sweep lives behind the validate package.
func TestIndexedElementStrided(t *testing.T) {
	if testing.Short() {
		t.Skip("strided n=8 sweep skipped in -short mode")
	}
	const stride = 9973
	ord, err := orthogonal.OrderUint64(8)
	require.NoError(t, err)

	seen := make(map[string]struct{})
	for i := uint64(0); i < ord; i += stride {
		m, err := orthogonal.ElementAt(8, i)
		require.NoError(t, err)
		require.True(t, orthogonal.IsOrthogonal(m), "i=%d", i)
		seen[m.Key()] = struct{}{}
	}
	require.Len(t, seen, int((ord+stride-1)/stride))
}

func TestIndexedElementLargeDimension(t *testing.T) {
	ord, err := orthogonal.Order(orthogonal.MaxDimension)
	require.NoError(t, err)
	last := new(uint256.Int).SubUint64(ord, 1)

	for _, i := range []*uint256.Int{uint256.NewInt(0), uint256.NewInt(123456789), last} {
		m, err := orthogonal.IndexedElement(orthogonal.MaxDimension, i)
		require.NoError(t, err)
		requireOrthogonal(t, m)
	}
	assert.Equal(t, ord.Dec(), new(uint256.Int).AddUint64(last, 1).Dec(), "index must not be mutated")
}

func TestIndexedElementErrors(t *testing.T) {
	ord, err := orthogonal.Order(4)
	require.NoError(t, err)

	_, err = orthogonal.IndexedElement(4, ord)
	assert.ErrorIs(t, err, orthogonal.ErrIndexOutOfRange)
	_, err = orthogonal.ElementAt(4, 48)
	assert.ErrorIs(t, err, orthogonal.ErrIndexOutOfRange)
	_, err = orthogonal.ElementAt(2, 2)
	assert.ErrorIs(t, err, orthogonal.ErrIndexOutOfRange)
	_, err = orthogonal.IndexedElement(4, nil)
	assert.ErrorIs(t, err, orthogonal.ErrIndexOutOfRange)

	for _, n := range []int{0, 3, -4, 24} {
		_, err = orthogonal.ElementAt(n, 0)
		assert.ErrorIs(t, err, orthogonal.ErrInvalidDimension, "n=%d", n)
	}
}

func TestElementsAreFreshlyOwned(t *testing.T) {
	a, err := orthogonal.ElementAt(4, 17)
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 0, 1))

	b, err := orthogonal.ElementAt(4, 17)
	require.NoError(t, err)
	v, err := b.At(0, 0)
	require.NoError(t, err)
	assert.True(t, v.IsZero())
}

func TestIsOrthogonal(t *testing.T) {
	J, err := matrix.NewOnes(2, 2)
	require.NoError(t, err)
	assert.False(t, orthogonal.IsOrthogonal(J))

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.False(t, orthogonal.IsOrthogonal(rect))
	assert.False(t, orthogonal.IsOrthogonal(nil))
}

func ExampleElementAt() {
	m, _ := orthogonal.ElementAt(4, 17)
	fmt.Print(m)
	// Output:
	// [0, 0, 0, 1]
	// [1, 0, 0, 0]
	// [0, 0, 1, 0]
	// [0, 1, 0, 0]
}
