// SPDX-License-Identifier: MIT

package orthogonal_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthogf2/orthogonal"
)

func TestOrder(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{2, "2"},
		{4, "48"},
		{6, "23040"},
		{8, "185794560"},
		{10, "24257337753600"},
		{12, "50821645356918374400"},
		{22, "2376056471052200653607636735377527394627947719754523173734842368000000"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("n=%d", tc.n), func(t *testing.T) {
			got, err := orthogonal.Order(tc.n)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Dec())
		})
	}
}

func TestOrderInvalidDimension(t *testing.T) {
	for _, n := range []int{-2, 0, 1, 3, 7, 24, orthogonal.MaxDimension + 2} {
		_, err := orthogonal.Order(n)
		assert.ErrorIs(t, err, orthogonal.ErrInvalidDimension, "n=%d", n)
	}
}

func TestOrderUint64(t *testing.T) {
	got, err := orthogonal.OrderUint64(6)
	require.NoError(t, err)
	assert.Equal(t, uint64(23040), got)

	got, err = orthogonal.OrderUint64(10)
	require.NoError(t, err)
	assert.Equal(t, uint64(24257337753600), got)

	_, err = orthogonal.OrderUint64(12)
	assert.ErrorIs(t, err, orthogonal.ErrIndexOverflow)
	_, err = orthogonal.OrderUint64(5)
	assert.ErrorIs(t, err, orthogonal.ErrInvalidDimension)
}

func ExampleOrder() {
	for _, n := range []int{2, 4, 6} {
		ord, _ := orthogonal.Order(n)
		fmt.Println(n, ord.Dec())
	}
	// Output:
	// 2 2
	// 4 48
	// 6 23040
}
