// SPDX-License-Identifier: MIT

package orthogonal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthogf2/binary"
	"github.com/katalvlaran/orthogf2/matrix"
)

// vectorsOfParity returns every length-n vector whose parity equals odd.
func vectorsOfParity(tb testing.TB, n int, odd bool) []matrix.Vector {
	tb.Helper()
	var out []matrix.Vector
	for k := uint64(0); k < 1<<n; k++ {
		v := make(matrix.Vector, 0, n)
		for e := range binary.Bits(n, k) {
			v = append(v, e)
		}
		if binary.Parity(v).IsOne() == odd {
			out = append(out, v)
		}
	}
	require.NotEmpty(tb, out)

	return out
}

// requireOrthogonal asserts mᵗm = I by explicit products.
func requireOrthogonal(tb testing.TB, m *matrix.Dense) {
	tb.Helper()
	mt, err := matrix.Transpose(m)
	require.NoError(tb, err)
	p, err := matrix.Mul(mt, m)
	require.NoError(tb, err)
	I, err := matrix.IdentityLike(m)
	require.NoError(tb, err)
	require.True(tb, p.Equal(I), "MᵗM != I for\n%s", m)
}

// scripted is a Source replaying a fixed word sequence.
type scripted struct {
	words []uint64
	pos   int
}

func (s *scripted) Uint64() uint64 {
	w := s.words[s.pos%len(s.words)]
	s.pos++

	return w
}
