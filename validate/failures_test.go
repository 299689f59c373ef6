// SPDX-License-Identifier: MIT

package validate

import (
	"context"
	"testing"

	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthogf2/matrix"
)

// swapBuilder replaces buildElement for the duration of the test.
func swapBuilder(t *testing.T, f func(int, *uint256.Int) (*matrix.Dense, error)) {
	t.Helper()
	orig := buildElement
	buildElement = f
	t.Cleanup(func() { buildElement = orig })
}

func TestRunReportsNonOrthogonal(t *testing.T) {
	swapBuilder(t, func(n int, _ *uint256.Int) (*matrix.Dense, error) {
		return matrix.NewOnes(n, n)
	})
	reg := prometheus.NewRegistry()

	_, err := Run(context.Background(), 4, WithWorkers(2), WithRegisterer(reg))
	require.ErrorIs(t, err, ErrNotOrthogonal)

	m, err := newMetrics(reg)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, testutil.ToFloat64(m.failures.WithLabelValues(kindNotOrthogonal)), 1.0)
	assert.Zero(t, testutil.ToFloat64(m.checked))
}

func TestRunReportsDuplicate(t *testing.T) {
	swapBuilder(t, func(n int, _ *uint256.Int) (*matrix.Dense, error) {
		return matrix.NewIdentity(n)
	})

	_, err := Run(context.Background(), 4, WithWorkers(1))
	require.ErrorIs(t, err, ErrDuplicate)
	assert.Contains(t, err.Error(), "indices 0 and 1")

	// without the set the same generator passes
	rep, err := Run(context.Background(), 4, WithoutUniqueness())
	require.NoError(t, err)
	assert.Equal(t, uint64(48), rep.Checked)
	assert.InDelta(t, 2.0, rep.MeanWeight, 1e-12)
}

func TestNewMetricsNil(t *testing.T) {
	m, err := newMetrics(nil)
	require.NoError(t, err)
	assert.Nil(t, m)
	// nil-safe
	m.incChecked()
	m.fail(kindDuplicate)
	m.setProgress(1, 2)
}

func TestConfigDefaults(t *testing.T) {
	cfg := newConfig()
	assert.True(t, cfg.unique)
	assert.Positive(t, cfg.workers)
	assert.Equal(t, defaultProgressEvery, cfg.progressEvery)
	assert.Nil(t, cfg.reg)

	cfg = newConfig(WithWorkers(3), WithWorkers(5), WithoutUniqueness())
	assert.Equal(t, 5, cfg.workers, "last option wins")
	assert.False(t, cfg.unique)

	assert.Equal(t, matrix.Vector{1, 1, 0, 0}, defaultProbe(4))
}
