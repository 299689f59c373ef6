// SPDX-License-Identifier: MIT

package validate

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Failure kinds used as the "kind" label.
const (
	kindNotOrthogonal = "not_orthogonal"
	kindDuplicate     = "duplicate"
)

// metrics is nil when no registerer was supplied; every method is nil-safe.
type metrics struct {
	checked  prometheus.Counter
	failures *prometheus.CounterVec
	progress prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	if reg == nil {
		return nil, nil
	}
	checked, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "orthogf2",
		Subsystem: "validate",
		Name:      "checked_total",
		Help:      "Group elements checked for orthogonality.",
	}))
	if err != nil {
		return nil, err
	}
	failures, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orthogf2",
		Subsystem: "validate",
		Name:      "failures_total",
		Help:      "Validation failures by kind.",
	}, []string{"kind"}))
	if err != nil {
		return nil, err
	}
	progress, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "orthogf2",
		Subsystem: "validate",
		Name:      "progress_ratio",
		Help:      "Fraction of the current range already checked.",
	}))
	if err != nil {
		return nil, err
	}

	return &metrics{checked: checked, failures: failures, progress: progress}, nil
}

// register adds c to reg, reusing an identical collector registered earlier.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	return c, err
}

func (m *metrics) incChecked() {
	if m == nil {
		return
	}
	m.checked.Inc()
}

func (m *metrics) fail(kind string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(kind).Inc()
}

func (m *metrics) setProgress(done, total uint64) {
	if m == nil {
		return
	}
	m.progress.Set(float64(done) / float64(total))
}
