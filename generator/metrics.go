// SPDX-License-Identifier: MIT
// Package: graphfuzz/generator
//
// metrics.go: optional Prometheus instrumentation.
//
// A nil *Metrics is valid and records nothing, so the hot path never branches
// on configuration.

package generator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "graphfuzz"

// Operator outcome label values.
const (
	resultApplied = "applied"
	resultNoop    = "noop"
)

// Metrics holds the collectors fed by a GraphGenerator.
type Metrics struct {
	// OperatorTotal counts handler invocations.
	// Labels: operator (add_node, ...), result (applied, noop)
	OperatorTotal *prometheus.CounterVec

	// MutateExhaustedTotal counts Mutate calls where every draw was a no-op.
	MutateExhaustedTotal prometheus.Counter

	// SynthesizedComplexity observes the complexity of every NewInput result.
	SynthesizedComplexity prometheus.Histogram
}

// NewMetrics registers the generator collectors on reg.
// Registering twice on the same registry panics, as promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		OperatorTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "operator_total",
			Help:      "Mutation operator invocations by operator and result",
		}, []string{"operator", "result"}),
		MutateExhaustedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "mutate_exhausted_total",
			Help:      "Mutate calls whose whole draw budget was inapplicable",
		}),
		SynthesizedComplexity: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "synthesized_complexity",
			Help:      "Complexity of graphs returned by NewInput",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
}

func (m *Metrics) observeOperator(op Operator, applied bool) {
	if m == nil {
		return
	}
	result := resultNoop
	if applied {
		result = resultApplied
	}
	m.OperatorTotal.WithLabelValues(op.String(), result).Inc()
}

func (m *Metrics) incExhausted() {
	if m == nil {
		return
	}
	m.MutateExhaustedTotal.Inc()
}

func (m *Metrics) observeComplexity(c float64) {
	if m == nil {
		return
	}
	m.SynthesizedComplexity.Observe(c)
}
