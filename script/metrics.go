// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package script

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "qstack"

// Metrics counts operations performed by a [Runner]. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	ops        *prometheus.CounterVec
	underflows *prometheus.CounterVec
}

// NewMetrics constructs [Metrics] and registers them with `reg`.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ops_total",
			Help:      "Number of operations applied, by target and verb.",
		}, []string{"target", "op"}),
		underflows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "underflows_total",
			Help:      "Number of removals attempted on an empty target.",
		}, []string{"target"}),
	}
	if err := errors.Join(
		reg.Register(m.ops),
		reg.Register(m.underflows),
	); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observe(target string, op Op, rs []Result) {
	if m == nil {
		return
	}
	m.ops.WithLabelValues(target, string(op.Verb)).Inc()
	for _, r := range rs {
		if r.underflow() {
			m.underflows.WithLabelValues(target).Inc()
		}
	}
}
