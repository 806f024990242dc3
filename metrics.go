/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package saifu

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
	outcomeError   = "error"
)

// Metrics holds the registry's counters on a private prometheus registry, so several
// registries in one process never collide.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	rollbacks  prometheus.Counter
	wallets    *prometheus.GaugeVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "saifu",
				Name:      "operations_total",
				Help:      "Wallet operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		rollbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "saifu",
			Name:      "transfer_rollbacks_total",
			Help:      "Transfers whose withdrawal was reversed after the deposit failed",
		}),
		wallets: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "saifu",
				Name:      "wallets",
				Help:      "Registered wallets by type",
			},
			[]string{"wallet_type"},
		),
	}
	m.registry.MustRegister(m.operations, m.rollbacks, m.wallets)
	return m
}

// Gatherer returns the registry the counters are registered on.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

func (m *Metrics) observe(operation, outcome string) {
	m.operations.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) observeResult(operation string, successful bool) {
	if successful {
		m.observe(operation, outcomeSuccess)
		return
	}
	m.observe(operation, outcomeFailure)
}
