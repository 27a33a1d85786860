package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for mutation counters
const (
	OutcomeApplied = "applied"
	OutcomeIgnored = "ignored"
)

// Recorder records dashboard mutation metrics
type Recorder interface {
	Mutation(operation, outcome string)
	TransactionCount(n int)
}

// PrometheusMetrics implements Recorder on a Prometheus registry
type PrometheusMetrics struct {
	mutations    *prometheus.CounterVec
	transactions prometheus.Gauge
}

// NewPrometheusMetrics creates the collectors and registers them on reg
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankdash_mutations_total",
				Help: "Total number of dashboard mutations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		transactions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "bankdash_transactions",
				Help: "Number of transactions currently held in memory",
			},
		),
	}
	reg.MustRegister(m.mutations, m.transactions)
	return m
}

func (m *PrometheusMetrics) Mutation(operation, outcome string) {
	m.mutations.WithLabelValues(operation, outcome).Inc()
}

func (m *PrometheusMetrics) TransactionCount(n int) {
	m.transactions.Set(float64(n))
}

// Nop is a Recorder that records nothing
type Nop struct{}

func (Nop) Mutation(string, string) {}
func (Nop) TransactionCount(int)    {}
