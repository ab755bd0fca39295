// Package metrics provides Prometheus metrics for the bastion service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the bastion service.
type Metrics struct {
	CommandsTotal    *prometheus.CounterVec
	CompletionsTotal *prometheus.CounterVec
	AdvanceDuration  prometheus.Histogram
	ChronicleDrops   prometheus.Counter

	registry *prometheus.Registry
}

// New creates and registers all metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		CommandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bastion_commands_total",
				Help: "Total bastion commands by command name and outcome.",
			},
			[]string{"command", "outcome"},
		),
		CompletionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bastion_task_completions_total",
				Help: "Total completed facility tasks by task kind.",
			},
			[]string{"kind"},
		),
		AdvanceDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bastion_advance_time_duration_seconds",
				Help:    "Wall-clock duration of advance-time runs.",
				Buckets: prometheus.DefBuckets,
			},
		),
		ChronicleDrops: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "bastion_chronicle_forward_drops_total",
				Help: "Chronicle entries that could not be forwarded to the external channel.",
			},
		),
		registry: reg,
	}

	reg.MustRegister(m.CommandsTotal)
	reg.MustRegister(m.CompletionsTotal)
	reg.MustRegister(m.AdvanceDuration)
	reg.MustRegister(m.ChronicleDrops)

	return m
}

// Handler returns an http.Handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordCommand increments the command counter.
func (m *Metrics) RecordCommand(command, outcome string) {
	if m == nil {
		return
	}
	m.CommandsTotal.WithLabelValues(command, outcome).Inc()
}

// RecordCompletion increments the completion counter for a task kind.
func (m *Metrics) RecordCompletion(kind string) {
	if m == nil {
		return
	}
	m.CompletionsTotal.WithLabelValues(kind).Inc()
}

// ObserveAdvance records the duration of one advance-time run.
func (m *Metrics) ObserveAdvance(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.AdvanceDuration.Observe(elapsed.Seconds())
}

// RecordChronicleDrop counts a failed chronicle forward.
func (m *Metrics) RecordChronicleDrop() {
	if m == nil {
		return
	}
	m.ChronicleDrops.Inc()
}
