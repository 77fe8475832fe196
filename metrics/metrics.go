// Package metrics counts what one save run did. The job is a batch process,
// so counters are published to a Pushgateway after the run instead of being
// scraped.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

type Metrics struct {
	registry *prometheus.Registry

	fetchAttempts prometheus.Counter
	fetchRetries  prometheus.Counter
	linesWritten  prometheus.Counter
	writeFailures prometheus.Counter
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		fetchAttempts: factory.NewCounter(prometheus.CounterOpts{
			Name: "rates_saver_fetch_attempts_total",
			Help: "Total number of HTTP fetch attempts, including retries",
		}),

		fetchRetries: factory.NewCounter(prometheus.CounterOpts{
			Name: "rates_saver_fetch_retries_total",
			Help: "Total number of retried fetch attempts",
		}),

		linesWritten: factory.NewCounter(prometheus.CounterOpts{
			Name: "rates_saver_lines_written_total",
			Help: "Total number of rate lines written to currency files",
		}),

		writeFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "rates_saver_write_failures_total",
			Help: "Total number of failed currency file writes",
		}),
	}
}

// All recording methods are nil-safe so components can treat metrics as
// optional.

func (m *Metrics) FetchAttempt() {
	if m != nil {
		m.fetchAttempts.Inc()
	}
}

func (m *Metrics) FetchRetry() {
	if m != nil {
		m.fetchRetries.Inc()
	}
}

func (m *Metrics) LineWritten() {
	if m != nil {
		m.linesWritten.Inc()
	}
}

func (m *Metrics) WriteFailure() {
	if m != nil {
		m.writeFailures.Inc()
	}
}

// Push publishes the collected counters to a Pushgateway, grouped by run so
// separate batch invocations stay distinguishable.
func (m *Metrics) Push(gatewayURL, job, runID string) error {
	if m == nil || gatewayURL == "" {
		return nil
	}

	return push.New(gatewayURL, job).
		Gatherer(m.registry).
		Grouping("run", runID).
		Push()
}
