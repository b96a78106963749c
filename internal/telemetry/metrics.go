package telemetry

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adgate/internal/core/domain"
)

// Metrics holds the Prometheus metrics of the decisioning service. It is
// also an AnalyticsSink: every funnel record updates the counters.
type Metrics struct {
	// Match funnel
	RequestsTotal   *prometheus.CounterVec
	StageSurvivors  *prometheus.HistogramVec
	DegradedTotal   *prometheus.CounterVec
	CandidatesTotal prometheus.Counter

	// HTTP front
	HTTPRequestDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// New creates a Metrics instance with all metrics registered on a private
// registry together with the Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adgate_match_requests_total",
				Help: "Validated match requests by outcome and reason",
			},
			[]string{"outcome", "reason"},
		),
		StageSurvivors: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "adgate_match_stage_survivors",
				Help:    "Candidates left after each pipeline stage",
				Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
			},
			[]string{"stage"},
		),
		DegradedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adgate_match_degraded_total",
				Help: "Matches in which a stage applied its fail policy",
			},
			[]string{"stage"},
		),
		CandidatesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "adgate_match_candidates_total",
				Help: "Candidates loaded across all matches",
			},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "adgate_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"route", "method", "status"},
		),
		registry: reg,
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.StageSurvivors,
		m.DegradedTotal,
		m.CandidatesTotal,
		m.HTTPRequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// Record implements port.AnalyticsSink. It never fails.
func (m *Metrics) Record(_ context.Context, rec domain.FunnelRecord) error {
	m.RequestsTotal.WithLabelValues(string(rec.Outcome), string(rec.Reason)).Inc()
	m.CandidatesTotal.Add(float64(rec.Candidates))
	for _, s := range rec.Funnel {
		m.StageSurvivors.WithLabelValues(string(s.Stage)).Observe(float64(s.Survivors))
	}
	for _, s := range rec.Degraded {
		m.DegradedTotal.WithLabelValues(string(s)).Inc()
	}
	return nil
}

// ObserveHTTP records the latency of one HTTP request.
func (m *Metrics) ObserveHTTP(route, method string, status int, d time.Duration) {
	m.HTTPRequestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(d.Seconds())
}
