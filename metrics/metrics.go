// Package metrics exposes Prometheus collectors for path queries.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Query outcomes used as the "outcome" label.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeInvalid     = "invalid"
)

// Collector records query counts, latency, relaxations and skipped arcs.
// It satisfies dijkstra.Recorder.
type Collector struct {
	Queries       *prometheus.CounterVec
	QueryDuration prometheus.Histogram
	Relaxations   prometheus.Counter
	SkippedArcs   prometheus.Counter
	GraphNodes    prometheus.Gauge
}

// New registers the collectors on reg. A nil reg uses a fresh registry.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	return &Collector{
		Queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pathview_queries_total",
			Help: "Total number of shortest-path queries, labelled by outcome.",
		}, []string{"outcome"}),

		QueryDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathview_query_duration_ms",
			Help:    "Shortest-path query latency in milliseconds.",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000},
		}),

		Relaxations: f.NewCounter(prometheus.CounterOpts{
			Name: "pathview_relaxations_total",
			Help: "Total number of successful edge relaxations.",
		}),

		SkippedArcs: f.NewCounter(prometheus.CounterOpts{
			Name: "pathview_skipped_arcs_total",
			Help: "Total number of arcs skipped because their target is not in the graph.",
		}),

		GraphNodes: f.NewGauge(prometheus.GaugeOpts{
			Name: "pathview_graph_nodes",
			Help: "Node count of the most recently loaded graph.",
		}),
	}
}

// ObserveQuery counts one query and records its latency.
func (c *Collector) ObserveQuery(outcome string, elapsed time.Duration) {
	c.Queries.WithLabelValues(outcome).Inc()
	c.QueryDuration.Observe(float64(elapsed) / float64(time.Millisecond))
}

// AddRelaxations adds n successful relaxations.
func (c *Collector) AddRelaxations(n int) {
	if n > 0 {
		c.Relaxations.Add(float64(n))
	}
}

// AddSkippedArcs adds n arcs skipped for an unresolved target.
func (c *Collector) AddSkippedArcs(n int) {
	if n > 0 {
		c.SkippedArcs.Add(float64(n))
	}
}

// SetGraphNodes records the size of the graph currently served.
func (c *Collector) SetGraphNodes(n int) {
	c.GraphNodes.Set(float64(n))
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
