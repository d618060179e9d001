// SPDX-License-Identifier: MIT
//
// Package metrics exports degseq generation outcomes as Prometheus metrics.
//
// A Collector implements degseq.Observer; pass it with degseq.WithObserver.
// Collectors register on the Registerer given to New, so tests and hosts
// can keep them off the global registry.
package metrics

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/degseq/degseq"
)

// Status label values.
const (
	StatusOK          = "ok"
	StatusInvalid     = "invalid"
	StatusInfeasible  = "infeasible"
	StatusInterrupted = "interrupted"
	StatusExhausted   = "exhausted"
	StatusError       = "error"
)

// Collector aggregates RunStats into Prometheus vectors.
type Collector struct {
	Generations *prometheus.CounterVec
	Restarts    *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
	Vertices    *prometheus.HistogramVec
	Edges       *prometheus.HistogramVec
}

// New registers a Collector on reg under namespace. A nil reg selects
// prometheus.DefaultRegisterer. Registering twice on one registry panics.
func New(reg prometheus.Registerer, namespace string) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Collector{
		Generations: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generations_total",
				Help:      "Total number of Generate calls by method, mode and outcome",
			},
			[]string{"method", "directed", "status"},
		),
		Restarts: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "restarts_total",
				Help:      "Rejected attempts and full restarts of retrying samplers",
			},
			[]string{"method"},
		),
		Duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "generate_duration_seconds",
				Help:      "Duration of Generate calls",
				Buckets:   []float64{.0001, .001, .005, .01, .05, .1, .5, 1, 5, 30},
			},
			[]string{"method"},
		),
		Vertices: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "graph_vertices",
				Help:      "Vertex count of requested graphs",
				Buckets:   []float64{10, 100, 1000, 10000, 100000, 1000000},
			},
			[]string{"method"},
		),
		Edges: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "graph_edges",
				Help:      "Edge count of generated graphs",
				Buckets:   []float64{10, 100, 1000, 10000, 100000, 1000000},
			},
			[]string{"method"},
		),
	}
}

// Observe implements degseq.Observer.
func (c *Collector) Observe(s degseq.RunStats) {
	method := s.Method.String()
	status := Status(s.Err)

	c.Generations.WithLabelValues(method, strconv.FormatBool(s.Directed), status).Inc()
	c.Restarts.WithLabelValues(method).Add(float64(s.Restarts))
	c.Duration.WithLabelValues(method).Observe(s.Elapsed.Seconds())
	c.Vertices.WithLabelValues(method).Observe(float64(s.Vertices))
	if s.Err == nil {
		c.Edges.WithLabelValues(method).Observe(float64(s.Edges))
	}
}

// Status classifies a Generate error into a status label value.
func Status(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, degseq.ErrInvalidArgument):
		return StatusInvalid
	case errors.Is(err, degseq.ErrNotGraphical):
		return StatusInfeasible
	case errors.Is(err, degseq.ErrInterrupted):
		return StatusInterrupted
	case errors.Is(err, degseq.ErrAttemptsExhausted):
		return StatusExhausted
	default:
		return StatusError
	}
}
